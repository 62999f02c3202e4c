package services

import (
	"easylife_backend/internal/models"
	"easylife_backend/internal/repositories"
	"easylife_backend/internal/services/dto"
	"easylife_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	Create(db *gorm.DB, customerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListApproved(db *gorm.DB, businessID string, page, pageSize int) (*dto.ReviewListResponse, error)
	ListPending(db *gorm.DB, page, pageSize int) (*dto.ReviewListResponse, error)
	Moderate(db *gorm.DB, reviewID string, req *dto.ModerateReviewRequest) (*dto.ReviewResponse, error)
}

type reviewService struct {
	reviewRepo       repositories.ReviewRepository
	businessRepo     repositories.BusinessRepository
	notificationRepo repositories.NotificationRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	businessRepo repositories.BusinessRepository,
	notificationRepo repositories.NotificationRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:       reviewRepo,
		businessRepo:     businessRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *reviewService) Create(db *gorm.DB, customerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	business, err := s.businessRepo.FindByID(db, req.BusinessID)
	if err != nil {
		if err == repositories.ErrBusinessNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	review := &models.Review{
		BusinessID: req.BusinessID,
		CustomerID: customerID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		Status:     models.ReviewStatusPending,
	}

	if err := s.reviewRepo.Create(db, review); err != nil {
		if err == repositories.ErrReviewAlreadyExists {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, err
	}

	notification := &models.Notification{
		UserID:  business.OwnerID,
		Type:    "review_created",
		Title:   "New review",
		Message: "Your business " + business.Name + " received a new review",
	}
	_ = s.notificationRepo.Create(db, notification)

	return buildReviewResponse(review), nil
}

func (s *reviewService) ListApproved(db *gorm.DB, businessID string, page, pageSize int) (*dto.ReviewListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	reviews, total, err := s.reviewRepo.ListByBusiness(db, businessID, models.ReviewStatusApproved, page, pageSize)
	if err != nil {
		return nil, err
	}
	return buildReviewListResponse(reviews, total, page, pageSize), nil
}

func (s *reviewService) ListPending(db *gorm.DB, page, pageSize int) (*dto.ReviewListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	reviews, total, err := s.reviewRepo.ListByStatus(db, models.ReviewStatusPending, page, pageSize)
	if err != nil {
		return nil, err
	}
	return buildReviewListResponse(reviews, total, page, pageSize), nil
}

func (s *reviewService) Moderate(db *gorm.DB, reviewID string, req *dto.ModerateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if err == repositories.ErrReviewNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	status := models.ReviewStatus(req.Status)
	if err := s.reviewRepo.UpdateStatus(db, reviewID, status); err != nil {
		return nil, err
	}
	review.Status = status

	return buildReviewResponse(review), nil
}

func buildReviewResponse(review *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:           review.ID,
		BusinessID:   review.BusinessID,
		CustomerID:   review.CustomerID,
		CustomerName: review.Customer.Name,
		Rating:       review.Rating,
		ReviewText:   review.ReviewText,
		Status:       string(review.Status),
		CreatedAt:    review.CreatedAt,
	}
}

func buildReviewListResponse(reviews []models.Review, total int64, page, pageSize int) *dto.ReviewListResponse {
	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, buildReviewResponse(&reviews[i]))
	}
	return &dto.ReviewListResponse{
		Reviews: responses,
		Pagination: dto.Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	}
}
