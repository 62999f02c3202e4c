package services

import (
	"easylife_backend/internal/models"
	"easylife_backend/internal/repositories"
	"easylife_backend/internal/services/dto"
	"easylife_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BusinessService interface {
	Create(db *gorm.DB, ownerID string, req *dto.CreateBusinessRequest) (*dto.BusinessResponse, error)
	Get(db *gorm.DB, id string) (*dto.BusinessResponse, error)
	GetPublic(db *gorm.DB, id string) (*dto.BusinessResponse, error)
	Update(db *gorm.DB, ownerID, id string, req *dto.UpdateBusinessRequest) (*dto.BusinessResponse, error)
	ListPublic(db *gorm.DB, criteria dto.BusinessCriteria) (*dto.BusinessListResponse, error)
	ListMine(db *gorm.DB, ownerID string) ([]*dto.BusinessResponse, error)

	// Admin moderation
	Moderate(db *gorm.DB, id string, req *dto.ModerateBusinessRequest) (*dto.BusinessResponse, error)
	ListPending(db *gorm.DB, page, pageSize int) (*dto.BusinessListResponse, error)

	// Customer bookmarks
	SaveBusiness(db *gorm.DB, customerID, businessID string) error
	UnsaveBusiness(db *gorm.DB, customerID, businessID string) error
	ListSaved(db *gorm.DB, customerID string) ([]*dto.BusinessResponse, error)

	// Categories
	ListCategories(db *gorm.DB) ([]*dto.CategoryResponse, error)
	CreateCategory(db *gorm.DB, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(db *gorm.DB, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
}

type businessService struct {
	businessRepo     repositories.BusinessRepository
	categoryRepo     repositories.CategoryRepository
	reviewRepo       repositories.ReviewRepository
	notificationRepo repositories.NotificationRepository
}

func NewBusinessService(
	businessRepo repositories.BusinessRepository,
	categoryRepo repositories.CategoryRepository,
	reviewRepo repositories.ReviewRepository,
	notificationRepo repositories.NotificationRepository,
) BusinessService {
	return &businessService{
		businessRepo:     businessRepo,
		categoryRepo:     categoryRepo,
		reviewRepo:       reviewRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *businessService) Create(db *gorm.DB, ownerID string, req *dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	business := &models.Business{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Phone:       req.Phone,
		Status:      models.BusinessStatusPending,
	}
	if req.CategoryID != "" {
		if _, err := s.categoryRepo.FindByID(db, req.CategoryID); err != nil {
			return nil, apperrors.NewBadRequestError("Unknown category")
		}
		business.CategoryID = &req.CategoryID
	}

	if err := s.businessRepo.Create(db, business); err != nil {
		return nil, err
	}
	return s.buildResponse(db, business), nil
}

func (s *businessService) Get(db *gorm.DB, id string) (*dto.BusinessResponse, error) {
	business, err := s.businessRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrBusinessNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return s.buildResponse(db, business), nil
}

// GetPublic hides businesses that are not approved.
func (s *businessService) GetPublic(db *gorm.DB, id string) (*dto.BusinessResponse, error) {
	resp, err := s.Get(db, id)
	if err != nil {
		return nil, err
	}
	if resp.Status != string(models.BusinessStatusApproved) {
		return nil, apperrors.ErrNotFound(repositories.ErrBusinessNotFound)
	}
	return resp, nil
}

func (s *businessService) Update(db *gorm.DB, ownerID, id string, req *dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := s.businessRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrBusinessNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if business.OwnerID != ownerID {
		return nil, apperrors.ErrBusinessAccessDenied
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(db, *req.CategoryID); err != nil {
			return nil, apperrors.NewBadRequestError("Unknown category")
		}
		business.CategoryID = req.CategoryID
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.City != nil {
		business.City = *req.City
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}

	if err := s.businessRepo.Update(db, business); err != nil {
		return nil, err
	}
	return s.buildResponse(db, business), nil
}

func (s *businessService) ListPublic(db *gorm.DB, criteria dto.BusinessCriteria) (*dto.BusinessListResponse, error) {
	if criteria.Page <= 0 {
		criteria.Page = 1
	}
	if criteria.PageSize <= 0 {
		criteria.PageSize = 20
	}

	businesses, total, err := s.businessRepo.List(db, repositories.BusinessCriteria{
		Status:     models.BusinessStatusApproved,
		CategoryID: criteria.CategoryID,
		City:       criteria.City,
		Search:     criteria.Search,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return s.buildListResponse(db, businesses, total, criteria.Page, criteria.PageSize), nil
}

func (s *businessService) ListMine(db *gorm.DB, ownerID string) ([]*dto.BusinessResponse, error) {
	businesses, err := s.businessRepo.FindByOwner(db, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.BusinessResponse, 0, len(businesses))
	for i := range businesses {
		responses = append(responses, s.buildResponse(db, &businesses[i]))
	}
	return responses, nil
}

// Moderate applies an admin status decision and notifies the owner.
func (s *businessService) Moderate(db *gorm.DB, id string, req *dto.ModerateBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := s.businessRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrBusinessNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	status := models.BusinessStatus(req.Status)
	if err := s.businessRepo.UpdateStatus(db, id, status, req.Reason); err != nil {
		return nil, err
	}
	business.Status = status
	if req.Reason != "" {
		business.RejectionReason = req.Reason
	}

	notification := &models.Notification{
		UserID:  business.OwnerID,
		Type:    "business_moderated",
		Title:   "Business status updated",
		Message: "Your business " + business.Name + " is now " + req.Status,
	}
	_ = s.notificationRepo.Create(db, notification)

	return s.buildResponse(db, business), nil
}

func (s *businessService) ListPending(db *gorm.DB, page, pageSize int) (*dto.BusinessListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	businesses, total, err := s.businessRepo.List(db, repositories.BusinessCriteria{
		Status:   models.BusinessStatusPending,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}
	return s.buildListResponse(db, businesses, total, page, pageSize), nil
}

func (s *businessService) SaveBusiness(db *gorm.DB, customerID, businessID string) error {
	if _, err := s.businessRepo.FindByID(db, businessID); err != nil {
		if err == repositories.ErrBusinessNotFound {
			return apperrors.ErrNotFound(err)
		}
		return err
	}

	_, err := s.businessRepo.Save(db, customerID, businessID)
	if err == repositories.ErrAlreadySaved {
		// Idempotent: saving twice succeeds silently.
		return nil
	}
	return err
}

func (s *businessService) UnsaveBusiness(db *gorm.DB, customerID, businessID string) error {
	return s.businessRepo.Unsave(db, customerID, businessID)
}

func (s *businessService) ListSaved(db *gorm.DB, customerID string) ([]*dto.BusinessResponse, error) {
	saved, err := s.businessRepo.ListSaved(db, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.BusinessResponse, 0, len(saved))
	for i := range saved {
		responses = append(responses, s.buildResponse(db, &saved[i].Business))
	}
	return responses, nil
}

func (s *businessService) ListCategories(db *gorm.DB) ([]*dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListActive(db)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, &dto.CategoryResponse{
			ID:       c.ID,
			Name:     c.Name,
			Slug:     c.Slug,
			IsActive: c.IsActive,
		})
	}
	return responses, nil
}

func (s *businessService) CreateCategory(db *gorm.DB, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &models.Category{
		Name:     req.Name,
		Slug:     req.Slug,
		IsActive: true,
	}
	if err := s.categoryRepo.Create(db, category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		IsActive: category.IsActive,
	}, nil
}

func (s *businessService) UpdateCategory(db *gorm.DB, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(db, category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		IsActive: category.IsActive,
	}, nil
}

func (s *businessService) buildListResponse(db *gorm.DB, businesses []models.Business, total int64, page, pageSize int) *dto.BusinessListResponse {
	responses := make([]*dto.BusinessResponse, 0, len(businesses))
	for i := range businesses {
		responses = append(responses, s.buildResponse(db, &businesses[i]))
	}
	return &dto.BusinessListResponse{
		Businesses: responses,
		Pagination: dto.Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	}
}

func (s *businessService) buildResponse(db *gorm.DB, business *models.Business) *dto.BusinessResponse {
	resp := &dto.BusinessResponse{
		ID:              business.ID,
		OwnerID:         business.OwnerID,
		Name:            business.Name,
		Description:     business.Description,
		Address:         business.Address,
		City:            business.City,
		Phone:           business.Phone,
		Status:          string(business.Status),
		RejectionReason: business.RejectionReason,
		IsVerified:      business.IsVerified,
		CreatedAt:       business.CreatedAt,
	}
	if business.CategoryID != nil {
		resp.CategoryID = *business.CategoryID
	}
	if business.Category != nil {
		resp.CategoryName = business.Category.Name
	}

	if avg, count, err := s.reviewRepo.AverageRating(db, business.ID); err == nil {
		resp.AverageRating = avg
		resp.ReviewCount = count
	}
	return resp
}
