package repositories

import (
	"errors"

	"easylife_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this business")
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	ListByBusiness(db *gorm.DB, businessID string, status models.ReviewStatus, page, pageSize int) ([]models.Review, int64, error)
	ListByStatus(db *gorm.DB, status models.ReviewStatus, page, pageSize int) ([]models.Review, int64, error)
	UpdateStatus(db *gorm.DB, id string, status models.ReviewStatus) error
	AverageRating(db *gorm.DB, businessID string) (float64, int64, error)
}

type reviewRepository struct{}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *models.Review) error {
	var existing models.Review
	err := db.Where("business_id = ? AND customer_id = ?", review.BusinessID, review.CustomerID).
		First(&existing).Error
	if err == nil {
		return ErrReviewAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(review).Error
}

func (r *reviewRepository) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	if err := db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByBusiness(db *gorm.DB, businessID string, status models.ReviewStatus, page, pageSize int) ([]models.Review, int64, error) {
	query := db.Model(&models.Review{}).Where("business_id = ?", businessID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.Preload("Customer").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *reviewRepository) ListByStatus(db *gorm.DB, status models.ReviewStatus, page, pageSize int) ([]models.Review, int64, error) {
	query := db.Model(&models.Review{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.Preload("Business").Preload("Customer").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *reviewRepository) UpdateStatus(db *gorm.DB, id string, status models.ReviewStatus) error {
	result := db.Model(&models.Review{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) AverageRating(db *gorm.DB, businessID string) (float64, int64, error) {
	type row struct {
		Avg   float64
		Count int64
	}
	var res row
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("business_id = ? AND status = ?", businessID, models.ReviewStatusApproved).
		Scan(&res).Error
	return res.Avg, res.Count, err
}
