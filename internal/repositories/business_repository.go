package repositories

import (
	"errors"

	"easylife_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrAlreadySaved     = errors.New("business already saved")
)

// BusinessCriteria filters the public business listing.
type BusinessCriteria struct {
	CategoryID string
	City       string
	Search     string
	Status     models.BusinessStatus
	Page       int
	PageSize   int
}

type BusinessRepository interface {
	Create(db *gorm.DB, business *models.Business) error
	FindByID(db *gorm.DB, id string) (*models.Business, error)
	FindByOwner(db *gorm.DB, ownerID string) ([]models.Business, error)
	Update(db *gorm.DB, business *models.Business) error
	UpdateStatus(db *gorm.DB, id string, status models.BusinessStatus, reason string) error
	List(db *gorm.DB, criteria BusinessCriteria) ([]models.Business, int64, error)

	// Saved businesses (customer bookmarks)
	Save(db *gorm.DB, customerID, businessID string) (*models.SavedBusiness, error)
	Unsave(db *gorm.DB, customerID, businessID string) error
	ListSaved(db *gorm.DB, customerID string) ([]models.SavedBusiness, error)
}

type businessRepository struct{}

func NewBusinessRepository() BusinessRepository {
	return &businessRepository{}
}

func (r *businessRepository) Create(db *gorm.DB, business *models.Business) error {
	return db.Create(business).Error
}

func (r *businessRepository) FindByID(db *gorm.DB, id string) (*models.Business, error) {
	var business models.Business
	if err := db.Preload("Category").First(&business, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindByOwner(db *gorm.DB, ownerID string) ([]models.Business, error) {
	var businesses []models.Business
	err := db.Preload("Category").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&businesses).Error
	return businesses, err
}

func (r *businessRepository) Update(db *gorm.DB, business *models.Business) error {
	return db.Save(business).Error
}

func (r *businessRepository) UpdateStatus(db *gorm.DB, id string, status models.BusinessStatus, reason string) error {
	updates := map[string]interface{}{"status": status}
	if reason != "" {
		updates["rejection_reason"] = reason
	}

	result := db.Model(&models.Business{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBusinessNotFound
	}
	return nil
}

func (r *businessRepository) List(db *gorm.DB, criteria BusinessCriteria) ([]models.Business, int64, error) {
	query := db.Model(&models.Business{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.CategoryID != "" {
		query = query.Where("category_id = ?", criteria.CategoryID)
	}
	if criteria.City != "" {
		query = query.Where("city ILIKE ?", criteria.City)
	}
	if criteria.Search != "" {
		pattern := "%" + criteria.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var businesses []models.Business
	err := query.Preload("Category").
		Order("created_at DESC").
		Offset((criteria.Page - 1) * criteria.PageSize).
		Limit(criteria.PageSize).
		Find(&businesses).Error
	return businesses, total, err
}

func (r *businessRepository) Save(db *gorm.DB, customerID, businessID string) (*models.SavedBusiness, error) {
	var existing models.SavedBusiness
	err := db.Where("customer_id = ? AND business_id = ?", customerID, businessID).First(&existing).Error
	if err == nil {
		// Saving twice is idempotent: hand back the existing row.
		return &existing, ErrAlreadySaved
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	saved := &models.SavedBusiness{CustomerID: customerID, BusinessID: businessID}
	if err := db.Create(saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *businessRepository) Unsave(db *gorm.DB, customerID, businessID string) error {
	return db.Where("customer_id = ? AND business_id = ?", customerID, businessID).
		Delete(&models.SavedBusiness{}).Error
}

func (r *businessRepository) ListSaved(db *gorm.DB, customerID string) ([]models.SavedBusiness, error) {
	var saved []models.SavedBusiness
	err := db.Preload("Business").Preload("Business.Category").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}
