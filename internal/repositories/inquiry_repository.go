package repositories

import (
	"errors"

	"easylife_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrLeadNotFound    = errors.New("lead not found")
)

type InquiryRepository interface {
	Create(db *gorm.DB, inquiry *models.Inquiry) error
	FindByID(db *gorm.DB, id string) (*models.Inquiry, error)
	Update(db *gorm.DB, inquiry *models.Inquiry) error
	ListByBusiness(db *gorm.DB, businessID string, page, pageSize int) ([]models.Inquiry, int64, error)
	ListByCustomer(db *gorm.DB, customerID string, page, pageSize int) ([]models.Inquiry, int64, error)

	// Leads
	CreateLead(db *gorm.DB, lead *models.Lead) error
	FindLeadByID(db *gorm.DB, id string) (*models.Lead, error)
	UpdateLead(db *gorm.DB, lead *models.Lead) error
	ListLeadsByBusiness(db *gorm.DB, businessID string, page, pageSize int) ([]models.Lead, int64, error)
}

type inquiryRepository struct{}

func NewInquiryRepository() InquiryRepository {
	return &inquiryRepository{}
}

func (r *inquiryRepository) Create(db *gorm.DB, inquiry *models.Inquiry) error {
	return db.Create(inquiry).Error
}

func (r *inquiryRepository) FindByID(db *gorm.DB, id string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := db.Preload("Business").First(&inquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) Update(db *gorm.DB, inquiry *models.Inquiry) error {
	return db.Save(inquiry).Error
}

func (r *inquiryRepository) ListByBusiness(db *gorm.DB, businessID string, page, pageSize int) ([]models.Inquiry, int64, error) {
	query := db.Model(&models.Inquiry{}).Where("business_id = ?", businessID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var inquiries []models.Inquiry
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&inquiries).Error
	return inquiries, total, err
}

func (r *inquiryRepository) ListByCustomer(db *gorm.DB, customerID string, page, pageSize int) ([]models.Inquiry, int64, error) {
	query := db.Model(&models.Inquiry{}).Where("customer_id = ?", customerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var inquiries []models.Inquiry
	err := query.Preload("Business").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&inquiries).Error
	return inquiries, total, err
}

func (r *inquiryRepository) CreateLead(db *gorm.DB, lead *models.Lead) error {
	return db.Create(lead).Error
}

func (r *inquiryRepository) FindLeadByID(db *gorm.DB, id string) (*models.Lead, error) {
	var lead models.Lead
	if err := db.First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (r *inquiryRepository) UpdateLead(db *gorm.DB, lead *models.Lead) error {
	return db.Save(lead).Error
}

func (r *inquiryRepository) ListLeadsByBusiness(db *gorm.DB, businessID string, page, pageSize int) ([]models.Lead, int64, error) {
	query := db.Model(&models.Lead{}).Where("business_id = ?", businessID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []models.Lead
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&leads).Error
	return leads, total, err
}
