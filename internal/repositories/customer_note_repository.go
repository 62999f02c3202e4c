package repositories

import (
	"easylife_backend/internal/models"

	"gorm.io/gorm"
)

type CustomerNoteRepository interface {
	Create(db *gorm.DB, note *models.CustomerNote) error
	ListBySeller(db *gorm.DB, sellerID, customerID string) ([]models.CustomerNote, error)
}

type customerNoteRepository struct{}

func NewCustomerNoteRepository() CustomerNoteRepository {
	return &customerNoteRepository{}
}

func (r *customerNoteRepository) Create(db *gorm.DB, note *models.CustomerNote) error {
	return db.Create(note).Error
}

func (r *customerNoteRepository) ListBySeller(db *gorm.DB, sellerID, customerID string) ([]models.CustomerNote, error) {
	query := db.Where("seller_id = ?", sellerID)
	if customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var notes []models.CustomerNote
	err := query.Order("created_at DESC").Find(&notes).Error
	return notes, err
}
