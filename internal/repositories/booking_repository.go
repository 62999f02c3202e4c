package repositories

import (
	"errors"

	"easylife_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingCriteria scopes and filters a booking listing. Exactly one of
// CustomerID / SellerID is set for non-admin callers; admins leave both empty.
type BookingCriteria struct {
	CustomerID string
	SellerID   string
	BusinessID string
	Status     models.BookingStatus
	Search     string
	Page       int
	PageSize   int
}

type BookingRepository interface {
	Create(db *gorm.DB, booking *models.Booking) error
	FindByID(db *gorm.DB, id string) (*models.Booking, error)
	Update(db *gorm.DB, booking *models.Booking) error
	List(db *gorm.DB, criteria BookingCriteria) ([]models.Booking, int64, error)

	// Payment transactions
	CreateTransaction(db *gorm.DB, txn *models.Transaction) error
	ListTransactions(db *gorm.DB, bookingID string) ([]models.Transaction, error)
}

type bookingRepository struct{}

func NewBookingRepository() BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *models.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := db.Preload("Business").First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Update(db *gorm.DB, booking *models.Booking) error {
	return db.Save(booking).Error
}

func (r *bookingRepository) List(db *gorm.DB, criteria BookingCriteria) ([]models.Booking, int64, error) {
	query := db.Model(&models.Booking{})

	if criteria.CustomerID != "" {
		query = query.Where("bookings.customer_id = ?", criteria.CustomerID)
	}
	if criteria.SellerID != "" {
		// Seller view: bookings against any business the seller owns.
		query = query.Joins("JOIN businesses ON businesses.id = bookings.business_id").
			Where("businesses.owner_id = ?", criteria.SellerID)
	}
	if criteria.BusinessID != "" {
		query = query.Where("bookings.business_id = ?", criteria.BusinessID)
	}
	if criteria.Status != "" {
		query = query.Where("bookings.status = ?", criteria.Status)
	}
	if criteria.Search != "" {
		pattern := "%" + criteria.Search + "%"
		query = query.Where("bookings.service ILIKE ? OR bookings.location ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := query.Preload("Business").
		Order("bookings.created_at DESC").
		Offset((criteria.Page - 1) * criteria.PageSize).
		Limit(criteria.PageSize).
		Find(&bookings).Error
	return bookings, total, err
}

func (r *bookingRepository) CreateTransaction(db *gorm.DB, txn *models.Transaction) error {
	return db.Create(txn).Error
}

func (r *bookingRepository) ListTransactions(db *gorm.DB, bookingID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := db.Where("booking_id = ?", bookingID).Order("created_at DESC").Find(&txns).Error
	return txns, err
}
