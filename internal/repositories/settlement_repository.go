package repositories

import (
	"errors"
	"time"

	"easylife_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrSettlementExists   = errors.New("settlement already exists for booking")
)

// SettlementCriteria filters the settlement listing. DateFrom is computed by
// the service layer from the dateRange keyword (today/week/month/...).
type SettlementCriteria struct {
	SellerID string
	Status   models.SettlementStatus
	DateFrom *time.Time
	Search   string
	Page     int
	PageSize int
}

// SettlementSummary aggregates payout amounts per status for a seller.
type SettlementSummary struct {
	PendingAmount    float64 `json:"pending_amount"`
	ProcessingAmount float64 `json:"processing_amount"`
	CompletedAmount  float64 `json:"completed_amount"`
	TotalCount       int64   `json:"total_count"`
}

type SettlementRepository interface {
	Create(db *gorm.DB, settlement *models.Settlement) error
	FindByID(db *gorm.DB, id string) (*models.Settlement, error)
	FindByBookingID(db *gorm.DB, bookingID string) (*models.Settlement, error)
	UpdateStatus(db *gorm.DB, id string, status models.SettlementStatus) error
	List(db *gorm.DB, criteria SettlementCriteria) ([]models.Settlement, int64, error)
	Summary(db *gorm.DB, sellerID string) (*SettlementSummary, error)
}

type settlementRepository struct{}

func NewSettlementRepository() SettlementRepository {
	return &settlementRepository{}
}

// Create inserts the settlement after re-checking the one-per-booking rule.
// The unique index on booking_id is the backstop for concurrent completes.
func (r *settlementRepository) Create(db *gorm.DB, settlement *models.Settlement) error {
	var count int64
	if err := db.Model(&models.Settlement{}).
		Where("booking_id = ?", settlement.BookingID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSettlementExists
	}
	return db.Create(settlement).Error
}

func (r *settlementRepository) FindByID(db *gorm.DB, id string) (*models.Settlement, error) {
	var settlement models.Settlement
	if err := db.Preload("Business").First(&settlement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettlementNotFound
		}
		return nil, err
	}
	return &settlement, nil
}

func (r *settlementRepository) FindByBookingID(db *gorm.DB, bookingID string) (*models.Settlement, error) {
	var settlement models.Settlement
	if err := db.First(&settlement, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettlementNotFound
		}
		return nil, err
	}
	return &settlement, nil
}

func (r *settlementRepository) UpdateStatus(db *gorm.DB, id string, status models.SettlementStatus) error {
	result := db.Model(&models.Settlement{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettlementNotFound
	}
	return nil
}

func (r *settlementRepository) List(db *gorm.DB, criteria SettlementCriteria) ([]models.Settlement, int64, error) {
	query := db.Model(&models.Settlement{})

	if criteria.SellerID != "" {
		query = query.Where("seller_id = ?", criteria.SellerID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.DateFrom != nil {
		query = query.Where("created_at >= ?", *criteria.DateFrom)
	}
	if criteria.Search != "" {
		pattern := "%" + criteria.Search + "%"
		query = query.Where("service_name ILIKE ? OR payment_id ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var settlements []models.Settlement
	err := query.Preload("Business").
		Order("created_at DESC").
		Offset((criteria.Page - 1) * criteria.PageSize).
		Limit(criteria.PageSize).
		Find(&settlements).Error
	return settlements, total, err
}

func (r *settlementRepository) Summary(db *gorm.DB, sellerID string) (*SettlementSummary, error) {
	summary := &SettlementSummary{}

	type row struct {
		Status models.SettlementStatus
		Total  float64
		Count  int64
	}
	var rows []row
	err := db.Model(&models.Settlement{}).
		Select("status, COALESCE(SUM(net_amount), 0) AS total, COUNT(*) AS count").
		Where("seller_id = ?", sellerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		switch r.Status {
		case models.SettlementStatusPending:
			summary.PendingAmount = r.Total
		case models.SettlementStatusProcessing:
			summary.ProcessingAmount = r.Total
		case models.SettlementStatusCompleted:
			summary.CompletedAmount = r.Total
		}
		summary.TotalCount += r.Count
	}
	return summary, nil
}
