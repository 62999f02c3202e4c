package services

import (
	"time"

	"easylife_backend/internal/models"
	"easylife_backend/internal/repositories"
	"easylife_backend/internal/services/dto"
	"easylife_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SettlementService interface {
	List(db *gorm.DB, criteria dto.SettlementCriteria) (*dto.SettlementListResponse, error)
	ListForSeller(db *gorm.DB, sellerID string, criteria dto.SettlementCriteria) (*dto.SettlementListResponse, error)
	Get(db *gorm.DB, id string) (*dto.SettlementResponse, error)
	UpdateStatus(db *gorm.DB, id string, status models.SettlementStatus) (*dto.SettlementResponse, error)
	Summary(db *gorm.DB, sellerID string) (*repositories.SettlementSummary, error)
}

type settlementService struct {
	settlementRepo repositories.SettlementRepository
}

func NewSettlementService(settlementRepo repositories.SettlementRepository) SettlementService {
	return &settlementService{settlementRepo: settlementRepo}
}

// dateRangeFrom maps the dateRange keyword onto "now minus N".
func dateRangeFrom(dateRange string) *time.Time {
	now := time.Now()
	var from time.Time

	switch dateRange {
	case "today":
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		from = now.AddDate(0, 0, -7)
	case "month":
		from = now.AddDate(0, -1, 0)
	case "quarter":
		from = now.AddDate(0, -3, 0)
	case "year":
		from = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &from
}

func (s *settlementService) List(db *gorm.DB, criteria dto.SettlementCriteria) (*dto.SettlementListResponse, error) {
	return s.list(db, "", criteria)
}

func (s *settlementService) ListForSeller(db *gorm.DB, sellerID string, criteria dto.SettlementCriteria) (*dto.SettlementListResponse, error) {
	return s.list(db, sellerID, criteria)
}

func (s *settlementService) list(db *gorm.DB, sellerID string, criteria dto.SettlementCriteria) (*dto.SettlementListResponse, error) {
	if criteria.Page <= 0 {
		criteria.Page = 1
	}
	if criteria.PageSize <= 0 {
		criteria.PageSize = 20
	}

	repoCriteria := repositories.SettlementCriteria{
		SellerID: sellerID,
		Status:   models.SettlementStatus(criteria.Status),
		DateFrom: dateRangeFrom(criteria.DateRange),
		Search:   criteria.Search,
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	}

	settlements, total, err := s.settlementRepo.List(db, repoCriteria)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SettlementResponse, 0, len(settlements))
	for i := range settlements {
		responses = append(responses, buildSettlementResponse(&settlements[i]))
	}

	return &dto.SettlementListResponse{
		Settlements: responses,
		Pagination: dto.Pagination{
			Page:     criteria.Page,
			PageSize: criteria.PageSize,
			Total:    total,
		},
	}, nil
}

func (s *settlementService) Get(db *gorm.DB, id string) (*dto.SettlementResponse, error) {
	settlement, err := s.settlementRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrSettlementNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return buildSettlementResponse(settlement), nil
}

// UpdateStatus is an unconditional overwrite (admin operation); only the
// status value itself is validated.
func (s *settlementService) UpdateStatus(db *gorm.DB, id string, status models.SettlementStatus) (*dto.SettlementResponse, error) {
	if err := s.settlementRepo.UpdateStatus(db, id, status); err != nil {
		if err == repositories.ErrSettlementNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return s.Get(db, id)
}

func (s *settlementService) Summary(db *gorm.DB, sellerID string) (*repositories.SettlementSummary, error) {
	return s.settlementRepo.Summary(db, sellerID)
}

func buildSettlementResponse(settlement *models.Settlement) *dto.SettlementResponse {
	return &dto.SettlementResponse{
		ID:               settlement.ID,
		BookingID:        settlement.BookingID,
		BusinessID:       settlement.BusinessID,
		BusinessName:     settlement.Business.Name,
		SellerID:         settlement.SellerID,
		CustomerID:       settlement.CustomerID,
		ServiceName:      settlement.ServiceName,
		GrossAmount:      settlement.GrossAmount,
		CommissionAmount: settlement.CommissionAmount,
		NetAmount:        settlement.NetAmount,
		Status:           string(settlement.Status),
		SettlementDate:   settlement.SettlementDate,
		PaymentID:        settlement.PaymentID,
		CreatedAt:        settlement.CreatedAt,
	}
}
