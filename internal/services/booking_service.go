package services

import (
	"encoding/json"
	"fmt"
	"time"

	"easylife_backend/internal/config"
	"easylife_backend/internal/email"
	"easylife_backend/internal/logger"
	"easylife_backend/internal/metrics"
	"easylife_backend/internal/models"
	"easylife_backend/internal/repositories"
	"easylife_backend/internal/services/dto"
	"easylife_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingService interface {
	Create(db *gorm.DB, customerID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	Get(db *gorm.DB, requesterID string, role models.UserRole, bookingID string) (*dto.BookingResponse, error)
	Transition(db *gorm.DB, requesterID string, role models.UserRole, bookingID string, newStatus models.BookingStatus, reason string) (*dto.BookingResponse, error)
	List(db *gorm.DB, requesterID string, role models.UserRole, criteria dto.BookingCriteria) (*dto.BookingListResponse, error)
	ListForCustomer(db *gorm.DB, customerID string, criteria dto.BookingCriteria) (*dto.BookingListResponse, error)
	ListForSeller(db *gorm.DB, sellerID string, criteria dto.BookingCriteria) (*dto.BookingListResponse, error)
	MarkPaid(db *gorm.DB, bookingID string, req *dto.MarkPaidRequest) (*dto.BookingResponse, error)
	ListTransactions(db *gorm.DB, bookingID string) ([]*dto.TransactionResponse, error)
}

type bookingService struct {
	bookingRepo      repositories.BookingRepository
	businessRepo     repositories.BusinessRepository
	settlementRepo   repositories.SettlementRepository
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	businessRepo repositories.BusinessRepository,
	settlementRepo repositories.SettlementRepository,
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) BookingService {
	return &bookingService{
		bookingRepo:      bookingRepo,
		businessRepo:     businessRepo,
		settlementRepo:   settlementRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
	}
}

// computeCommission applies the platform rate with decimal arithmetic so
// 1000 * 0.15 is exactly 150, not 149.99999....
func computeCommission(amount float64) float64 {
	rate := config.GetConfig().Platform.CommissionRate
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(rate)).
		Round(2).
		InexactFloat64()
}

func netAmount(gross, commission float64) float64 {
	return decimal.NewFromFloat(gross).
		Sub(decimal.NewFromFloat(commission)).
		Round(2).
		InexactFloat64()
}

func (s *bookingService) Create(db *gorm.DB, customerID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	business, err := s.businessRepo.FindByID(db, req.BusinessID)
	if err != nil {
		if err == repositories.ErrBusinessNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if business.Status != models.BusinessStatusApproved {
		return nil, apperrors.ErrBusinessNotBookable
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid eventDate format. Use YYYY-MM-DD")
	}

	booking := &models.Booking{
		BusinessID:      req.BusinessID,
		CustomerID:      customerID,
		Service:         req.Service,
		EventDate:       eventDate,
		EventTime:       req.EventTime,
		Location:        req.Location,
		GuestCount:      req.GuestCount,
		SpecialRequests: req.SpecialRequests,
		Amount:          req.Amount,
		Commission:      computeCommission(req.Amount),
		PaymentStatus:   models.PaymentStatusPending,
		Status:          models.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(db, booking); err != nil {
		return nil, err
	}

	s.notify(db, business.OwnerID, "booking_created", "New booking request",
		fmt.Sprintf("New booking for %s on %s", booking.Service, eventDate.Format("2006-01-02")),
		map[string]interface{}{"booking_id": booking.ID, "business_id": business.ID})

	booking.Business = *business
	return buildBookingResponse(booking), nil
}

func (s *bookingService) Get(db *gorm.DB, requesterID string, role models.UserRole, bookingID string) (*dto.BookingResponse, error) {
	booking, err := s.loadAuthorized(db, requesterID, role, bookingID)
	if err != nil {
		return nil, err
	}
	return buildBookingResponse(booking), nil
}

// Transition moves a booking through its lifecycle. Illegal moves are
// rejected against the transitions table; completing a paid booking creates
// the settlement inside the same database transaction.
func (s *bookingService) Transition(db *gorm.DB, requesterID string, role models.UserRole, bookingID string, newStatus models.BookingStatus, reason string) (*dto.BookingResponse, error) {
	booking, err := s.loadAuthorized(db, requesterID, role, bookingID)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(booking.Status, newStatus) {
		return nil, apperrors.ErrInvalidStatus("booking",
			fmt.Sprintf("Cannot transition booking from %s to %s", booking.Status, newStatus))
	}

	if newStatus == models.BookingStatusCancelled {
		if reason == "" && role != models.UserRoleAdmin {
			return nil, apperrors.ErrCancellationReasonRequired
		}
		booking.CancellationReason = reason
	}

	booking.Status = newStatus

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.bookingRepo.Update(tx, booking); err != nil {
			return err
		}
		if newStatus == models.BookingStatusCompleted && booking.PaymentStatus == models.PaymentStatusPaid {
			return s.createSettlement(tx, booking)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(db, booking.CustomerID, "booking_status",
		fmt.Sprintf("Booking %s", newStatus),
		fmt.Sprintf("Your booking for %s is now %s", booking.Service, newStatus),
		map[string]interface{}{"booking_id": booking.ID, "status": string(newStatus)})

	if newStatus == models.BookingStatusConfirmed || newStatus == models.BookingStatusCompleted {
		s.mailCustomer(db, booking, newStatus)
	}

	return buildBookingResponse(booking), nil
}

// createSettlement records the seller payout for one completed paid booking.
// The repository re-checks the one-per-booking rule; the unique index on
// booking_id catches the concurrent-complete race.
func (s *bookingService) createSettlement(tx *gorm.DB, booking *models.Booking) error {
	cfg := config.GetConfig()

	settlement := &models.Settlement{
		BookingID:        booking.ID,
		BusinessID:       booking.BusinessID,
		SellerID:         booking.Business.OwnerID,
		CustomerID:       booking.CustomerID,
		ServiceName:      booking.Service,
		GrossAmount:      booking.Amount,
		CommissionAmount: booking.Commission,
		NetAmount:        netAmount(booking.Amount, booking.Commission),
		Status:           models.SettlementStatusPending,
		SettlementDate:   time.Now().AddDate(0, 0, cfg.Platform.SettlementDelayDays),
	}

	if err := s.settlementRepo.Create(tx, settlement); err != nil {
		if err == repositories.ErrSettlementExists {
			return apperrors.ErrSettlementExists
		}
		return err
	}

	metrics.SettlementCreated()

	s.notify(tx, settlement.SellerID, "settlement_created", "Settlement scheduled",
		fmt.Sprintf("Payout of %.2f for %s is scheduled for %s",
			settlement.NetAmount, settlement.ServiceName, settlement.SettlementDate.Format("2006-01-02")),
		map[string]interface{}{"settlement_id": settlement.ID, "booking_id": booking.ID})

	return nil
}

// MarkPaid records the out-of-band payment. If the booking already reached
// completed, the settlement is created now so the settlement-iff-completed-
// and-paid invariant holds in both orderings.
func (s *bookingService) MarkPaid(db *gorm.DB, bookingID string, req *dto.MarkPaidRequest) (*dto.BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		if err == repositories.ErrBookingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if booking.PaymentStatus == models.PaymentStatusPaid {
		return nil, apperrors.ErrInvalidOperation("booking", "Booking is already paid")
	}

	booking.PaymentStatus = models.PaymentStatusPaid

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.bookingRepo.Update(tx, booking); err != nil {
			return err
		}

		txn := &models.Transaction{
			BookingID:   booking.ID,
			Amount:      booking.Amount,
			Method:      req.Method,
			Status:      models.PaymentStatusPaid,
			ReferenceID: req.ReferenceID,
		}
		if err := s.bookingRepo.CreateTransaction(tx, txn); err != nil {
			return err
		}

		return s.settleIfDue(tx, booking)
	})
	if err != nil {
		return nil, err
	}

	return buildBookingResponse(booking), nil
}

// settleIfDue creates the settlement when a payment lands on an already
// completed booking. A lookup failure other than not-found is surfaced, not
// swallowed.
func (s *bookingService) settleIfDue(tx *gorm.DB, booking *models.Booking) error {
	if booking.Status != models.BookingStatusCompleted {
		return nil
	}
	_, err := s.settlementRepo.FindByBookingID(tx, booking.ID)
	if err == repositories.ErrSettlementNotFound {
		return s.createSettlement(tx, booking)
	}
	return err
}

func (s *bookingService) List(db *gorm.DB, requesterID string, role models.UserRole, criteria dto.BookingCriteria) (*dto.BookingListResponse, error) {
	repoCriteria := repositories.BookingCriteria{
		Status:   models.BookingStatus(criteria.Status),
		Search:   criteria.Search,
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	}
	// Admins see everything; sellers the bookings of their businesses;
	// customers only their own.
	switch role {
	case models.UserRoleAdmin:
	case models.UserRoleSeller:
		repoCriteria.SellerID = requesterID
	default:
		repoCriteria.CustomerID = requesterID
	}
	return s.list(db, repoCriteria)
}

func (s *bookingService) ListForCustomer(db *gorm.DB, customerID string, criteria dto.BookingCriteria) (*dto.BookingListResponse, error) {
	return s.list(db, repositories.BookingCriteria{
		CustomerID: customerID,
		Status:     models.BookingStatus(criteria.Status),
		Search:     criteria.Search,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
	})
}

// ListForSeller is the seller "orders" view: a projection of bookings
// against businesses the seller owns.
func (s *bookingService) ListForSeller(db *gorm.DB, sellerID string, criteria dto.BookingCriteria) (*dto.BookingListResponse, error) {
	return s.list(db, repositories.BookingCriteria{
		SellerID: sellerID,
		Status:   models.BookingStatus(criteria.Status),
		Search:   criteria.Search,
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	})
}

func (s *bookingService) list(db *gorm.DB, criteria repositories.BookingCriteria) (*dto.BookingListResponse, error) {
	if criteria.Page <= 0 {
		criteria.Page = 1
	}
	if criteria.PageSize <= 0 {
		criteria.PageSize = 20
	}

	bookings, total, err := s.bookingRepo.List(db, criteria)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, buildBookingResponse(&bookings[i]))
	}

	return &dto.BookingListResponse{
		Bookings: responses,
		Pagination: dto.Pagination{
			Page:     criteria.Page,
			PageSize: criteria.PageSize,
			Total:    total,
		},
	}, nil
}

func (s *bookingService) ListTransactions(db *gorm.DB, bookingID string) ([]*dto.TransactionResponse, error) {
	if _, err := s.bookingRepo.FindByID(db, bookingID); err != nil {
		if err == repositories.ErrBookingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	txns, err := s.bookingRepo.ListTransactions(db, bookingID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		responses = append(responses, &dto.TransactionResponse{
			ID:          txn.ID,
			BookingID:   txn.BookingID,
			Amount:      txn.Amount,
			Method:      txn.Method,
			Status:      string(txn.Status),
			ReferenceID: txn.ReferenceID,
			CreatedAt:   txn.CreatedAt,
		})
	}
	return responses, nil
}

// loadAuthorized loads the booking and checks the caller is a party to it:
// the owning customer, the seller owning the business, or an admin.
func (s *bookingService) loadAuthorized(db *gorm.DB, requesterID string, role models.UserRole, bookingID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		if err == repositories.ErrBookingNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if role == models.UserRoleAdmin {
		return booking, nil
	}
	if booking.CustomerID == requesterID {
		return booking, nil
	}
	if booking.Business.OwnerID == requesterID {
		return booking, nil
	}
	return nil, apperrors.ErrBookingAccessDenied
}

// notify writes an in-database notification; failures are logged, never
// surfaced (the inbox is fire-and-forget).
func (s *bookingService) notify(db *gorm.DB, userID, notifType, title, message string, data map[string]interface{}) {
	var dataJSON datatypes.JSON
	if data != nil {
		if jsonData, err := json.Marshal(data); err == nil {
			dataJSON = datatypes.JSON(jsonData)
		}
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Data:    dataJSON,
	}
	if err := s.notificationRepo.Create(db, notification); err != nil {
		logger.WithError(err).Warn("failed to create notification", "user_id", userID, "type", notifType)
	}
}

// mailCustomer mirrors confirmed/completed events to email, best effort.
func (s *bookingService) mailCustomer(db *gorm.DB, booking *models.Booking, status models.BookingStatus) {
	if s.emailProvider == nil {
		return
	}
	customer, err := s.userRepo.FindByID(db, booking.CustomerID)
	if err != nil {
		return
	}

	msg := &email.Email{
		To:      []string{customer.Email},
		Subject: fmt.Sprintf("Your booking is %s", status),
		Body:    fmt.Sprintf("Hi %s,\n\nYour booking for %s is now %s.\n\nEasy Life Gangtok", customer.Name, booking.Service, status),
	}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.WithError(err).Warn("failed to send booking email", "booking_id", booking.ID)
	}
}

func buildBookingResponse(booking *models.Booking) *dto.BookingResponse {
	return &dto.BookingResponse{
		ID:                 booking.ID,
		BusinessID:         booking.BusinessID,
		BusinessName:       booking.Business.Name,
		CustomerID:         booking.CustomerID,
		Service:            booking.Service,
		EventDate:          booking.EventDate,
		EventTime:          booking.EventTime,
		Location:           booking.Location,
		GuestCount:         booking.GuestCount,
		SpecialRequests:    booking.SpecialRequests,
		Amount:             booking.Amount,
		Commission:         booking.Commission,
		PaymentStatus:      string(booking.PaymentStatus),
		Status:             string(booking.Status),
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}
}
