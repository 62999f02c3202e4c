package services

import (
	"errors"
	"testing"

	"easylife_backend/internal/config"
	"easylife_backend/internal/models"
	"easylife_backend/internal/repositories"
	"easylife_backend/internal/services/dto"
	"easylife_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestConfig() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Platform.CommissionRate = 0.15
	cfg.Platform.SettlementDelayDays = 4
	config.AppConfig = cfg
}

// ---------------- fakes ----------------

type fakeBookingRepo struct {
	bookings     map[string]*models.Booking
	created      []*models.Booking
	lastCriteria repositories.BookingCriteria
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(db *gorm.DB, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = "booking-1"
	}
	f.bookings[booking.ID] = booking
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookingRepo) FindByID(db *gorm.DB, id string) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, repositories.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) Update(db *gorm.DB, booking *models.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) List(db *gorm.DB, criteria repositories.BookingCriteria) ([]models.Booking, int64, error) {
	f.lastCriteria = criteria
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBookingRepo) CreateTransaction(db *gorm.DB, txn *models.Transaction) error {
	return nil
}

func (f *fakeBookingRepo) ListTransactions(db *gorm.DB, bookingID string) ([]models.Transaction, error) {
	return nil, nil
}

type fakeBusinessRepo struct {
	businesses map[string]*models.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: make(map[string]*models.Business)}
}

func (f *fakeBusinessRepo) Create(db *gorm.DB, business *models.Business) error {
	f.businesses[business.ID] = business
	return nil
}

func (f *fakeBusinessRepo) FindByID(db *gorm.DB, id string) (*models.Business, error) {
	business, ok := f.businesses[id]
	if !ok {
		return nil, repositories.ErrBusinessNotFound
	}
	return business, nil
}

func (f *fakeBusinessRepo) FindByOwner(db *gorm.DB, ownerID string) ([]models.Business, error) {
	return nil, nil
}

func (f *fakeBusinessRepo) Update(db *gorm.DB, business *models.Business) error { return nil }

func (f *fakeBusinessRepo) UpdateStatus(db *gorm.DB, id string, status models.BusinessStatus, reason string) error {
	return nil
}

func (f *fakeBusinessRepo) List(db *gorm.DB, criteria repositories.BusinessCriteria) ([]models.Business, int64, error) {
	return nil, 0, nil
}

func (f *fakeBusinessRepo) Save(db *gorm.DB, customerID, businessID string) (*models.SavedBusiness, error) {
	return nil, nil
}

func (f *fakeBusinessRepo) Unsave(db *gorm.DB, customerID, businessID string) error { return nil }

func (f *fakeBusinessRepo) ListSaved(db *gorm.DB, customerID string) ([]models.SavedBusiness, error) {
	return nil, nil
}

type fakeSettlementRepo struct {
	settlements map[string]*models.Settlement // keyed by booking id
	findErr     error
}

func newFakeSettlementRepo() *fakeSettlementRepo {
	return &fakeSettlementRepo{settlements: make(map[string]*models.Settlement)}
}

func (f *fakeSettlementRepo) Create(db *gorm.DB, settlement *models.Settlement) error {
	if _, exists := f.settlements[settlement.BookingID]; exists {
		return repositories.ErrSettlementExists
	}
	if settlement.ID == "" {
		settlement.ID = "settlement-1"
	}
	f.settlements[settlement.BookingID] = settlement
	return nil
}

func (f *fakeSettlementRepo) FindByID(db *gorm.DB, id string) (*models.Settlement, error) {
	for _, s := range f.settlements {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repositories.ErrSettlementNotFound
}

func (f *fakeSettlementRepo) FindByBookingID(db *gorm.DB, bookingID string) (*models.Settlement, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	settlement, ok := f.settlements[bookingID]
	if !ok {
		return nil, repositories.ErrSettlementNotFound
	}
	return settlement, nil
}

func (f *fakeSettlementRepo) UpdateStatus(db *gorm.DB, id string, status models.SettlementStatus) error {
	return nil
}

func (f *fakeSettlementRepo) List(db *gorm.DB, criteria repositories.SettlementCriteria) ([]models.Settlement, int64, error) {
	return nil, 0, nil
}

func (f *fakeSettlementRepo) Summary(db *gorm.DB, sellerID string) (*repositories.SettlementSummary, error) {
	return &repositories.SettlementSummary{}, nil
}

type fakeNotificationRepo struct {
	created []*models.Notification
}

func (f *fakeNotificationRepo) Create(db *gorm.DB, notification *models.Notification) error {
	f.created = append(f.created, notification)
	return nil
}

func (f *fakeNotificationRepo) FindByID(db *gorm.DB, id string) (*models.Notification, error) {
	return nil, repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) FindByUser(db *gorm.DB, userID string, page, pageSize int) ([]models.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationRepo) MarkAsRead(db *gorm.DB, id string) error        { return nil }
func (f *fakeNotificationRepo) MarkAllAsRead(db *gorm.DB, userID string) error { return nil }
func (f *fakeNotificationRepo) CountUnread(db *gorm.DB, userID string) (int64, error) {
	return 0, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *models.User) error { return nil }

func (f *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Update(db *gorm.DB, user *models.User) error { return nil }

func (f *fakeUserRepo) UpdateStatus(db *gorm.DB, id string, status models.UserStatus) error {
	return nil
}

func (f *fakeUserRepo) List(db *gorm.DB, role models.UserRole, page, pageSize int) ([]models.User, int64, error) {
	return nil, 0, nil
}

// ---------------- fixtures ----------------

type bookingFixture struct {
	service        BookingService
	bookingRepo    *fakeBookingRepo
	businessRepo   *fakeBusinessRepo
	settlementRepo *fakeSettlementRepo
	notifications  *fakeNotificationRepo
}

func newBookingFixture() *bookingFixture {
	setupTestConfig()

	bookingRepo := newFakeBookingRepo()
	businessRepo := newFakeBusinessRepo()
	settlementRepo := newFakeSettlementRepo()
	notifications := &fakeNotificationRepo{}
	userRepo := newFakeUserRepo()

	return &bookingFixture{
		service:        NewBookingService(bookingRepo, businessRepo, settlementRepo, notifications, userRepo, nil),
		bookingRepo:    bookingRepo,
		businessRepo:   businessRepo,
		settlementRepo: settlementRepo,
		notifications:  notifications,
	}
}

func (f *bookingFixture) addBusiness(id, ownerID string, status models.BusinessStatus) *models.Business {
	business := &models.Business{
		OwnerID: ownerID,
		Name:    "Test Caterers",
		Status:  status,
	}
	business.ID = id
	f.businessRepo.businesses[id] = business
	return business
}

func (f *bookingFixture) addBooking(id, customerID string, business *models.Business, status models.BookingStatus, payment models.PaymentStatus) *models.Booking {
	booking := &models.Booking{
		BusinessID:    business.ID,
		CustomerID:    customerID,
		Service:       "Wedding catering",
		Amount:        1000,
		Commission:    150,
		Status:        status,
		PaymentStatus: payment,
		Business:      *business,
	}
	booking.ID = id
	f.bookingRepo.bookings[id] = booking
	return booking
}

// ---------------- commission math ----------------

func TestComputeCommission(t *testing.T) {
	setupTestConfig()

	cases := []struct {
		amount   float64
		expected float64
	}{
		{1000, 150},
		{100, 15},
		{999, 149.85},
		{0.01, 0},   // 0.0015 rounds to 0.00
		{66.67, 10}, // 10.0005 rounds to 10.00
		{12345.67, 1851.85},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, computeCommission(tc.amount), "amount %v", tc.amount)
	}
}

func TestNetAmount(t *testing.T) {
	assert.Equal(t, 850.0, netAmount(1000, 150))
	assert.Equal(t, 849.15, netAmount(999, 149.85))
	// Floating point would give 0.060000000000000005 here.
	assert.Equal(t, 0.06, netAmount(0.36, 0.30))
}

// ---------------- create ----------------

func TestBookingCreate_SetsCommissionAndPendingStatus(t *testing.T) {
	f := newBookingFixture()
	f.addBusiness("biz-1", "seller-1", models.BusinessStatusApproved)

	resp, err := f.service.Create(nil, "customer-1", &dto.CreateBookingRequest{
		BusinessID: "biz-1",
		Service:    "Wedding catering",
		EventDate:  "2026-09-15",
		Amount:     1000,
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, resp.Amount)
	assert.Equal(t, 150.0, resp.Commission)
	assert.Equal(t, string(models.BookingStatusPending), resp.Status)
	assert.Equal(t, string(models.PaymentStatusPending), resp.PaymentStatus)

	// Seller gets an inbox notification.
	require.Len(t, f.notifications.created, 1)
	assert.Equal(t, "seller-1", f.notifications.created[0].UserID)
}

func TestBookingCreate_RejectsUnapprovedBusiness(t *testing.T) {
	f := newBookingFixture()
	f.addBusiness("biz-1", "seller-1", models.BusinessStatusPending)

	_, err := f.service.Create(nil, "customer-1", &dto.CreateBookingRequest{
		BusinessID: "biz-1",
		Service:    "Catering",
		EventDate:  "2026-09-15",
		Amount:     500,
	})
	assert.ErrorIs(t, err, apperrors.ErrBusinessNotBookable)
}

func TestBookingCreate_RejectsBadEventDate(t *testing.T) {
	f := newBookingFixture()
	f.addBusiness("biz-1", "seller-1", models.BusinessStatusApproved)

	_, err := f.service.Create(nil, "customer-1", &dto.CreateBookingRequest{
		BusinessID: "biz-1",
		Service:    "Catering",
		EventDate:  "15-09-2026",
		Amount:     500,
	})

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestBookingCreate_UnknownBusiness(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.Create(nil, "customer-1", &dto.CreateBookingRequest{
		BusinessID: "missing",
		Service:    "Catering",
		EventDate:  "2026-09-15",
		Amount:     500,
	})

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

// ---------------- transitions ----------------

func TestTransition_IllegalMoveRejected(t *testing.T) {
	f := newBookingFixture()
	business := f.addBusiness("biz-1", "seller-1", models.BusinessStatusApproved)

	cases := []struct {
		from models.BookingStatus
		to   models.BookingStatus
	}{
		{models.BookingStatusPending, models.BookingStatusCompleted},
		{models.BookingStatusCompleted, models.BookingStatusCancelled},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed},
		{models.BookingStatusCompleted, models.BookingStatusConfirmed},
	}

	for i, tc := range cases {
		booking := f.addBooking("booking-x", "customer-1", business, tc.from, models.PaymentStatusPending)

		_, err := f.service.Transition(nil, "customer-1", models.UserRoleCustomer, booking.ID, tc.to, "")

		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr), "case %d: %s -> %s", i, tc.from, tc.to)
		assert.Equal(t, 409, appErr.HTTPCode, "case %d: %s -> %s", i, tc.from, tc.to)
		assert.Equal(t, tc.from, booking.Status, "status must not change on a rejected move")
	}
}

func TestTransition_CancelRequiresReason(t *testing.T) {
	f := newBookingFixture()
	business := f.addBusiness("biz-1", "seller-1", models.BusinessStatusApproved)
	booking := f.addBooking("booking-1", "customer-1", business, models.BookingStatusPending, models.PaymentStatusPending)

	_, err := f.service.Transition(nil, "customer-1", models.UserRoleCustomer, booking.ID, models.BookingStatusCancelled, "")
	assert.ErrorIs(t, err, apperrors.ErrCancellationReasonRequired)
}

func TestTransition_StrangerDenied(t *testing.T) {
	f := newBookingFixture()
	business := f.addBusiness("biz-1", "seller-1", models.BusinessStatusApproved)
	booking := f.addBooking("booking-1", "customer-1", business, models.BookingStatusPending, models.PaymentStatusPending)

	// Another customer cannot even see the booking, let alone move it.
	_, err := f.service.Transition(nil, "customer-2", models.UserRoleCustomer, booking.ID, models.BookingStatusConfirmed, "")
	assert.ErrorIs(t, err, apperrors.ErrBookingAccessDenied)

	// A seller who does not own the business is a stranger too.
	_, err = f.service.Transition(nil, "seller-2", models.UserRoleSeller, booking.ID, models.BookingStatusConfirmed, "")
	assert.ErrorIs(t, err, apperrors.ErrBookingAccessDenied)

	_, err = f.service.Get(nil, "customer-2", models.UserRoleCustomer, booking.ID)
	assert.ErrorIs(t, err, apperrors.ErrBookingAccessDenied)
}

func TestGet_PartiesAllowed(t *testing.T) {
	f := newBookingFixture()
	business := f.addBusiness("biz-1", "seller-1", models.BusinessStatusApproved)
	booking := f.addBooking("booking-1", "customer-1", business, models.BookingStatusPending, models.PaymentStatusPending)

	for _, tc := range []struct {
		userID string
		role   models.UserRole
	}{
		{"customer-1", models.UserRoleCustomer},
		{"seller-1", models.UserRoleSeller},
		{"someone-else", models.UserRoleAdmin},
	} {
		resp, err := f.service.Get(nil, tc.userID, tc.role, booking.ID)
		require.NoError(t, err, "%s/%s should see the booking", tc.userID, tc.role)
		assert.Equal(t, booking.ID, resp.ID)
	}
}

// ---------------- payment ----------------

func TestMarkPaid_RejectsAlreadyPaid(t *testing.T) {
	f := newBookingFixture()
	business := f.addBusiness("biz-1", "seller-1", models.BusinessStatusApproved)
	booking := f.addBooking("booking-1", "customer-1", business, models.BookingStatusConfirmed, models.PaymentStatusPaid)

	_, err := f.service.MarkPaid(nil, booking.ID, &dto.MarkPaidRequest{Method: "upi"})

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestSettleIfDue_CreatesOnceForCompletedBooking(t *testing.T) {
	f := newBookingFixture()
	business := f.addBusiness("biz-1", "seller-1", models.BusinessStatusApproved)
	booking := f.addBooking("booking-1", "customer-1", business, models.BookingStatusCompleted, models.PaymentStatusPaid)

	svc := f.service.(*bookingService)

	require.NoError(t, svc.settleIfDue(nil, booking))
	require.Len(t, f.settlementRepo.settlements, 1)
	assert.Equal(t, 850.0, f.settlementRepo.settlements[booking.ID].NetAmount)

	// Already settled: nothing to do, no error.
	require.NoError(t, svc.settleIfDue(nil, booking))
	assert.Len(t, f.settlementRepo.settlements, 1)
}

func TestSettleIfDue_SkipsUncompletedBooking(t *testing.T) {
	f := newBookingFixture()
	business := f.addBusiness("biz-1", "seller-1", models.BusinessStatusApproved)
	booking := f.addBooking("booking-1", "customer-1", business, models.BookingStatusConfirmed, models.PaymentStatusPaid)

	require.NoError(t, f.service.(*bookingService).settleIfDue(nil, booking))
	assert.Empty(t, f.settlementRepo.settlements)
}

func TestSettleIfDue_LookupFailurePropagated(t *testing.T) {
	f := newBookingFixture()
	business := f.addBusiness("biz-1", "seller-1", models.BusinessStatusApproved)
	booking := f.addBooking("booking-1", "customer-1", business, models.BookingStatusCompleted, models.PaymentStatusPaid)

	lookupErr := errors.New("connection reset")
	f.settlementRepo.findErr = lookupErr

	err := f.service.(*bookingService).settleIfDue(nil, booking)
	assert.ErrorIs(t, err, lookupErr)
	assert.Empty(t, f.settlementRepo.settlements, "no settlement after a failed lookup")
}

// ---------------- listing ----------------

func TestList_ScopesByRole(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.List(nil, "admin-1", models.UserRoleAdmin, dto.BookingCriteria{Status: "pending"})
	require.NoError(t, err)
	assert.Empty(t, f.bookingRepo.lastCriteria.CustomerID)
	assert.Empty(t, f.bookingRepo.lastCriteria.SellerID)
	assert.Equal(t, models.BookingStatusPending, f.bookingRepo.lastCriteria.Status)

	_, err = f.service.List(nil, "seller-1", models.UserRoleSeller, dto.BookingCriteria{})
	require.NoError(t, err)
	assert.Equal(t, "seller-1", f.bookingRepo.lastCriteria.SellerID)
	assert.Empty(t, f.bookingRepo.lastCriteria.CustomerID)

	_, err = f.service.List(nil, "customer-1", models.UserRoleCustomer, dto.BookingCriteria{})
	require.NoError(t, err)
	assert.Equal(t, "customer-1", f.bookingRepo.lastCriteria.CustomerID)
	assert.Empty(t, f.bookingRepo.lastCriteria.SellerID)
}
