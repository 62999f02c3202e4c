package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"easylife_backend/internal/models"
	"easylife_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingBody struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	Commission    float64 `json:"commission"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
}

func createBookingViaAPI(t *testing.T, ts *helpers.TestServer, customerToken, businessID string, amount float64) bookingBody {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/bookings/service", customerToken, map[string]interface{}{
		"businessId": businessID,
		"service":    "Wedding catering",
		"eventDate":  "2026-10-20",
		"amount":     amount,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Booking creation failed: "+body)

	var booking bookingBody
	require.NoError(t, json.Unmarshal([]byte(body), &booking))
	return booking
}

func TestBookingLifecycle_CompletedPaidCreatesOneSettlement(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	customerToken, _ := helpers.CreateAndLoginCustomer(t, ts)
	sellerToken, seller, business := helpers.CreateAndLoginSeller(t, ts)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	// Customer books: 15% commission fixed at creation.
	booking := createBookingViaAPI(t, ts, customerToken, business.ID, 1000)
	assert.Equal(t, 150.0, booking.Commission)
	assert.Equal(t, "pending", booking.Status)
	assert.Equal(t, "pending", booking.PaymentStatus)

	// Seller confirms.
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/confirm", sellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Admin records the payment.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/payment", adminToken, map[string]interface{}{
		"method": "upi",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Seller completes: settlement must appear.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/complete", sellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var settlements []models.Settlement
	require.NoError(t, ts.DB.Where("booking_id = ?", booking.ID).Find(&settlements).Error)
	require.Len(t, settlements, 1, "exactly one settlement per completed paid booking")

	settlement := settlements[0]
	assert.Equal(t, 1000.0, settlement.GrossAmount)
	assert.Equal(t, 150.0, settlement.CommissionAmount)
	assert.Equal(t, 850.0, settlement.NetAmount)
	assert.Equal(t, models.SettlementStatusPending, settlement.Status)
	assert.Equal(t, seller.ID, settlement.SellerID)

	// Settlement date is completion + 4 days.
	expected := time.Now().AddDate(0, 0, 4)
	assert.WithinDuration(t, expected, settlement.SettlementDate, time.Hour)

	// Completed is terminal: repeating the move is a conflict and no second
	// settlement shows up.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/complete", sellerToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/cancel", adminToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Settlement{}).Where("booking_id = ?", booking.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBookingLifecycle_PaymentAfterCompletionStillSettles(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	customerToken, _ := helpers.CreateAndLoginCustomer(t, ts)
	sellerToken, _, business := helpers.CreateAndLoginSeller(t, ts)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	booking := createBookingViaAPI(t, ts, customerToken, business.ID, 600)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/confirm", sellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Complete while still unpaid: no settlement yet.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/complete", sellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var count int64
	ts.DB.Model(&models.Settlement{}).Where("booking_id = ?", booking.ID).Count(&count)
	require.Equal(t, int64(0), count, "no settlement until the booking is paid")

	// Payment lands afterwards: the settlement is created now.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/payment", adminToken, map[string]interface{}{
		"method":      "bank_transfer",
		"referenceId": "TXN-42",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var settlements []models.Settlement
	require.NoError(t, ts.DB.Where("booking_id = ?", booking.ID).Find(&settlements).Error)
	require.Len(t, settlements, 1)
	assert.Equal(t, 510.0, settlements[0].NetAmount) // 600 - 90

	// The payment is also on the transaction ledger.
	var txns []models.Transaction
	require.NoError(t, ts.DB.Where("booking_id = ?", booking.ID).Find(&txns).Error)
	require.Len(t, txns, 1)
	assert.Equal(t, "TXN-42", txns[0].ReferenceID)
}

func TestBookingCancel_ReasonRequired(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	customerToken, _ := helpers.CreateAndLoginCustomer(t, ts)
	_, _, business := helpers.CreateAndLoginSeller(t, ts)

	booking := createBookingViaAPI(t, ts, customerToken, business.ID, 300)

	// No reason: rejected.
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/cancel", customerToken, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// With a reason: cancelled, and the reason is stored.
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/bookings/"+booking.ID+"/cancel", customerToken, map[string]interface{}{
		"cancellationReason": "Venue changed",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stored models.Booking
	require.NoError(t, ts.DB.First(&stored, "id = ?", booking.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)
	assert.Equal(t, "Venue changed", stored.CancellationReason)
}

func TestBookingAccess_StrangersGetForbidden(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	customerToken, _ := helpers.CreateAndLoginCustomer(t, ts)
	_, _, business := helpers.CreateAndLoginSeller(t, ts)
	otherCustomerToken, _ := helpers.CreateAndLoginCustomer(t, ts)
	otherSellerToken, _, _ := helpers.CreateAndLoginSeller(t, ts)

	booking := createBookingViaAPI(t, ts, customerToken, business.ID, 300)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/bookings/"+booking.ID, otherCustomerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/bookings/"+booking.ID, otherSellerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Parties still see it.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/bookings/"+booking.ID, customerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Without a token the middleware rejects outright.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/bookings/"+booking.ID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestBookingCreate_UnapprovedBusinessRejected(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	customerToken, _ := helpers.CreateAndLoginCustomer(t, ts)
	_, seller, _ := helpers.CreateAndLoginSeller(t, ts)
	pending := helpers.CreateTestBusiness(t, ts.DB, seller.ID, models.BusinessStatusPending)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/bookings/service", customerToken, map[string]interface{}{
		"businessId": pending.ID,
		"service":    "Catering",
		"eventDate":  "2026-10-20",
		"amount":     500,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSellerOrders_OnlyOwnBusinesses(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	customerToken, _ := helpers.CreateAndLoginCustomer(t, ts)
	sellerToken, _, business := helpers.CreateAndLoginSeller(t, ts)
	otherSellerToken, _, otherBusiness := helpers.CreateAndLoginSeller(t, ts)

	createBookingViaAPI(t, ts, customerToken, business.ID, 400)
	createBookingViaAPI(t, ts, customerToken, otherBusiness.ID, 700)

	var listing struct {
		Bookings []bookingBody `json:"bookings"`
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/seller/orders", sellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Bookings, 1)
	assert.Equal(t, 400.0, listing.Bookings[0].Amount)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/seller/orders", otherSellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Bookings, 1)
	assert.Equal(t, 700.0, listing.Bookings[0].Amount)

	// Customers cannot use the seller view at all.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/seller/orders", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestBookingList_StatusFilterScopedByRole(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	customerAToken, _ := helpers.CreateAndLoginCustomer(t, ts)
	customerBToken, _ := helpers.CreateAndLoginCustomer(t, ts)
	sellerToken, _, business := helpers.CreateAndLoginSeller(t, ts)
	otherSellerToken, _, _ := helpers.CreateAndLoginSeller(t, ts)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	// Two pending bookings from different customers plus one confirmed.
	pendingA := createBookingViaAPI(t, ts, customerAToken, business.ID, 100)
	confirmed := createBookingViaAPI(t, ts, customerAToken, business.ID, 200)
	pendingB := createBookingViaAPI(t, ts, customerBToken, business.ID, 300)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/bookings/"+confirmed.ID+"/confirm", sellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listing struct {
		Bookings []bookingBody `json:"bookings"`
	}
	listIDs := func(token, path string) []string {
		res, body := ts.SendRequest(t, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		require.NoError(t, json.Unmarshal([]byte(body), &listing))
		ids := make([]string, 0, len(listing.Bookings))
		for _, b := range listing.Bookings {
			ids = append(ids, b.ID)
		}
		return ids
	}

	// Admin with status=pending sees pending bookings across all customers.
	ids := listIDs(adminToken, "/api/v1/bookings?status=pending")
	assert.ElementsMatch(t, []string{pendingA.ID, pendingB.ID}, ids)

	// Without the filter the admin sees everything.
	assert.Len(t, listIDs(adminToken, "/api/v1/bookings"), 3)

	// A customer sees only their own pending bookings.
	ids = listIDs(customerAToken, "/api/v1/bookings?status=pending")
	assert.Equal(t, []string{pendingA.ID}, ids)

	assert.Len(t, listIDs(customerBToken, "/api/v1/bookings"), 1)

	// A seller sees the bookings of their businesses, not a customer view.
	assert.Len(t, listIDs(sellerToken, "/api/v1/bookings"), 3)
	assert.Empty(t, listIDs(otherSellerToken, "/api/v1/bookings"))

	// An unknown status value is rejected by validation.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/bookings?status=shipped", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
