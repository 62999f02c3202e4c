package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"easylife_backend/internal/models"
	"easylife_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSettlement(t *testing.T, db *gorm.DB, sellerID, businessID string, status models.SettlementStatus, serviceName string, createdDaysAgo int) *models.Settlement {
	customer := &models.User{
		Name:         "Settled Customer",
		Email:        fmt.Sprintf("settled_%d@test.com", time.Now().UnixNano()),
		PasswordHash: "password123",
		Role:         models.UserRoleCustomer,
	}
	helpers.CreateUser(t, db, customer)

	booking := helpers.CreateTestBooking(t, db, customer.ID, businessID, models.BookingStatusCompleted, models.PaymentStatusPaid, 1000)

	settlement := &models.Settlement{
		BookingID:        booking.ID,
		BusinessID:       businessID,
		SellerID:         sellerID,
		CustomerID:       booking.CustomerID,
		ServiceName:      serviceName,
		GrossAmount:      1000,
		CommissionAmount: 150,
		NetAmount:        850,
		Status:           status,
		SettlementDate:   time.Now().AddDate(0, 0, 4),
	}
	require.NoError(t, db.Create(settlement).Error)

	if createdDaysAgo > 0 {
		createdAt := time.Now().AddDate(0, 0, -createdDaysAgo)
		require.NoError(t, db.Model(settlement).Update("created_at", createdAt).Error)
	}
	return settlement
}

type settlementListBody struct {
	Settlements []struct {
		ID          string  `json:"id"`
		NetAmount   float64 `json:"net_amount"`
		Status      string  `json:"status"`
		ServiceName string  `json:"service_name"`
	} `json:"settlements"`
}

func TestAdminSettlements_FiltersByStatusDateAndSearch(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, seller, business := helpers.CreateAndLoginSeller(t, ts)

	seedSettlement(t, ts.DB, seller.ID, business.ID, models.SettlementStatusPending, "Wedding catering", 0)
	seedSettlement(t, ts.DB, seller.ID, business.ID, models.SettlementStatusCompleted, "Birthday decoration", 0)
	seedSettlement(t, ts.DB, seller.ID, business.ID, models.SettlementStatusPending, "Old catering job", 60)

	var listing settlementListBody

	// No filters: everything.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/settlements", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Len(t, listing.Settlements, 3)

	// Status filter.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/settlements?status=completed", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Settlements, 1)
	assert.Equal(t, "completed", listing.Settlements[0].Status)

	// dateRange=month drops the 60-day-old row.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/settlements?dateRange=month", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Len(t, listing.Settlements, 2)

	// Search on service name.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/settlements?search=decoration", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Settlements, 1)
	assert.Equal(t, "Birthday decoration", listing.Settlements[0].ServiceName)

	// Unknown dateRange keyword fails validation.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/settlements?dateRange=decade", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestAdminSettlements_UpdateStatus(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	sellerToken, seller, business := helpers.CreateAndLoginSeller(t, ts)

	settlement := seedSettlement(t, ts.DB, seller.ID, business.ID, models.SettlementStatusPending, "Wedding catering", 0)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/settlements/"+settlement.ID+"/status", adminToken, map[string]interface{}{
		"status": "processing",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stored models.Settlement
	require.NoError(t, ts.DB.First(&stored, "id = ?", settlement.ID).Error)
	assert.Equal(t, models.SettlementStatusProcessing, stored.Status)

	// Bad status value is rejected.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/settlements/"+settlement.ID+"/status", adminToken, map[string]interface{}{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Sellers cannot touch the admin endpoint.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/settlements/"+settlement.ID+"/status", sellerToken, map[string]interface{}{
		"status": "completed",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestSellerSettlements_ScopedToOwnPayouts(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	sellerToken, seller, business := helpers.CreateAndLoginSeller(t, ts)
	otherSellerToken, otherSeller, otherBusiness := helpers.CreateAndLoginSeller(t, ts)

	seedSettlement(t, ts.DB, seller.ID, business.ID, models.SettlementStatusPending, "Wedding catering", 0)
	seedSettlement(t, ts.DB, otherSeller.ID, otherBusiness.ID, models.SettlementStatusPending, "Photo shoot", 0)

	var listing settlementListBody

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/seller/settlements", sellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Settlements, 1)
	assert.Equal(t, "Wedding catering", listing.Settlements[0].ServiceName)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/seller/settlements", otherSellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	require.Len(t, listing.Settlements, 1)
	assert.Equal(t, "Photo shoot", listing.Settlements[0].ServiceName)
}

func TestSellerSettlements_Summary(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	sellerToken, seller, business := helpers.CreateAndLoginSeller(t, ts)

	seedSettlement(t, ts.DB, seller.ID, business.ID, models.SettlementStatusPending, "Job A", 0)
	seedSettlement(t, ts.DB, seller.ID, business.ID, models.SettlementStatusPending, "Job B", 0)
	seedSettlement(t, ts.DB, seller.ID, business.ID, models.SettlementStatusCompleted, "Job C", 0)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/seller/settlements/summary", sellerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var summary struct {
		PendingAmount   float64 `json:"pending_amount"`
		CompletedAmount float64 `json:"completed_amount"`
		TotalCount      int64   `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &summary))
	assert.Equal(t, 1700.0, summary.PendingAmount)
	assert.Equal(t, 850.0, summary.CompletedAmount)
	assert.Equal(t, int64(3), summary.TotalCount)
}
