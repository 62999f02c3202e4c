package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"easylife_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the raw password in PasswordHash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	require.NoError(t, err, "Failed to hash test password")
	user.PasswordHash = string(hashed)

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	require.NoError(t, db.Create(user).Error, "Failed to create test user %s", user.Email)
}

// CreateAndLoginUser seeds a user and logs in through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginCustomer seeds a customer with a unique email.
func CreateAndLoginCustomer(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("customer_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Customer", email, "password123", models.UserRoleCustomer)
}

// CreateAndLoginSeller seeds a seller plus one approved business.
func CreateAndLoginSeller(t *testing.T, ts *TestServer) (string, *models.User, *models.Business) {
	email := fmt.Sprintf("seller_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, "Test Seller", email, "password123", models.UserRoleSeller)

	business := CreateTestBusiness(t, ts.DB, user.ID, models.BusinessStatusApproved)
	return token, user, business
}

// CreateAndLoginAdmin seeds an admin directly (registration only offers
// customer/seller) and logs in through the API.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Admin", email, "password123", models.UserRoleAdmin)
}

// CreateTestBusiness inserts a business with the given status.
func CreateTestBusiness(t *testing.T, db *gorm.DB, ownerID string, status models.BusinessStatus) *models.Business {
	business := &models.Business{
		OwnerID: ownerID,
		Name:    fmt.Sprintf("Gangtok Caterers %d", time.Now().UnixNano()),
		City:    "Gangtok",
		Status:  status,
	}
	require.NoError(t, db.Create(business).Error, "Failed to create test business")
	return business
}

// CreateTestBooking inserts a booking directly, bypassing the API.
func CreateTestBooking(t *testing.T, db *gorm.DB, customerID, businessID string, status models.BookingStatus, payment models.PaymentStatus, amount float64) *models.Booking {
	booking := &models.Booking{
		BusinessID:    businessID,
		CustomerID:    customerID,
		Service:       "Wedding catering",
		EventDate:     time.Now().AddDate(0, 1, 0),
		Amount:        amount,
		Commission:    amount * 0.15,
		Status:        status,
		PaymentStatus: payment,
	}
	require.NoError(t, db.Create(booking).Error, "Failed to create test booking")
	return booking
}
