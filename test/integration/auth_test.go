package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"easylife_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authBody struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

func TestRegisterLoginMe(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "newseller@test.com",
		"password": "password123",
		"name":     "New Seller",
		"role":     "seller",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var registered authBody
	require.NoError(t, json.Unmarshal([]byte(body), &registered))
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "seller", registered.User.Role)

	// Same email again: conflict.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "newseller@test.com",
		"password": "password123",
		"name":     "Imposter",
		"role":     "customer",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// Registering as admin is not offered.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "sneaky@test.com",
		"password": "password123",
		"name":     "Sneaky",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Login with the right and wrong passwords.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "newseller@test.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var loggedIn authBody
	require.NoError(t, json.Unmarshal([]byte(body), &loggedIn))
	require.NotEmpty(t, loggedIn.Token)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "newseller@test.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Me returns the profile for the bearer.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", loggedIn.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &me))
	assert.Equal(t, "newseller@test.com", me.Email)
	assert.Equal(t, "seller", me.Role)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLogin_SuspendedUserBlocked(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, user := helpers.CreateAndLoginCustomer(t, ts)

	require.NoError(t, ts.DB.Model(user).Update("status", "suspended").Error)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
