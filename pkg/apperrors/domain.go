package apperrors

import (
	"net/http"
)

// Factories and predefined variables for the domain errors of the
// marketplace: bookings, settlements, businesses, notifications.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidOperation flags an operation the current state does not allow (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus flags an illegal status transition (409).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Bookings ---

// ErrBusinessNotBookable: bookings may only target approved businesses.
var ErrBusinessNotBookable = New(
	CodeInvalidOperation,
	"booking",
	"Business is not accepting bookings",
	http.StatusBadRequest,
)

// ErrCancellationReasonRequired: customer-initiated cancellation must carry a reason.
var ErrCancellationReasonRequired = New(
	CodeValidationFailed,
	"booking",
	"Cancellation reason is required",
	http.StatusBadRequest,
)

// ErrBookingAccessDenied: caller is neither a party to the booking nor an admin.
var ErrBookingAccessDenied = New(
	CodeForbidden,
	"booking",
	"You do not have access to this booking",
	http.StatusForbidden,
)

// --- Settlements ---

// ErrSettlementExists: at most one settlement per booking.
var ErrSettlementExists = New(
	CodeAlreadyExists,
	"settlement",
	"Settlement already exists for this booking",
	http.StatusConflict,
)

// --- Businesses ---

// ErrBusinessAccessDenied: caller does not own the business.
var ErrBusinessAccessDenied = New(
	CodeForbidden,
	"business",
	"You do not own this business",
	http.StatusForbidden,
)

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)
