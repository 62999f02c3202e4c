package validator

import (
	"easylife_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the marketplace-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("booking_status", validateBookingStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("settlement_status", validateSettlementStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("business_status", validateBusinessStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("date_range", validateDateRange); err != nil {
		return err
	}
	return nil
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	switch models.BookingStatus(fl.Field().String()) {
	case models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusCompleted, models.BookingStatusCancelled:
		return true
	}
	return false
}

func validateSettlementStatus(fl validator.FieldLevel) bool {
	switch models.SettlementStatus(fl.Field().String()) {
	case models.SettlementStatusPending, models.SettlementStatusProcessing,
		models.SettlementStatusCompleted:
		return true
	}
	return false
}

func validateBusinessStatus(fl validator.FieldLevel) bool {
	switch models.BusinessStatus(fl.Field().String()) {
	case models.BusinessStatusPending, models.BusinessStatusUnderReview,
		models.BusinessStatusApproved, models.BusinessStatusRejected,
		models.BusinessStatusBanned:
		return true
	}
	return false
}

func validateDateRange(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "today", "week", "month", "quarter", "year":
		return true
	}
	return false
}
