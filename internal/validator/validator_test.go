package validator

import (
	"testing"

	"easylife_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&dto.CreateBookingRequest{
		BusinessID: "not-a-uuid",
		Amount:     -5,
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// Keys come from the json tags, not the Go field names.
	assert.Contains(t, vErr.Errors, "businessId")
	assert.Contains(t, vErr.Errors, "amount")
	assert.Contains(t, vErr.Errors, "service")
	assert.NotContains(t, vErr.Errors, "BusinessID")
}

func TestValidate_BookingStatusRule(t *testing.T) {
	v := New()

	valid := &dto.BookingCriteria{Status: "confirmed"}
	assert.NoError(t, v.Validate(valid))

	empty := &dto.BookingCriteria{}
	assert.NoError(t, v.Validate(empty), "status is optional")

	invalid := &dto.BookingCriteria{Status: "shipped"}
	assert.Error(t, v.Validate(invalid))
}

func TestValidate_DateRangeRule(t *testing.T) {
	v := New()

	for _, keyword := range []string{"today", "week", "month", "quarter", "year"} {
		assert.NoError(t, v.Validate(&dto.SettlementCriteria{DateRange: keyword}), keyword)
	}

	assert.Error(t, v.Validate(&dto.SettlementCriteria{DateRange: "decade"}))
}

func TestValidate_SettlementStatusRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.UpdateSettlementStatusRequest{Status: "processing"}))
	assert.Error(t, v.Validate(&dto.UpdateSettlementStatusRequest{Status: "cancelled"}))
	assert.Error(t, v.Validate(&dto.UpdateSettlementStatusRequest{}))
}

func TestValidate_BusinessStatusRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.ModerateBusinessRequest{Status: "approved"}))
	assert.NoError(t, v.Validate(&dto.ModerateBusinessRequest{Status: "rejected", Reason: "incomplete listing"}))
	assert.Error(t, v.Validate(&dto.ModerateBusinessRequest{Status: "published"}))
}
