package dto

import "time"

// ---------------- Requests ----------------

type CreateBookingRequest struct {
	BusinessID      string  `json:"businessId" validate:"required,uuid4"`
	Service         string  `json:"service" validate:"required,max=200"`
	EventDate       string  `json:"eventDate" validate:"required"` // YYYY-MM-DD
	EventTime       string  `json:"eventTime" validate:"omitempty,max=20"`
	Location        string  `json:"location" validate:"omitempty,max=300"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	GuestCount      int     `json:"guestCount" validate:"omitempty,gte=0"`
	SpecialRequests string  `json:"specialRequests" validate:"omitempty,max=1000"`
}

type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason" validate:"required,min=1,max=500"`
}

type MarkPaidRequest struct {
	Method      string `json:"method" validate:"omitempty,max=50"`
	ReferenceID string `json:"referenceId" validate:"omitempty,max=100"`
}

type BookingCriteria struct {
	Status   string `form:"status" validate:"omitempty,booking_status"`
	Search   string `form:"search" validate:"omitempty,max=200"`
	Page     int    `form:"page"`
	PageSize int    `form:"limit"`
}

// ---------------- Responses ----------------

type BookingResponse struct {
	ID                 string    `json:"id"`
	BusinessID         string    `json:"business_id"`
	BusinessName       string    `json:"business_name,omitempty"`
	CustomerID         string    `json:"customer_id"`
	Service            string    `json:"service"`
	EventDate          time.Time `json:"event_date"`
	EventTime          string    `json:"event_time,omitempty"`
	Location           string    `json:"location,omitempty"`
	GuestCount         int       `json:"guest_count,omitempty"`
	SpecialRequests    string    `json:"special_requests,omitempty"`
	Amount             float64   `json:"amount"`
	Commission         float64   `json:"commission"`
	PaymentStatus      string    `json:"payment_status"`
	Status             string    `json:"status"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	Pagination Pagination         `json:"pagination"`
}

type TransactionResponse struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"booking_id"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method,omitempty"`
	Status      string    `json:"status"`
	ReferenceID string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
