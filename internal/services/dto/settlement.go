package dto

import "time"

// ---------------- Requests ----------------

type SettlementCriteria struct {
	Status    string `form:"status" validate:"omitempty,settlement_status"`
	DateRange string `form:"dateRange" validate:"omitempty,date_range"`
	Search    string `form:"search" validate:"omitempty,max=200"`
	Page      int    `form:"page"`
	PageSize  int    `form:"limit"`
}

type UpdateSettlementStatusRequest struct {
	Status string `json:"status" validate:"required,settlement_status"`
}

// ---------------- Responses ----------------

type SettlementResponse struct {
	ID               string    `json:"id"`
	BookingID        string    `json:"booking_id"`
	BusinessID       string    `json:"business_id"`
	BusinessName     string    `json:"business_name,omitempty"`
	SellerID         string    `json:"seller_id"`
	CustomerID       string    `json:"customer_id"`
	ServiceName      string    `json:"service_name,omitempty"`
	GrossAmount      float64   `json:"gross_amount"`
	CommissionAmount float64   `json:"commission_amount"`
	NetAmount        float64   `json:"net_amount"`
	Status           string    `json:"status"`
	SettlementDate   time.Time `json:"settlement_date"`
	PaymentID        string    `json:"payment_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type SettlementListResponse struct {
	Settlements []*SettlementResponse `json:"settlements"`
	Pagination  Pagination            `json:"pagination"`
}
