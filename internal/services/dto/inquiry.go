package dto

import "time"

// ---------------- Requests ----------------

type CreateInquiryRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid4"`
	Subject    string `json:"subject" validate:"required,max=200"`
	Message    string `json:"message" validate:"omitempty,max=2000"`
}

type RespondInquiryRequest struct {
	Response string `json:"response" validate:"required,max=2000"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open responded closed"`
}

type CreateLeadRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid4"`
	Name       string `json:"name" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"omitempty,max=20"`
	Email      string `json:"email" validate:"omitempty,email"`
	Source     string `json:"source" validate:"omitempty,max=100"`
	Notes      string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted converted lost"`
}

// ---------------- Responses ----------------

type InquiryResponse struct {
	ID           string    `json:"id"`
	BusinessID   string    `json:"business_id"`
	BusinessName string    `json:"business_name,omitempty"`
	CustomerID   string    `json:"customer_id"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message,omitempty"`
	Status       string    `json:"status"`
	Response     string    `json:"response,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type InquiryListResponse struct {
	Inquiries  []*InquiryResponse `json:"inquiries"`
	Pagination Pagination         `json:"pagination"`
}

type LeadResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Source     string    `json:"source,omitempty"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type LeadListResponse struct {
	Leads      []*LeadResponse `json:"leads"`
	Pagination Pagination      `json:"pagination"`
}
