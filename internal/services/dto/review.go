package dto

import "time"

// ---------------- Requests ----------------

type CreateReviewRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid4"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"omitempty,max=2000"`
}

type ModerateReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// ---------------- Responses ----------------

type ReviewResponse struct {
	ID           string    `json:"id"`
	BusinessID   string    `json:"business_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Rating       int       `json:"rating"`
	ReviewText   string    `json:"review_text,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews    []*ReviewResponse `json:"reviews"`
	Pagination Pagination        `json:"pagination"`
}
