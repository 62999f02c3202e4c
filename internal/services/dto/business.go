package dto

import "time"

// ---------------- Requests ----------------

type CreateBusinessRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	CategoryID  string `json:"category_id" validate:"omitempty,uuid4"`
	Address     string `json:"address" validate:"omitempty,max=300"`
	City        string `json:"city" validate:"omitempty,max=100"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
}

type UpdateBusinessRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=300"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type ModerateBusinessRequest struct {
	Status string `json:"status" validate:"required,business_status"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type BusinessCriteria struct {
	CategoryID string `form:"category" validate:"omitempty,uuid4"`
	City       string `form:"city" validate:"omitempty,max=100"`
	Search     string `form:"search" validate:"omitempty,max=200"`
	Page       int    `form:"page"`
	PageSize   int    `form:"limit"`
}

// ---------------- Responses ----------------

type BusinessResponse struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	CategoryID      string    `json:"category_id,omitempty"`
	CategoryName    string    `json:"category_name,omitempty"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	IsVerified      bool      `json:"is_verified"`
	AverageRating   float64   `json:"average_rating,omitempty"`
	ReviewCount     int64     `json:"review_count,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type BusinessListResponse struct {
	Businesses []*BusinessResponse `json:"businesses"`
	Pagination Pagination          `json:"pagination"`
}

type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"is_active"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"required,max=100"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Slug     *string `json:"slug,omitempty" validate:"omitempty,max=100"`
	IsActive *bool   `json:"is_active,omitempty"`
}
