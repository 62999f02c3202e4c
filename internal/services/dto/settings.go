package dto

// ---------------- Requests ----------------

type UpsertConfigRequest struct {
	Key   string                 `json:"key" validate:"required,max=100"`
	Value map[string]interface{} `json:"value" validate:"required"`
}

type CreateCustomerNoteRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid4"`
	Note       string `json:"note" validate:"required,max=2000"`
}

// ---------------- Responses ----------------

type ConfigResponse struct {
	Key   string                 `json:"key"`
	Value map[string]interface{} `json:"value"`
}

type CustomerNoteResponse struct {
	ID         string `json:"id"`
	SellerID   string `json:"seller_id"`
	CustomerID string `json:"customer_id"`
	Note       string `json:"note"`
	CreatedAt  string `json:"created_at"`
}
