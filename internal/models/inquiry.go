package models

// Inquiry is a customer question addressed to a business.
type Inquiry struct {
	BaseModel
	BusinessID string        `gorm:"not null;index"`
	CustomerID string        `gorm:"not null;index"`
	Subject    string        `gorm:"not null"`
	Message    string
	Status     InquiryStatus `gorm:"type:varchar(20);default:'open'"`
	Response   string

	Business Business `gorm:"foreignKey:BusinessID"`
}

// Lead is a seller-entered prospective customer.
type Lead struct {
	BaseModel
	BusinessID string     `gorm:"not null;index"`
	Name       string     `gorm:"not null"`
	Phone      string
	Email      string
	Source     string
	Status     LeadStatus `gorm:"type:varchar(20);default:'new'"`
	Notes      string
}
