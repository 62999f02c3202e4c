package models

type Business struct {
	BaseModel
	OwnerID         string         `gorm:"not null;index"`
	Name            string         `gorm:"not null"`
	Description     string
	CategoryID      *string        `gorm:"index"`
	Address         string
	City            string         `gorm:"index"`
	Phone           string
	Status          BusinessStatus `gorm:"type:varchar(20);default:'pending';index"`
	RejectionReason string
	IsVerified      bool           `gorm:"default:false"`

	// Relations
	Owner    User      `gorm:"foreignKey:OwnerID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
}

type Category struct {
	BaseModel
	Name     string `gorm:"uniqueIndex;not null"`
	Slug     string `gorm:"uniqueIndex;not null"`
	IsActive bool   `gorm:"default:true"`
}

// SavedBusiness is a customer's bookmark; the pair is unique so saving
// twice is a no-op.
type SavedBusiness struct {
	BaseModel
	CustomerID string `gorm:"not null;uniqueIndex:idx_saved_customer_business"`
	BusinessID string `gorm:"not null;uniqueIndex:idx_saved_customer_business"`

	Business Business `gorm:"foreignKey:BusinessID"`
}
