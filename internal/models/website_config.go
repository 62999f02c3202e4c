package models

import "gorm.io/datatypes"

// WebsiteConfig is a keyed blob of site content (hero text, contact info,
// feature toggles) managed by admins.
type WebsiteConfig struct {
	BaseModel
	Key   string         `gorm:"uniqueIndex;not null"`
	Value datatypes.JSON `gorm:"type:jsonb"`
}

// CustomerNote is a private note a seller keeps about a customer.
type CustomerNote struct {
	BaseModel
	SellerID   string `gorm:"not null;index"`
	CustomerID string `gorm:"not null;index"`
	Note       string `gorm:"not null"`
}
