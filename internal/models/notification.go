package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string         `gorm:"not null;index"`
	Type    string         `gorm:"not null"` // "booking_created", "booking_status", "settlement_created"
	Title   string         `gorm:"not null"`
	Message string
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"booking_id": "...", "business_id": "..."}
	IsRead  bool           `gorm:"default:false"`
	ReadAt  *time.Time
}
