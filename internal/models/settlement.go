package models

import "time"

// Settlement is the seller payout record for one completed, paid booking.
// BookingID is unique: at most one settlement per booking.
type Settlement struct {
	BaseModel
	BookingID        string           `gorm:"not null;uniqueIndex"`
	BusinessID       string           `gorm:"not null;index"`
	SellerID         string           `gorm:"not null;index"`
	CustomerID       string           `gorm:"not null"`
	ServiceName      string
	GrossAmount      float64          `gorm:"not null"`
	CommissionAmount float64          `gorm:"not null"`
	NetAmount        float64          `gorm:"not null"`
	Status           SettlementStatus `gorm:"type:varchar(20);default:'pending';index"`
	SettlementDate   time.Time        `gorm:"not null"`
	PaymentID        string           `gorm:"index"`

	// Relations
	Booking  Booking  `gorm:"foreignKey:BookingID"`
	Business Business `gorm:"foreignKey:BusinessID"`
}
