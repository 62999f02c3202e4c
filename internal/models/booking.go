package models

import "time"

// Booking is a customer's reservation of a business's service. Bookings are
// never deleted; cancellation is a status value.
type Booking struct {
	BaseModel
	BusinessID         string        `gorm:"not null;index"`
	CustomerID         string        `gorm:"not null;index"`
	Service            string        `gorm:"not null"`
	EventDate          time.Time     `gorm:"not null"`
	EventTime          string
	Location           string
	GuestCount         int
	SpecialRequests    string
	Amount             float64       `gorm:"not null"`
	// Commission is fixed at creation time (15% of Amount) and never updated.
	Commission         float64       `gorm:"not null"`
	PaymentStatus      PaymentStatus `gorm:"type:varchar(20);default:'pending'"`
	Status             BookingStatus `gorm:"type:varchar(20);default:'pending';index"`
	CancellationReason string

	// Relations
	Business Business `gorm:"foreignKey:BusinessID"`
	Customer User     `gorm:"foreignKey:CustomerID"`
}

// Transaction records a payment event against a booking.
type Transaction struct {
	BaseModel
	BookingID   string        `gorm:"not null;index"`
	Amount      float64       `gorm:"not null"`
	Method      string
	Status      PaymentStatus `gorm:"type:varchar(20);not null"`
	ReferenceID string        `gorm:"index"`
}
