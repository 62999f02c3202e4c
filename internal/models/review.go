package models

type Review struct {
	BaseModel
	BusinessID string       `gorm:"not null;index"`
	CustomerID string       `gorm:"not null;index"`
	Rating     int          `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	ReviewText string
	Status     ReviewStatus `gorm:"type:varchar(20);default:'pending'"`

	// Relations
	Business Business `gorm:"foreignKey:BusinessID"`
	Customer User     `gorm:"foreignKey:CustomerID"`
}
