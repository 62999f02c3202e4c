package database

import (
	"fmt"

	"easylife_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs GORM auto-migration for every model. The uuid-ossp extension
// backs the uuid_generate_v4() column defaults.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Business{},
		&models.SavedBusiness{},
		&models.Booking{},
		&models.Transaction{},
		&models.Settlement{},
		&models.Notification{},
		&models.Review{},
		&models.Inquiry{},
		&models.Lead{},
		&models.WebsiteConfig{},
		&models.CustomerNote{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
