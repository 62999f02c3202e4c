package repositories

import (
	"errors"

	"easylife_backend/internal/models"

	"gorm.io/gorm"
)

var ErrConfigNotFound = errors.New("website config not found")

type WebsiteConfigRepository interface {
	Upsert(db *gorm.DB, config *models.WebsiteConfig) error
	FindByKey(db *gorm.DB, key string) (*models.WebsiteConfig, error)
	List(db *gorm.DB) ([]models.WebsiteConfig, error)
}

type websiteConfigRepository struct{}

func NewWebsiteConfigRepository() WebsiteConfigRepository {
	return &websiteConfigRepository{}
}

func (r *websiteConfigRepository) Upsert(db *gorm.DB, config *models.WebsiteConfig) error {
	var existing models.WebsiteConfig
	err := db.Where("key = ?", config.Key).First(&existing).Error
	if err == nil {
		existing.Value = config.Value
		return db.Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(config).Error
}

func (r *websiteConfigRepository) FindByKey(db *gorm.DB, key string) (*models.WebsiteConfig, error) {
	var config models.WebsiteConfig
	if err := db.First(&config, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	return &config, nil
}

func (r *websiteConfigRepository) List(db *gorm.DB) ([]models.WebsiteConfig, error) {
	var configs []models.WebsiteConfig
	err := db.Order("key ASC").Find(&configs).Error
	return configs, err
}
