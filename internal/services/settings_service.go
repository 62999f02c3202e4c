package services

import (
	"encoding/json"
	"fmt"
	"time"

	"easylife_backend/internal/models"
	"easylife_backend/internal/repositories"
	"easylife_backend/internal/services/dto"
	"easylife_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SettingsService interface {
	UpsertConfig(db *gorm.DB, req *dto.UpsertConfigRequest) (*dto.ConfigResponse, error)
	GetConfig(db *gorm.DB, key string) (*dto.ConfigResponse, error)
	ListConfigs(db *gorm.DB) ([]*dto.ConfigResponse, error)

	CreateCustomerNote(db *gorm.DB, sellerID string, req *dto.CreateCustomerNoteRequest) (*dto.CustomerNoteResponse, error)
	ListCustomerNotes(db *gorm.DB, sellerID, customerID string) ([]*dto.CustomerNoteResponse, error)
}

type settingsService struct {
	configRepo repositories.WebsiteConfigRepository
	noteRepo   repositories.CustomerNoteRepository
	userRepo   repositories.UserRepository
}

func NewSettingsService(
	configRepo repositories.WebsiteConfigRepository,
	noteRepo repositories.CustomerNoteRepository,
	userRepo repositories.UserRepository,
) SettingsService {
	return &settingsService{
		configRepo: configRepo,
		noteRepo:   noteRepo,
		userRepo:   userRepo,
	}
}

func (s *settingsService) UpsertConfig(db *gorm.DB, req *dto.UpsertConfigRequest) (*dto.ConfigResponse, error) {
	value, err := json.Marshal(req.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config value: %w", err)
	}

	config := &models.WebsiteConfig{
		Key:   req.Key,
		Value: datatypes.JSON(value),
	}
	if err := s.configRepo.Upsert(db, config); err != nil {
		return nil, err
	}
	return buildConfigResponse(config), nil
}

func (s *settingsService) GetConfig(db *gorm.DB, key string) (*dto.ConfigResponse, error) {
	config, err := s.configRepo.FindByKey(db, key)
	if err != nil {
		if err == repositories.ErrConfigNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return buildConfigResponse(config), nil
}

func (s *settingsService) ListConfigs(db *gorm.DB) ([]*dto.ConfigResponse, error) {
	configs, err := s.configRepo.List(db)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ConfigResponse, 0, len(configs))
	for i := range configs {
		responses = append(responses, buildConfigResponse(&configs[i]))
	}
	return responses, nil
}

func (s *settingsService) CreateCustomerNote(db *gorm.DB, sellerID string, req *dto.CreateCustomerNoteRequest) (*dto.CustomerNoteResponse, error) {
	if _, err := s.userRepo.FindByID(db, req.CustomerID); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	note := &models.CustomerNote{
		SellerID:   sellerID,
		CustomerID: req.CustomerID,
		Note:       req.Note,
	}
	if err := s.noteRepo.Create(db, note); err != nil {
		return nil, err
	}
	return buildCustomerNoteResponse(note), nil
}

func (s *settingsService) ListCustomerNotes(db *gorm.DB, sellerID, customerID string) ([]*dto.CustomerNoteResponse, error) {
	notes, err := s.noteRepo.ListBySeller(db, sellerID, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CustomerNoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, buildCustomerNoteResponse(&notes[i]))
	}
	return responses, nil
}

func buildConfigResponse(config *models.WebsiteConfig) *dto.ConfigResponse {
	var value map[string]interface{}
	if len(config.Value) > 0 {
		_ = json.Unmarshal(config.Value, &value)
	}
	return &dto.ConfigResponse{
		Key:   config.Key,
		Value: value,
	}
}

func buildCustomerNoteResponse(note *models.CustomerNote) *dto.CustomerNoteResponse {
	return &dto.CustomerNoteResponse{
		ID:         note.ID,
		SellerID:   note.SellerID,
		CustomerID: note.CustomerID,
		Note:       note.Note,
		CreatedAt:  note.CreatedAt.Format(time.RFC3339),
	}
}
