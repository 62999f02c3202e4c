package services

import (
	"encoding/json"
	"fmt"

	"easylife_backend/internal/models"
	"easylife_backend/internal/repositories"
	"easylife_backend/internal/services/dto"
	"easylife_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationService interface {
	Create(db *gorm.DB, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	GetUserNotifications(db *gorm.DB, userID string, criteria dto.NotificationCriteria) (*dto.NotificationListResponse, error)
	MarkAsRead(db *gorm.DB, requesterID string, role models.UserRole, notificationID string) error
	MarkAllAsRead(db *gorm.DB, userID string) error
	GetUnreadCount(db *gorm.DB, userID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (s *notificationService) Create(db *gorm.DB, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	var dataJSON datatypes.JSON
	if req.Data != nil {
		jsonData, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification data: %w", err)
		}
		dataJSON = datatypes.JSON(jsonData)
	}

	notification := &models.Notification{
		UserID:  req.UserID,
		Type:    req.Type,
		Title:   req.Title,
		Message: req.Message,
		Data:    dataJSON,
		IsRead:  false,
	}

	if err := s.notificationRepo.Create(db, notification); err != nil {
		return nil, err
	}
	return buildNotificationResponse(notification), nil
}

func (s *notificationService) GetUserNotifications(db *gorm.DB, userID string, criteria dto.NotificationCriteria) (*dto.NotificationListResponse, error) {
	if criteria.Page <= 0 {
		criteria.Page = 1
	}
	if criteria.PageSize <= 0 {
		criteria.PageSize = 20
	}

	notifications, total, err := s.notificationRepo.FindByUser(db, userID, criteria.Page, criteria.PageSize)
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

// MarkAsRead is allowed for the notification's owner or an admin.
func (s *notificationService) MarkAsRead(db *gorm.DB, requesterID string, role models.UserRole, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(db, notificationID)
	if err != nil {
		if err == repositories.ErrNotificationNotFound {
			return apperrors.ErrNotFound(err)
		}
		return err
	}

	if notification.UserID != requesterID && role != models.UserRoleAdmin {
		return apperrors.NewForbiddenError("You do not have access to this notification")
	}

	return s.notificationRepo.MarkAsRead(db, notificationID)
}

func (s *notificationService) MarkAllAsRead(db *gorm.DB, userID string) error {
	return s.notificationRepo.MarkAllAsRead(db, userID)
}

func (s *notificationService) GetUnreadCount(db *gorm.DB, userID string) (int64, error) {
	return s.notificationRepo.CountUnread(db, userID)
}

func buildNotificationResponse(notification *models.Notification) *dto.NotificationResponse {
	var data map[string]interface{}
	if len(notification.Data) > 0 {
		_ = json.Unmarshal(notification.Data, &data)
	}

	return &dto.NotificationResponse{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		Data:      data,
		IsRead:    notification.IsRead,
		ReadAt:    notification.ReadAt,
		CreatedAt: notification.CreatedAt,
	}
}
