package services

import (
	"easylife_backend/internal/email"
	"easylife_backend/internal/repositories"
)

// ServiceContainer wires every service with its repositories once, at startup.
type ServiceContainer struct {
	AuthService         AuthService
	BusinessService     BusinessService
	BookingService      BookingService
	SettlementService   SettlementService
	NotificationService NotificationService
	ReviewService       ReviewService
	InquiryService      InquiryService
	SettingsService     SettingsService
}

func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	businessRepo := repositories.NewBusinessRepository()
	categoryRepo := repositories.NewCategoryRepository()
	bookingRepo := repositories.NewBookingRepository()
	settlementRepo := repositories.NewSettlementRepository()
	notificationRepo := repositories.NewNotificationRepository()
	reviewRepo := repositories.NewReviewRepository()
	inquiryRepo := repositories.NewInquiryRepository()
	configRepo := repositories.NewWebsiteConfigRepository()
	noteRepo := repositories.NewCustomerNoteRepository()

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo),
		BusinessService:     NewBusinessService(businessRepo, categoryRepo, reviewRepo, notificationRepo),
		BookingService:      NewBookingService(bookingRepo, businessRepo, settlementRepo, notificationRepo, userRepo, emailProvider),
		SettlementService:   NewSettlementService(settlementRepo),
		NotificationService: NewNotificationService(notificationRepo, userRepo),
		ReviewService:       NewReviewService(reviewRepo, businessRepo, notificationRepo),
		InquiryService:      NewInquiryService(inquiryRepo, businessRepo, notificationRepo),
		SettingsService:     NewSettingsService(configRepo, noteRepo, userRepo),
	}
}
