package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	BusinessHandler     *BusinessHandler
	BookingHandler      *BookingHandler
	SettlementHandler   *SettlementHandler
	NotificationHandler *NotificationHandler
	ReviewHandler       *ReviewHandler
	InquiryHandler      *InquiryHandler
	SettingsHandler     *SettingsHandler
}
