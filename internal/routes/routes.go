package routes

import (
	"net/http"

	"easylife_backend/internal/handlers"
	"easylife_backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the HTTP API v1 plus the health and metrics
// endpoints.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	ginRouter.GET("/metrics", metrics.Handler())

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.BusinessHandler.RegisterRoutes(api)
		appHandlers.BookingHandler.RegisterRoutes(api)
		appHandlers.SettlementHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.InquiryHandler.RegisterRoutes(api)
		appHandlers.SettingsHandler.RegisterRoutes(api)
	}
}
