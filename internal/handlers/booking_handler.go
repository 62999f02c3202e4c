package handlers

import (
	"net/http"

	"easylife_backend/internal/middleware"
	"easylife_backend/internal/models"
	"easylife_backend/internal/services"
	"easylife_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.POST("/service", middleware.RequireRoles(models.UserRoleCustomer), h.Create)
		bookings.GET("", h.List)
		bookings.GET("/customer/me", middleware.RequireRoles(models.UserRoleCustomer), h.ListMine)
		bookings.GET("/:id", h.Get)
		bookings.PUT("/:id/confirm", h.Confirm)
		bookings.PUT("/:id/complete", h.Complete)
		bookings.PUT("/:id/cancel", h.Cancel)
		bookings.PUT("/:id/payment", middleware.RequireRoles(models.UserRoleAdmin), h.MarkPaid)
		bookings.GET("/:id/transactions", middleware.RequireRoles(models.UserRoleAdmin), h.ListTransactions)
	}

	seller := rg.Group("/seller")
	seller.Use(middleware.AuthMiddleware())
	seller.Use(middleware.RequireRoles(models.UserRoleSeller))
	{
		seller.GET("/orders", h.ListOrders)
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.bookingService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.bookingService.Get(db, userID, middleware.GetUserRole(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria dto.BookingCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	db := h.GetDB(c)

	response, err := h.bookingService.List(db, userID, middleware.GetUserRole(c), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria dto.BookingCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	db := h.GetDB(c)

	response, err := h.bookingService.ListForCustomer(db, userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListOrders is the seller view: bookings against businesses the seller owns.
func (h *BookingHandler) ListOrders(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria dto.BookingCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	db := h.GetDB(c)

	response, err := h.bookingService.ListForSeller(db, userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, models.BookingStatusConfirmed, "")
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, models.BookingStatusCompleted, "")
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	var req dto.CancelBookingRequest
	// Admins may cancel without a body; everyone else must give a reason.
	if middleware.GetUserRole(c) == models.UserRoleAdmin {
		_ = c.ShouldBind(&req)
	} else if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	h.transition(c, models.BookingStatusCancelled, req.CancellationReason)
}

func (h *BookingHandler) transition(c *gin.Context, newStatus models.BookingStatus, reason string) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.bookingService.Transition(db, userID, middleware.GetUserRole(c), c.Param("id"), newStatus, reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) MarkPaid(c *gin.Context) {
	var req dto.MarkPaidRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.bookingService.MarkPaid(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) ListTransactions(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.bookingService.ListTransactions(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": response})
}
