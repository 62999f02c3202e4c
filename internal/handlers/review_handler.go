package handlers

import (
	"net/http"

	"easylife_backend/internal/middleware"
	"easylife_backend/internal/models"
	"easylife_backend/internal/services"
	"easylife_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Approved reviews are public.
	rg.GET("/businesses/:id/reviews", h.ListApproved)

	reviews := rg.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware())
	reviews.Use(middleware.RequireRoles(models.UserRoleCustomer))
	{
		reviews.POST("", h.Create)
	}

	admin := rg.Group("/admin/reviews")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/pending", h.ListPending)
		admin.PUT("/:id/moderate", h.Moderate)
	}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.reviewService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ReviewHandler) ListApproved(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	db := h.GetDB(c)

	response, err := h.reviewService.ListApproved(db, c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReviewHandler) ListPending(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	db := h.GetDB(c)

	response, err := h.reviewService.ListPending(db, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReviewHandler) Moderate(c *gin.Context) {
	var req dto.ModerateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.reviewService.Moderate(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
