package handlers

import (
	"net/http"

	"easylife_backend/internal/middleware"
	"easylife_backend/internal/models"
	"easylife_backend/internal/services"
	"easylife_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SettlementHandler struct {
	*BaseHandler
	settlementService services.SettlementService
}

func NewSettlementHandler(base *BaseHandler, settlementService services.SettlementService) *SettlementHandler {
	return &SettlementHandler{
		BaseHandler:       base,
		settlementService: settlementService,
	}
}

func (h *SettlementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/settlements")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.PUT("/:id/status", h.UpdateStatus)
	}

	seller := rg.Group("/seller/settlements")
	seller.Use(middleware.AuthMiddleware())
	seller.Use(middleware.RequireRoles(models.UserRoleSeller))
	{
		seller.GET("", h.ListForSeller)
		seller.GET("/summary", h.Summary)
	}
}

func (h *SettlementHandler) List(c *gin.Context) {
	var criteria dto.SettlementCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	db := h.GetDB(c)

	response, err := h.settlementService.List(db, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SettlementHandler) ListForSeller(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria dto.SettlementCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	db := h.GetDB(c)

	response, err := h.settlementService.ListForSeller(db, userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SettlementHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.settlementService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SettlementHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateSettlementStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.settlementService.UpdateStatus(db, c.Param("id"), models.SettlementStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SettlementHandler) Summary(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	summary, err := h.settlementService.Summary(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
