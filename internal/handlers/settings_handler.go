package handlers

import (
	"net/http"

	"easylife_backend/internal/middleware"
	"easylife_backend/internal/models"
	"easylife_backend/internal/services"
	"easylife_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	*BaseHandler
	settingsService services.SettingsService
}

func NewSettingsHandler(base *BaseHandler, settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler:     base,
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Site content blobs are readable without auth so the storefront can
	// render hero text and contact info.
	rg.GET("/settings/config/:key", h.GetConfig)

	admin := rg.Group("/admin/settings")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/config", h.ListConfigs)
		admin.PUT("/config", h.UpsertConfig)
	}

	seller := rg.Group("/seller/customer-notes")
	seller.Use(middleware.AuthMiddleware())
	seller.Use(middleware.RequireRoles(models.UserRoleSeller))
	{
		seller.POST("", h.CreateCustomerNote)
		seller.GET("", h.ListCustomerNotes)
	}
}

func (h *SettingsHandler) UpsertConfig(c *gin.Context) {
	var req dto.UpsertConfigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.settingsService.UpsertConfig(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SettingsHandler) GetConfig(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.settingsService.GetConfig(db, c.Param("key"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SettingsHandler) ListConfigs(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.settingsService.ListConfigs(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"configs": response})
}

func (h *SettingsHandler) CreateCustomerNote(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCustomerNoteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.settingsService.CreateCustomerNote(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *SettingsHandler) ListCustomerNotes(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.settingsService.ListCustomerNotes(db, userID, c.Query("customer_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": response})
}
