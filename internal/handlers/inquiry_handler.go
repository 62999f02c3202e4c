package handlers

import (
	"net/http"

	"easylife_backend/internal/middleware"
	"easylife_backend/internal/models"
	"easylife_backend/internal/services"
	"easylife_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	*BaseHandler
	inquiryService services.InquiryService
}

func NewInquiryHandler(base *BaseHandler, inquiryService services.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		BaseHandler:    base,
		inquiryService: inquiryService,
	}
}

func (h *InquiryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inquiries := rg.Group("/inquiries")
	inquiries.Use(middleware.AuthMiddleware())
	{
		inquiries.POST("", middleware.RequireRoles(models.UserRoleCustomer), h.Create)
		inquiries.GET("/me", middleware.RequireRoles(models.UserRoleCustomer), h.ListMine)
		inquiries.PUT("/:id/respond", middleware.RequireRoles(models.UserRoleSeller), h.Respond)
		inquiries.PUT("/:id/status", middleware.RequireRoles(models.UserRoleSeller), h.UpdateStatus)
	}

	seller := rg.Group("/seller")
	seller.Use(middleware.AuthMiddleware())
	seller.Use(middleware.RequireRoles(models.UserRoleSeller))
	{
		seller.GET("/businesses/:businessId/inquiries", h.ListForBusiness)
		seller.GET("/businesses/:businessId/leads", h.ListLeads)
		seller.POST("/leads", h.CreateLead)
		seller.PUT("/leads/:id/status", h.UpdateLeadStatus)
	}
}

func (h *InquiryHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInquiryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.inquiryService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *InquiryHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	db := h.GetDB(c)

	response, err := h.inquiryService.ListForCustomer(db, userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InquiryHandler) ListForBusiness(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	db := h.GetDB(c)

	response, err := h.inquiryService.ListForBusiness(db, userID, c.Param("businessId"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InquiryHandler) Respond(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RespondInquiryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.inquiryService.Respond(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInquiryStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.inquiryService.UpdateStatus(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InquiryHandler) CreateLead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLeadRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.inquiryService.CreateLead(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *InquiryHandler) ListLeads(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	db := h.GetDB(c)

	response, err := h.inquiryService.ListLeads(db, userID, c.Param("businessId"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *InquiryHandler) UpdateLeadStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateLeadStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.inquiryService.UpdateLeadStatus(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
