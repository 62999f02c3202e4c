package handlers

import (
	"net/http"

	"easylife_backend/internal/middleware"
	"easylife_backend/internal/models"
	"easylife_backend/internal/services"
	"easylife_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	*BaseHandler
	businessService services.BusinessService
}

func NewBusinessHandler(base *BaseHandler, businessService services.BusinessService) *BusinessHandler {
	return &BusinessHandler{
		BaseHandler:     base,
		businessService: businessService,
	}
}

func (h *BusinessHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public directory.
	rg.GET("/businesses", h.ListPublic)
	rg.GET("/businesses/:id", h.GetPublic)
	rg.GET("/categories", h.ListCategories)

	seller := rg.Group("/seller/businesses")
	seller.Use(middleware.AuthMiddleware())
	seller.Use(middleware.RequireRoles(models.UserRoleSeller))
	{
		seller.POST("", h.Create)
		seller.GET("", h.ListMine)
		seller.PUT("/:id", h.Update)
	}

	customer := rg.Group("/customer/saved")
	customer.Use(middleware.AuthMiddleware())
	customer.Use(middleware.RequireRoles(models.UserRoleCustomer))
	{
		customer.GET("", h.ListSaved)
		customer.POST("/:businessId", h.Save)
		customer.DELETE("/:businessId", h.Unsave)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/businesses/pending", h.ListPending)
		admin.GET("/businesses/:id", h.Get)
		admin.PUT("/businesses/:id/moderate", h.Moderate)
		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
	}
}

func (h *BusinessHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBusinessRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.businessService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *BusinessHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.businessService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BusinessHandler) GetPublic(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.businessService.GetPublic(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBusinessRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.businessService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BusinessHandler) ListPublic(c *gin.Context) {
	var criteria dto.BusinessCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	db := h.GetDB(c)

	response, err := h.businessService.ListPublic(db, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BusinessHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.businessService.ListMine(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"businesses": response})
}

func (h *BusinessHandler) Moderate(c *gin.Context) {
	var req dto.ModerateBusinessRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.businessService.Moderate(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BusinessHandler) ListPending(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	db := h.GetDB(c)

	response, err := h.businessService.ListPending(db, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BusinessHandler) Save(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.businessService.SaveBusiness(db, userID, c.Param("businessId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Business saved"})
}

func (h *BusinessHandler) Unsave(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.businessService.UnsaveBusiness(db, userID, c.Param("businessId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Business removed from saved"})
}

func (h *BusinessHandler) ListSaved(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.businessService.ListSaved(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"businesses": response})
}

func (h *BusinessHandler) ListCategories(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.businessService.ListCategories(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": response})
}

func (h *BusinessHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.businessService.CreateCategory(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *BusinessHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.businessService.UpdateCategory(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
