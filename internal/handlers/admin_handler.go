package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"joblink_backend/internal/middleware"
	"joblink_backend/internal/models"
	"joblink_backend/internal/services"
	"joblink_backend/internal/services/dto"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

// RegisterRoutes registers the admin login plus the back-office routes
// behind the admin gate.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/auth/admin/login", h.Login)

	admin := rg.Group("/admin")
	admin.Use(authMW)
	admin.Use(middleware.RequireKinds(models.IdentityKindAdmin))
	{
		admin.GET("/organizations", h.ListOrganizations)
		admin.PATCH("/organizations/:id/status", h.UpdateOrganizationStatus)
		admin.PUT("/organizations/:id/password", h.SetOrganizationPassword)
		admin.POST("/recruiters", h.CreateRecruiter)
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.adminService.Login(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) ListOrganizations(c *gin.Context) {
	var query dto.OrganizationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	response, err := h.adminService.ListOrganizations(c.Request.Context(), db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) UpdateOrganizationStatus(c *gin.Context) {
	var req dto.UpdateOrganizationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	orgID := c.Param("id")

	err := h.adminService.UpdateOrganizationStatus(c.Request.Context(), db, orgID, models.OrganizationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Organization status updated.",
	})
}

func (h *AdminHandler) SetOrganizationPassword(c *gin.Context) {
	var req dto.SetOrganizationPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	orgID := c.Param("id")

	err := h.adminService.SetOrganizationPassword(c.Request.Context(), db, orgID, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Organization password updated.",
	})
}

func (h *AdminHandler) CreateRecruiter(c *gin.Context) {
	var req dto.CreateRecruiterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	recruiter, err := h.adminService.CreateRecruiter(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recruiter)
}
