package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"joblink_backend/internal/services"
	"joblink_backend/internal/services/dto"
)

type OrganizationAuthHandler struct {
	*BaseHandler
	authService services.OrganizationAuthService
}

func NewOrganizationAuthHandler(base *BaseHandler, authService services.OrganizationAuthService) *OrganizationAuthHandler {
	return &OrganizationAuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes registers organization registration, login and the
// password reset flow.
func (h *OrganizationAuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth/organization")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/password-reset/request", h.RequestPasswordReset)
		auth.POST("/password-reset/verify", h.VerifyResetOtp)
		auth.POST("/password-reset/commit", h.CommitPassword)
	}
}

func (h *OrganizationAuthHandler) Register(c *gin.Context) {
	var req dto.OrganizationRegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	org, err := h.authService.Register(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registration received. An administrator will activate your account.",
		"organization": org,
	})
}

func (h *OrganizationAuthHandler) Login(c *gin.Context) {
	var req dto.OrganizationLoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Login(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *OrganizationAuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.RequestPasswordReset(c.Request.Context(), db, req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "A password reset code has been sent to your email.",
	})
}

func (h *OrganizationAuthHandler) VerifyResetOtp(c *gin.Context) {
	var req dto.PasswordResetVerify
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.VerifyResetOtp(c.Request.Context(), db, req.Email, req.Otp); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Code accepted.",
	})
}

func (h *OrganizationAuthHandler) CommitPassword(c *gin.Context) {
	var req dto.PasswordResetCommit
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.CommitPassword(c.Request.Context(), db, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated. You can now log in.",
	})
}
