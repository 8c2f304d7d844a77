package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"joblink_backend/internal/services"
	"joblink_backend/internal/services/dto"
)

type CandidateAuthHandler struct {
	*BaseHandler
	authService services.CandidateAuthService
}

func NewCandidateAuthHandler(base *BaseHandler, authService services.CandidateAuthService) *CandidateAuthHandler {
	return &CandidateAuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes registers the candidate passwordless sign-in routes.
func (h *CandidateAuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth/candidate")
	{
		auth.POST("/otp", h.RequestOtp)
		auth.POST("/verify", h.VerifyOtp)
	}
}

// RequestOtp issues a sign-in code. The response is the same whether the
// candidate account existed before or was created just now.
func (h *CandidateAuthHandler) RequestOtp(c *gin.Context) {
	var req dto.RequestOtpRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	_, err := h.authService.RequestOtp(c.Request.Context(), db, req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "A sign-in code has been sent to your email.",
	})
}

func (h *CandidateAuthHandler) VerifyOtp(c *gin.Context) {
	var req dto.VerifyOtpRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.VerifyOtp(c.Request.Context(), db, req.Email, req.Otp)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
