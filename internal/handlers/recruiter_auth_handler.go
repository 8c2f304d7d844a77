package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"joblink_backend/internal/services"
	"joblink_backend/internal/services/dto"
)

type RecruiterAuthHandler struct {
	*BaseHandler
	authService services.RecruiterAuthService
}

func NewRecruiterAuthHandler(base *BaseHandler, authService services.RecruiterAuthService) *RecruiterAuthHandler {
	return &RecruiterAuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *RecruiterAuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth/recruiter")
	{
		auth.POST("/login", h.Login)
	}
}

func (h *RecruiterAuthHandler) Login(c *gin.Context) {
	var req dto.RecruiterLoginRequest
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
