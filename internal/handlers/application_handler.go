package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"joblink_backend/internal/middleware"
	"joblink_backend/internal/models"
	"joblink_backend/internal/services"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

// RegisterRoutes registers the candidate-gated ledger routes.
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	jobs.Use(authMW)
	jobs.Use(middleware.RequireKinds(models.IdentityKindCandidate))
	{
		jobs.POST("/:id/apply", h.Apply)
		jobs.POST("/:id/save", h.Save)
		jobs.DELETE("/:id/save", h.Unsave)
	}

	me := rg.Group("/candidates/me")
	me.Use(authMW)
	me.Use(middleware.RequireKinds(models.IdentityKindCandidate))
	{
		me.GET("/applications", h.ListMine)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeIdentityID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	record, err := h.applicationService.Apply(c.Request.Context(), db, candidateID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *ApplicationHandler) Save(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeIdentityID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	record, err := h.applicationService.Save(c.Request.Context(), db, candidateID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *ApplicationHandler) Unsave(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeIdentityID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.applicationService.Unsave(c.Request.Context(), db, candidateID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job removed from saved.",
	})
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeIdentityID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.applicationService.ListMine(c.Request.Context(), db, candidateID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
