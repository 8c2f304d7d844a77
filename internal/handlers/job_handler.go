package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"joblink_backend/internal/middleware"
	"joblink_backend/internal/models"
	"joblink_backend/internal/services"
	"joblink_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes registers the public job reads and the org-gated job
// management routes.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/:id", h.Get)
	}

	org := rg.Group("/organizations/me/jobs")
	org.Use(authMW)
	org.Use(middleware.RequireKinds(models.IdentityKindClient, models.IdentityKindVendor))
	{
		org.GET("", h.ListMine)
		org.POST("", h.Create)
		org.PUT("/:id", h.Update)
		org.POST("/:id/close", h.Close)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	response, err := h.jobService.List(c.Request.Context(), db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	job, err := h.jobService.Get(c.Request.Context(), db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	orgID, ok := h.GetAndAuthorizeIdentityID(c)
	if !ok {
		return
	}

	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	response, err := h.jobService.ListByOrganization(c.Request.Context(), db, orgID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) Create(c *gin.Context) {
	orgID, ok := h.GetAndAuthorizeIdentityID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Create(c.Request.Context(), db, orgID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	orgID, ok := h.GetAndAuthorizeIdentityID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Update(c.Request.Context(), db, orgID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Close(c *gin.Context) {
	orgID, ok := h.GetAndAuthorizeIdentityID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.Close(c.Request.Context(), db, orgID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job closed.",
	})
}
