package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"joblink_backend/internal/middleware"
	"joblink_backend/internal/models"
	"joblink_backend/internal/services"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"
)

// 10 MB cap on profile uploads.
const maxUploadSize = 10 << 20

type CandidateHandler struct {
	*BaseHandler
	candidateService services.CandidateService
}

func NewCandidateHandler(base *BaseHandler, candidateService services.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler:      base,
		candidateService: candidateService,
	}
}

// RegisterRoutes registers the candidate's own profile routes.
func (h *CandidateHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	me := rg.Group("/candidates/me")
	me.Use(authMW)
	me.Use(middleware.RequireKinds(models.IdentityKindCandidate))
	{
		me.GET("", h.GetProfile)
		me.PUT("", h.UpdateProfile)
		me.POST("/profile-picture", h.UploadProfilePicture)
		me.POST("/resume", h.UploadResume)
	}
}

func (h *CandidateHandler) GetProfile(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeIdentityID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.candidateService.GetProfile(c.Request.Context(), db, candidateID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeIdentityID(c)
	if !ok {
		return
	}

	var req dto.UpdateCandidateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.candidateService.UpdateProfile(c.Request.Context(), db, candidateID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *CandidateHandler) UploadProfilePicture(c *gin.Context) {
	h.upload(c, true)
}

func (h *CandidateHandler) UploadResume(c *gin.Context) {
	h.upload(c, false)
}

func (h *CandidateHandler) upload(c *gin.Context, isPicture bool) {
	candidateID, ok := h.GetAndAuthorizeIdentityID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file in multipart form"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File exceeds the upload size limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	db := h.GetDB(c)
	contentType := fileHeader.Header.Get("Content-Type")

	var profile *dto.CandidateProfileResponse
	if isPicture {
		profile, err = h.candidateService.UploadProfilePicture(c.Request.Context(), db, candidateID, fileHeader.Filename, contentType, file)
	} else {
		profile, err = h.candidateService.UploadResume(c.Request.Context(), db, candidateID, fileHeader.Filename, contentType, file)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
