package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"joblink_backend/internal/logger"
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/internal/storage"
	"joblink_backend/pkg/apperrors"
)

// CandidateService is the candidate's own profile surface: read, edit,
// and the two private blobs (profile picture, resume).
type CandidateService interface {
	GetProfile(ctx context.Context, db *gorm.DB, candidateID string) (*dto.CandidateProfileResponse, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, candidateID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error)
	UploadProfilePicture(ctx context.Context, db *gorm.DB, candidateID, filename, contentType string, reader io.Reader) (*dto.CandidateProfileResponse, error)
	UploadResume(ctx context.Context, db *gorm.DB, candidateID, filename, contentType string, reader io.Reader) (*dto.CandidateProfileResponse, error)
}

type CandidateServiceImpl struct {
	candidateRepo repositories.CandidateRepository
	blobStore     storage.Storage
}

func NewCandidateService(candidateRepo repositories.CandidateRepository, blobStore storage.Storage) CandidateService {
	return &CandidateServiceImpl{
		candidateRepo: candidateRepo,
		blobStore:     blobStore,
	}
}

func (s *CandidateServiceImpl) GetProfile(ctx context.Context, db *gorm.DB, candidateID string) (*dto.CandidateProfileResponse, error) {
	candidate, err := s.candidateRepo.FindByID(db, candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.profileResponse(ctx, candidate), nil
}

func (s *CandidateServiceImpl) UpdateProfile(ctx context.Context, db *gorm.DB, candidateID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error) {
	candidate, err := s.candidateRepo.FindByID(db, candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		candidate.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		candidate.LastName = *req.LastName
	}
	if req.Phone != nil {
		candidate.Phone = *req.Phone
	}
	if req.City != nil {
		candidate.City = *req.City
	}
	if req.Headline != nil {
		candidate.Headline = *req.Headline
	}

	if err := s.candidateRepo.Update(db, candidate); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.profileResponse(ctx, candidate), nil
}

func (s *CandidateServiceImpl) UploadProfilePicture(ctx context.Context, db *gorm.DB, candidateID, filename, contentType string, reader io.Reader) (*dto.CandidateProfileResponse, error) {
	return s.uploadBlob(ctx, db, candidateID, "profile-pictures", filename, contentType, reader, true)
}

func (s *CandidateServiceImpl) UploadResume(ctx context.Context, db *gorm.DB, candidateID, filename, contentType string, reader io.Reader) (*dto.CandidateProfileResponse, error) {
	return s.uploadBlob(ctx, db, candidateID, "resumes", filename, contentType, reader, false)
}

// uploadBlob stores the blob first and only then points the profile at
// the new key, so a failed upload never orphans the profile reference.
// The previous blob is deleted best-effort.
func (s *CandidateServiceImpl) uploadBlob(
	ctx context.Context,
	db *gorm.DB,
	candidateID, prefix, filename, contentType string,
	reader io.Reader,
	isPicture bool,
) (*dto.CandidateProfileResponse, error) {
	if s.blobStore == nil {
		return nil, apperrors.InternalError(fmt.Errorf("storage is not configured"))
	}

	candidate, err := s.candidateRepo.FindByID(db, candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	key := fmt.Sprintf("%s/%s/%s%s", prefix, candidateID, uuid.New().String(), sanitizeExt(filename))
	if err := s.blobStore.Save(ctx, key, reader, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	oldKey := candidate.ResumeKey
	if isPicture {
		oldKey = candidate.ProfilePictureKey
		candidate.ProfilePictureKey = key
	} else {
		candidate.ResumeKey = key
	}

	if err := s.candidateRepo.Update(db, candidate); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if oldKey != "" {
		if err := s.blobStore.Delete(ctx, oldKey); err != nil {
			logger.CtxWarn(ctx, "failed to delete replaced blob",
				"error", err.Error(),
				"key", oldKey,
			)
		}
	}

	return s.profileResponse(ctx, candidate), nil
}

func (s *CandidateServiceImpl) profileResponse(ctx context.Context, candidate *models.Candidate) *dto.CandidateProfileResponse {
	resp := &dto.CandidateProfileResponse{
		Candidate: candidateToDTO(candidate),
	}
	resp.ProfilePictureURL = s.presign(ctx, candidate.ProfilePictureKey)
	resp.ResumeURL = s.presign(ctx, candidate.ResumeKey)
	return resp
}

func (s *CandidateServiceImpl) presign(ctx context.Context, key string) string {
	if key == "" || s.blobStore == nil {
		return ""
	}
	url, err := s.blobStore.GetSignedURL(ctx, key, presignTTL)
	if err != nil {
		logger.CtxWarn(ctx, "failed to presign candidate blob",
			"error", err.Error(),
			"key", key,
		)
		return ""
	}
	return url
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 {
		return ""
	}
	return ext
}
