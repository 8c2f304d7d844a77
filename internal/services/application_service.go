package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"joblink_backend/internal/email"
	"joblink_backend/internal/logger"
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/internal/storage"
	"joblink_backend/pkg/apperrors"
)

// ApplicationService keeps one ledger record per (candidate, job) pair.
// Applying and saving are independent flags on the same record; the
// composite unique index on the pair is the authoritative duplicate
// check, the preceding reads are advisory.
type ApplicationService interface {
	Apply(ctx context.Context, db *gorm.DB, candidateID, jobID string) (*dto.ApplicationDTO, error)
	Save(ctx context.Context, db *gorm.DB, candidateID, jobID string) (*dto.ApplicationDTO, error)
	Unsave(ctx context.Context, db *gorm.DB, candidateID, jobID string) error
	ListMine(ctx context.Context, db *gorm.DB, candidateID string) (*dto.ApplicationListResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	candidateRepo   repositories.CandidateRepository
	jobRepo         repositories.JobRepository
	emailProvider   email.Provider
	blobStore       storage.Storage
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobRepository,
	emailProvider email.Provider,
	blobStore storage.Storage,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		candidateRepo:   candidateRepo,
		jobRepo:         jobRepo,
		emailProvider:   emailProvider,
		blobStore:       blobStore,
	}
}

// Apply marks the pair as applied. A pair already applied is a conflict;
// a saved-only record is upgraded in place and keeps its saved fields.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, db *gorm.DB, candidateID, jobID string) (*dto.ApplicationDTO, error) {
	job, err := s.jobRepo.FindByIDWithOrganization(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	candidate, err := s.candidateRepo.FindByID(db, candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()

	record, err := s.applicationRepo.FindByPair(db, candidateID, jobID)
	switch {
	case err == nil:
		if record.IsJobApplied {
			return nil, apperrors.ErrAlreadyApplied
		}
		record.IsJobApplied = true
		record.AppliedAt = &now
		if err := s.applicationRepo.Update(db, record); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case apperrors.Is(err, repositories.ErrApplicationNotFound):
		record = &models.JobApplication{
			CandidateID:  candidateID,
			JobID:        jobID,
			IsJobApplied: true,
			AppliedAt:    &now,
		}
		if err := s.applicationRepo.Create(db, record); err != nil {
			if !apperrors.Is(err, repositories.ErrApplicationExists) {
				return nil, apperrors.InternalError(err)
			}
			// A concurrent first-write won the pair; the index decides
			// who holds the record, the winner's state decides the outcome.
			record, err = s.applicationRepo.FindByPair(db, candidateID, jobID)
			if err != nil {
				return nil, apperrors.InternalError(err)
			}
			if record.IsJobApplied {
				return nil, apperrors.ErrAlreadyApplied
			}
			record.IsJobApplied = true
			record.AppliedAt = &now
			if err := s.applicationRepo.Update(db, record); err != nil {
				return nil, apperrors.InternalError(err)
			}
		}
	default:
		return nil, apperrors.InternalError(err)
	}

	s.sendApplicationConfirmation(ctx, candidate.Email, job)

	view := s.applicationToDTO(ctx, record, job)
	return &view, nil
}

// Save marks the pair as saved. Re-saving is accepted and just bumps
// SavedAt.
func (s *ApplicationServiceImpl) Save(ctx context.Context, db *gorm.DB, candidateID, jobID string) (*dto.ApplicationDTO, error) {
	job, err := s.jobRepo.FindByIDWithOrganization(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.candidateRepo.FindByID(db, candidateID); err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()

	record, err := s.applicationRepo.FindByPair(db, candidateID, jobID)
	switch {
	case err == nil:
		record.IsJobSaved = true
		record.SavedAt = &now
		if err := s.applicationRepo.Update(db, record); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case apperrors.Is(err, repositories.ErrApplicationNotFound):
		record = &models.JobApplication{
			CandidateID: candidateID,
			JobID:       jobID,
			IsJobSaved:  true,
			SavedAt:     &now,
		}
		if err := s.applicationRepo.Create(db, record); err != nil {
			if !apperrors.Is(err, repositories.ErrApplicationExists) {
				return nil, apperrors.InternalError(err)
			}
			// Lost the first-write race; flip the winner's record instead.
			record, err = s.applicationRepo.FindByPair(db, candidateID, jobID)
			if err != nil {
				return nil, apperrors.InternalError(err)
			}
			record.IsJobSaved = true
			record.SavedAt = &now
			if err := s.applicationRepo.Update(db, record); err != nil {
				return nil, apperrors.InternalError(err)
			}
		}
	default:
		return nil, apperrors.InternalError(err)
	}

	view := s.applicationToDTO(ctx, record, job)
	return &view, nil
}

// Unsave clears the saved flag. It never touches the applied fields and
// never creates a record.
func (s *ApplicationServiceImpl) Unsave(ctx context.Context, db *gorm.DB, candidateID, jobID string) error {
	record, err := s.applicationRepo.FindByPair(db, candidateID, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotSaved
		}
		return apperrors.InternalError(err)
	}

	if !record.IsJobSaved {
		return apperrors.ErrNotSaved
	}

	record.IsJobSaved = false
	record.SavedAt = nil
	if err := s.applicationRepo.Update(db, record); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ListMine returns the candidate's ledger newest-first, each record
// resolved against its job and owning organization.
func (s *ApplicationServiceImpl) ListMine(ctx context.Context, db *gorm.DB, candidateID string) (*dto.ApplicationListResponse, error) {
	if _, err := s.candidateRepo.FindByID(db, candidateID); err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	records, err := s.applicationRepo.ListByCandidate(db, candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.ApplicationDTO, 0, len(records))
	for i := range records {
		views = append(views, s.applicationToDTO(ctx, &records[i], records[i].Job))
	}

	return &dto.ApplicationListResponse{
		Applications: views,
		Total:        len(views),
	}, nil
}

func (s *ApplicationServiceImpl) sendApplicationConfirmation(ctx context.Context, to string, job *models.Job) {
	if s.emailProvider == nil {
		return
	}
	orgName := ""
	if job.Organization != nil {
		orgName = job.Organization.Name
	}
	title := job.Title
	go func() {
		if err := s.emailProvider.SendApplicationConfirmation(to, title, orgName); err != nil {
			logger.CtxWarn(ctx, "failed to send application confirmation",
				"error", err.Error(),
				"email", to,
			)
		}
	}()
}

func (s *ApplicationServiceImpl) applicationToDTO(ctx context.Context, record *models.JobApplication, job *models.Job) dto.ApplicationDTO {
	view := dto.ApplicationDTO{
		ID:           record.ID,
		JobID:        record.JobID,
		IsJobApplied: record.IsJobApplied,
		AppliedAt:    record.AppliedAt,
		IsJobSaved:   record.IsJobSaved,
		SavedAt:      record.SavedAt,
		CreatedAt:    record.CreatedAt,
	}
	if job != nil {
		jobView := s.jobToDTO(ctx, job)
		view.Job = &jobView
	}
	return view
}

func (s *ApplicationServiceImpl) jobToDTO(ctx context.Context, job *models.Job) dto.JobDTO {
	view := dto.JobDTO{
		ID:             job.ID,
		Title:          job.Title,
		Description:    job.Description,
		Location:       job.Location,
		JobType:        job.JobType,
		SalaryMin:      job.SalaryMin,
		SalaryMax:      job.SalaryMax,
		Skills:         decodeSkills(job.Skills),
		Status:         job.Status,
		OrganizationID: job.OrganizationID,
		CreatedAt:      job.CreatedAt,
	}
	if job.Organization != nil {
		view.OrganizationName = job.Organization.Name
		view.OrganizationLogo = s.presignLogo(ctx, job.Organization.LogoKey)
	}
	return view
}

// presignLogo is best-effort; a storage hiccup must not fail the read
// path.
func (s *ApplicationServiceImpl) presignLogo(ctx context.Context, key string) string {
	if key == "" || s.blobStore == nil {
		return ""
	}
	url, err := s.blobStore.GetSignedURL(ctx, key, presignTTL)
	if err != nil {
		logger.CtxWarn(ctx, "failed to presign organization logo",
			"error", err.Error(),
			"key", key,
		)
		return ""
	}
	return url
}

func decodeSkills(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil
	}
	return skills
}
