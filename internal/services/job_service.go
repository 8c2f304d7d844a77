package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"joblink_backend/internal/logger"
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/internal/storage"
	"joblink_backend/pkg/apperrors"
)

// JobService is the organization-side job catalog plus the public read
// surface the ledger points at.
type JobService interface {
	Create(ctx context.Context, db *gorm.DB, orgID string, req *dto.CreateJobRequest) (*dto.JobDTO, error)
	Update(ctx context.Context, db *gorm.DB, orgID, jobID string, req *dto.UpdateJobRequest) (*dto.JobDTO, error)
	Close(ctx context.Context, db *gorm.DB, orgID, jobID string) error
	Get(ctx context.Context, db *gorm.DB, jobID string) (*dto.JobDTO, error)
	List(ctx context.Context, db *gorm.DB, query *dto.JobListQuery) (*dto.JobListResponse, error)
	ListByOrganization(ctx context.Context, db *gorm.DB, orgID string, query *dto.JobListQuery) (*dto.JobListResponse, error)
}

type JobServiceImpl struct {
	jobRepo   repositories.JobRepository
	blobStore storage.Storage
}

func NewJobService(jobRepo repositories.JobRepository, blobStore storage.Storage) JobService {
	return &JobServiceImpl{
		jobRepo:   jobRepo,
		blobStore: blobStore,
	}
}

func (s *JobServiceImpl) Create(ctx context.Context, db *gorm.DB, orgID string, req *dto.CreateJobRequest) (*dto.JobDTO, error) {
	skills, err := encodeSkills(req.Skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		OrganizationID: orgID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		JobType:        req.JobType,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Skills:         skills,
		Status:         models.JobStatusOpen,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "organization_id", orgID)

	view := s.toDTO(ctx, job)
	return &view, nil
}

func (s *JobServiceImpl) Update(ctx context.Context, db *gorm.DB, orgID, jobID string, req *dto.UpdateJobRequest) (*dto.JobDTO, error) {
	job, err := s.ownedJob(db, orgID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.Skills != nil {
		skills, err := encodeSkills(req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.Skills = skills
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	view := s.toDTO(ctx, job)
	return &view, nil
}

// Close takes the job off the market. Ledger records pointing at it are
// kept; there is no cascade.
func (s *JobServiceImpl) Close(ctx context.Context, db *gorm.DB, orgID, jobID string) error {
	if _, err := s.ownedJob(db, orgID, jobID); err != nil {
		return err
	}

	if err := s.jobRepo.UpdateStatus(db, jobID, models.JobStatusClosed); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job closed", "job_id", jobID, "organization_id", orgID)
	return nil
}

func (s *JobServiceImpl) Get(ctx context.Context, db *gorm.DB, jobID string) (*dto.JobDTO, error) {
	job, err := s.jobRepo.FindByIDWithOrganization(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	view := s.toDTO(ctx, job)
	return &view, nil
}

func (s *JobServiceImpl) List(ctx context.Context, db *gorm.DB, query *dto.JobListQuery) (*dto.JobListResponse, error) {
	return s.list(ctx, db, repositories.JobFilter{
		Status:   models.JobStatusOpen,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
}

func (s *JobServiceImpl) ListByOrganization(ctx context.Context, db *gorm.DB, orgID string, query *dto.JobListQuery) (*dto.JobListResponse, error) {
	return s.list(ctx, db, repositories.JobFilter{
		OrganizationID: orgID,
		Search:         query.Search,
		Page:           query.Page,
		PageSize:       query.PageSize,
	})
}

func (s *JobServiceImpl) list(ctx context.Context, db *gorm.DB, filter repositories.JobFilter) (*dto.JobListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	jobs, total, err := s.jobRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.JobDTO, 0, len(jobs))
	for i := range jobs {
		views = append(views, s.toDTO(ctx, &jobs[i]))
	}

	return &dto.JobListResponse{
		Jobs:  views,
		Total: total,
		Page:  filter.Page,
	}, nil
}

func (s *JobServiceImpl) ownedJob(db *gorm.DB, orgID, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.OrganizationID != orgID {
		return nil, apperrors.ErrJobNotOwned
	}
	return job, nil
}

func (s *JobServiceImpl) toDTO(ctx context.Context, job *models.Job) dto.JobDTO {
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
		if job.Organization.LogoKey != "" && s.blobStore != nil {
			if url, err := s.blobStore.GetSignedURL(ctx, job.Organization.LogoKey, presignTTL); err == nil {
				view.OrganizationLogo = url
			} else {
				logger.CtxWarn(ctx, "failed to presign organization logo",
					"error", err.Error(),
					"key", job.Organization.LogoKey,
				)
			}
		}
	}
	return view
}

func encodeSkills(skills []string) (datatypes.JSON, error) {
	if len(skills) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
