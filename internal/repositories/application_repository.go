package repositories

import (
	"errors"

	"gorm.io/gorm"

	"joblink_backend/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application record not found")
	// ErrApplicationExists signals a unique-index violation on the
	// (candidate_id, job_id) pair. The index, not the preceding read, is
	// the authoritative duplicate check.
	ErrApplicationExists = errors.New("application record already exists")
)

type ApplicationRepository interface {
	FindByPair(db *gorm.DB, candidateID, jobID string) (*models.JobApplication, error)
	Create(db *gorm.DB, record *models.JobApplication) error
	Update(db *gorm.DB, record *models.JobApplication) error
	// ListByCandidate returns the candidate's records newest-first,
	// joined with the job and its owning organization.
	ListByCandidate(db *gorm.DB, candidateID string) ([]models.JobApplication, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) FindByPair(db *gorm.DB, candidateID, jobID string) (*models.JobApplication, error) {
	var record models.JobApplication
	err := db.First(&record, "candidate_id = ? AND job_id = ?", candidateID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, record *models.JobApplication) error {
	if err := db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, record *models.JobApplication) error {
	return db.Save(record).Error
}

func (r *ApplicationRepositoryImpl) ListByCandidate(db *gorm.DB, candidateID string) ([]models.JobApplication, error) {
	var records []models.JobApplication
	err := db.
		Preload("Job").
		Preload("Job.Organization").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
