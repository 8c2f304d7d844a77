package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"joblink_backend/internal/models"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrDuplicateRecord   = errors.New("duplicate record")
)

type CandidateRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Candidate, error)
	FindByEmail(db *gorm.DB, email string) (*models.Candidate, error)
	Create(db *gorm.DB, candidate *models.Candidate) error
	Update(db *gorm.DB, candidate *models.Candidate) error
	// SetOtp overwrites the candidate's one-time code and expiry,
	// invalidating any previous code.
	SetOtp(db *gorm.DB, id string, code string, expiresAt time.Time) error
	// ClearOtp consumes the current code.
	ClearOtp(db *gorm.DB, id string) error
}

type CandidateRepositoryImpl struct{}

func NewCandidateRepository() CandidateRepository {
	return &CandidateRepositoryImpl{}
}

func (r *CandidateRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := db.First(&candidate, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := db.First(&candidate, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepositoryImpl) Create(db *gorm.DB, candidate *models.Candidate) error {
	if err := db.Create(candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRecord
		}
		return err
	}
	return nil
}

func (r *CandidateRepositoryImpl) Update(db *gorm.DB, candidate *models.Candidate) error {
	return db.Save(candidate).Error
}

func (r *CandidateRepositoryImpl) SetOtp(db *gorm.DB, id string, code string, expiresAt time.Time) error {
	return db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"otp":            code,
			"otp_expires_at": expiresAt,
		}).Error
}

func (r *CandidateRepositoryImpl) ClearOtp(db *gorm.DB, id string) error {
	return db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"otp":            "",
			"otp_expires_at": nil,
		}).Error
}
