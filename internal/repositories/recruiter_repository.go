package repositories

import (
	"errors"

	"gorm.io/gorm"

	"joblink_backend/internal/models"
)

var ErrRecruiterNotFound = errors.New("recruiter not found")

type RecruiterRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Recruiter, error)
	FindByEmail(db *gorm.DB, email string) (*models.Recruiter, error)
	Create(db *gorm.DB, recruiter *models.Recruiter) error
	Update(db *gorm.DB, recruiter *models.Recruiter) error
}

type RecruiterRepositoryImpl struct{}

func NewRecruiterRepository() RecruiterRepository {
	return &RecruiterRepositoryImpl{}
}

func (r *RecruiterRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Recruiter, error) {
	var recruiter models.Recruiter
	err := db.First(&recruiter, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecruiterNotFound
		}
		return nil, err
	}
	return &recruiter, nil
}

func (r *RecruiterRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Recruiter, error) {
	var recruiter models.Recruiter
	err := db.First(&recruiter, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecruiterNotFound
		}
		return nil, err
	}
	return &recruiter, nil
}

func (r *RecruiterRepositoryImpl) Create(db *gorm.DB, recruiter *models.Recruiter) error {
	if err := db.Create(recruiter).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRecord
		}
		return err
	}
	return nil
}

func (r *RecruiterRepositoryImpl) Update(db *gorm.DB, recruiter *models.Recruiter) error {
	return db.Save(recruiter).Error
}
