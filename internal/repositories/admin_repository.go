package repositories

import (
	"errors"

	"gorm.io/gorm"

	"joblink_backend/internal/models"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Admin, error)
	FindByUsername(db *gorm.DB, username string) (*models.Admin, error)
	Create(db *gorm.DB, admin *models.Admin) error
}

type AdminRepositoryImpl struct{}

func NewAdminRepository() AdminRepository {
	return &AdminRepositoryImpl{}
}

func (r *AdminRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Admin, error) {
	var admin models.Admin
	err := db.First(&admin, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindByUsername(db *gorm.DB, username string) (*models.Admin, error) {
	var admin models.Admin
	err := db.First(&admin, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) Create(db *gorm.DB, admin *models.Admin) error {
	if err := db.Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRecord
		}
		return err
	}
	return nil
}
