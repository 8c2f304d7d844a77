package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"joblink_backend/internal/models"
)

var (
	ErrOrganizationNotFound      = errors.New("organization not found")
	ErrOrganizationAlreadyExists = errors.New("organization already exists")
)

type OrganizationFilter struct {
	Status   models.OrganizationStatus
	Kind     models.OrganizationKind
	Search   string
	Page     int
	PageSize int
}

type OrganizationRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Organization, error)
	FindByEmail(db *gorm.DB, email string) (*models.Organization, error)
	Create(db *gorm.DB, org *models.Organization) error
	Update(db *gorm.DB, org *models.Organization) error
	UpdateStatus(db *gorm.DB, id string, status models.OrganizationStatus) error
	UpdatePassword(db *gorm.DB, id string, passwordHash string) error
	SetOtp(db *gorm.DB, id string, code string, expiresAt time.Time) error
	ClearOtp(db *gorm.DB, id string) error
	FindWithFilter(db *gorm.DB, filter OrganizationFilter) ([]models.Organization, int64, error)
}

type OrganizationRepositoryImpl struct{}

func NewOrganizationRepository() OrganizationRepository {
	return &OrganizationRepositoryImpl{}
}

func (r *OrganizationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Organization, error) {
	var org models.Organization
	err := db.First(&org, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Organization, error) {
	var org models.Organization
	err := db.First(&org, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) Create(db *gorm.DB, org *models.Organization) error {
	if err := db.Create(org).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrOrganizationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *OrganizationRepositoryImpl) Update(db *gorm.DB, org *models.Organization) error {
	return db.Save(org).Error
}

func (r *OrganizationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.OrganizationStatus) error {
	result := db.Model(&models.Organization{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrganizationNotFound
	}
	return nil
}

func (r *OrganizationRepositoryImpl) UpdatePassword(db *gorm.DB, id string, passwordHash string) error {
	result := db.Model(&models.Organization{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrganizationNotFound
	}
	return nil
}

func (r *OrganizationRepositoryImpl) SetOtp(db *gorm.DB, id string, code string, expiresAt time.Time) error {
	return db.Model(&models.Organization{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"otp":            code,
			"otp_expires_at": expiresAt,
		}).Error
}

func (r *OrganizationRepositoryImpl) ClearOtp(db *gorm.DB, id string) error {
	return db.Model(&models.Organization{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"otp":            "",
			"otp_expires_at": nil,
		}).Error
}

func (r *OrganizationRepositoryImpl) FindWithFilter(db *gorm.DB, filter OrganizationFilter) ([]models.Organization, int64, error) {
	query := db.Model(&models.Organization{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	var orgs []models.Organization
	err := query.
		Order("created_at DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&orgs).Error
	if err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}
