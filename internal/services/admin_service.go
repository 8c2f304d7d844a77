package services

import (
	"context"

	"gorm.io/gorm"

	"joblink_backend/internal/auth"
	"joblink_backend/internal/logger"
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"
)

// AdminService holds the back-office operations: admin login, moving
// organizations between statuses, and provisioning recruiter accounts.
type AdminService interface {
	Login(ctx context.Context, db *gorm.DB, req *dto.AdminLoginRequest) (*dto.AdminAuthResponse, error)
	UpdateOrganizationStatus(ctx context.Context, db *gorm.DB, orgID string, status models.OrganizationStatus) error
	SetOrganizationPassword(ctx context.Context, db *gorm.DB, orgID, password string) error
	CreateRecruiter(ctx context.Context, db *gorm.DB, req *dto.CreateRecruiterRequest) (*dto.RecruiterDTO, error)
	ListOrganizations(ctx context.Context, db *gorm.DB, query *dto.OrganizationListQuery) (*dto.OrganizationListResponse, error)
}

type AdminServiceImpl struct {
	adminRepo     repositories.AdminRepository
	orgRepo       repositories.OrganizationRepository
	recruiterRepo repositories.RecruiterRepository
	tokenIssuer   *auth.TokenIssuer
}

func NewAdminService(
	adminRepo repositories.AdminRepository,
	orgRepo repositories.OrganizationRepository,
	recruiterRepo repositories.RecruiterRepository,
	tokenIssuer *auth.TokenIssuer,
) AdminService {
	return &AdminServiceImpl{
		adminRepo:     adminRepo,
		orgRepo:       orgRepo,
		recruiterRepo: recruiterRepo,
		tokenIssuer:   tokenIssuer,
	}
}

func (s *AdminServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.AdminLoginRequest) (*dto.AdminAuthResponse, error) {
	admin, err := s.adminRepo.FindByUsername(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrBadCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrBadCredentials
	}

	token, err := s.tokenIssuer.Issue(auth.AdminClaims(admin))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminAuthResponse{
		Token:    token,
		Username: admin.Username,
		Role:     admin.Role,
	}, nil
}

func (s *AdminServiceImpl) UpdateOrganizationStatus(ctx context.Context, db *gorm.DB, orgID string, status models.OrganizationStatus) error {
	if err := s.orgRepo.UpdateStatus(db, orgID, status); err != nil {
		if apperrors.Is(err, repositories.ErrOrganizationNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "organization status updated",
		"organization_id", orgID,
		"status", string(status),
	)
	return nil
}

func (s *AdminServiceImpl) SetOrganizationPassword(ctx context.Context, db *gorm.DB, orgID, password string) error {
	if err := auth.ValidatePassword(password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.orgRepo.UpdatePassword(db, orgID, hash); err != nil {
		if apperrors.Is(err, repositories.ErrOrganizationNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "organization password set by admin", "organization_id", orgID)
	return nil
}

func (s *AdminServiceImpl) CreateRecruiter(ctx context.Context, db *gorm.DB, req *dto.CreateRecruiterRequest) (*dto.RecruiterDTO, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recruiter := &models.Recruiter{
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
	}

	if err := s.recruiterRepo.Create(db, recruiter); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateRecord) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.RecruiterDTO{
		ID:        recruiter.ID,
		Email:     recruiter.Email,
		FirstName: recruiter.FirstName,
		LastName:  recruiter.LastName,
	}, nil
}

func (s *AdminServiceImpl) ListOrganizations(ctx context.Context, db *gorm.DB, query *dto.OrganizationListQuery) (*dto.OrganizationListResponse, error) {
	filter := repositories.OrganizationFilter{
		Status:   query.Status,
		Kind:     query.Kind,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	orgs, total, err := s.orgRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.OrganizationDTO, 0, len(orgs))
	for i := range orgs {
		views = append(views, organizationToDTO(&orgs[i]))
	}

	return &dto.OrganizationListResponse{
		Organizations: views,
		Total:         total,
		Page:          filter.Page,
		PageSize:      filter.PageSize,
	}, nil
}
