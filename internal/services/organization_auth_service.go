package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"joblink_backend/internal/auth"
	"joblink_backend/internal/email"
	"joblink_backend/internal/logger"
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"
)

// OrganizationAuthService covers the password side of the house:
// registration, status-gated login, and the OTP-gated password reset.
type OrganizationAuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.OrganizationRegisterRequest) (*dto.OrganizationDTO, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.OrganizationLoginRequest) (*dto.OrganizationAuthResponse, error)
	RequestPasswordReset(ctx context.Context, db *gorm.DB, emailAddr string) error
	VerifyResetOtp(ctx context.Context, db *gorm.DB, emailAddr, code string) error
	CommitPassword(ctx context.Context, db *gorm.DB, req *dto.PasswordResetCommit) error
}

type OrganizationAuthServiceImpl struct {
	orgRepo       repositories.OrganizationRepository
	tokenIssuer   *auth.TokenIssuer
	emailProvider email.Provider
	otpTTL        time.Duration
}

func NewOrganizationAuthService(
	orgRepo repositories.OrganizationRepository,
	tokenIssuer *auth.TokenIssuer,
	emailProvider email.Provider,
	otpTTL time.Duration,
) OrganizationAuthService {
	if otpTTL <= 0 {
		otpTTL = 10 * time.Minute
	}
	return &OrganizationAuthServiceImpl{
		orgRepo:       orgRepo,
		tokenIssuer:   tokenIssuer,
		emailProvider: emailProvider,
		otpTTL:        otpTTL,
	}
}

// Register creates the account in the 'registered' state. Only an
// administrator moves it to 'active'; until then login is refused.
func (s *OrganizationAuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.OrganizationRegisterRequest) (*dto.OrganizationDTO, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	org := &models.Organization{
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Name:         req.Name,
		Kind:         models.OrganizationKind(req.Kind),
		Status:       models.OrganizationStatusRegistered,
		Phone:        req.Phone,
		City:         req.City,
		Website:      req.Website,
	}

	if err := s.orgRepo.Create(db, org); err != nil {
		if apperrors.Is(err, repositories.ErrOrganizationAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	view := organizationToDTO(org)
	return &view, nil
}

// Login verifies the password, then gates on the account status:
// 'registered' means never activated, anything else but 'active' means
// deactivated.
func (s *OrganizationAuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.OrganizationLoginRequest) (*dto.OrganizationAuthResponse, error) {
	org, err := s.orgRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, apperrors.ErrIdentityNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, org.PasswordHash) {
		return nil, apperrors.ErrBadCredentials
	}

	switch org.Status {
	case models.OrganizationStatusActive:
		// proceed
	case models.OrganizationStatusRegistered:
		return nil, apperrors.ErrAccountNotActive
	default:
		return nil, apperrors.ErrAccountDeactivated
	}

	token, err := s.tokenIssuer.Issue(auth.OrganizationClaims(org))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.OrganizationAuthResponse{
		Token:        token,
		Organization: organizationToDTO(org),
	}, nil
}

// RequestPasswordReset issues a reset code to an existing account.
// Shaped like the candidate OTP issuance: overwrite, persist, then
// fire-and-forget the notification.
func (s *OrganizationAuthServiceImpl) RequestPasswordReset(ctx context.Context, db *gorm.DB, emailAddr string) error {
	emailAddr = normalizeEmail(emailAddr)

	org, err := s.orgRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrganizationNotFound) {
			return apperrors.ErrIdentityNotFound
		}
		return apperrors.InternalError(err)
	}

	code, err := auth.GenerateOtp()
	if err != nil {
		return apperrors.InternalError(err)
	}
	expiresAt := time.Now().Add(s.otpTTL)

	if err := s.orgRepo.SetOtp(db, org.ID, code, expiresAt); err != nil {
		return apperrors.InternalError(err)
	}

	if s.emailProvider != nil {
		ttlMinutes := int(s.otpTTL.Minutes())
		go func() {
			if err := s.emailProvider.SendPasswordResetCode(emailAddr, code, ttlMinutes); err != nil {
				logger.CtxWarn(ctx, "failed to send password reset code",
					"error", err.Error(),
					"email", emailAddr,
				)
			}
		}()
	}

	return nil
}

// VerifyResetOtp checks the code without consuming it; the commit step
// re-verifies.
func (s *OrganizationAuthServiceImpl) VerifyResetOtp(ctx context.Context, db *gorm.DB, emailAddr, code string) error {
	org, err := s.orgRepo.FindByEmail(db, normalizeEmail(emailAddr))
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrganizationNotFound) {
			return apperrors.ErrIdentityNotFound
		}
		return apperrors.InternalError(err)
	}

	return checkResetSecret(org, code)
}

// CommitPassword re-verifies the code atomically with the password
// write, then clears the reset secret. Verify and commit therefore
// cannot be split by a later code issuance.
func (s *OrganizationAuthServiceImpl) CommitPassword(ctx context.Context, db *gorm.DB, req *dto.PasswordResetCommit) error {
	emailAddr := normalizeEmail(req.Email)

	org, err := s.orgRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrganizationNotFound) {
			return apperrors.ErrIdentityNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := checkResetSecret(org, req.Otp); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.orgRepo.UpdatePassword(db, org.ID, hash); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.orgRepo.ClearOtp(db, org.ID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "organization password reset", "organization_id", org.ID)
	return nil
}

func checkResetSecret(org *models.Organization, code string) error {
	if org.OtpExpiresAt == nil || time.Now().After(*org.OtpExpiresAt) {
		return apperrors.ErrOtpExpired
	}
	if org.Otp == "" || org.Otp != code {
		return apperrors.ErrInvalidOtp
	}
	return nil
}

func organizationToDTO(o *models.Organization) dto.OrganizationDTO {
	return dto.OrganizationDTO{
		ID:        o.ID,
		Email:     o.Email,
		Name:      o.Name,
		Kind:      o.Kind,
		Status:    o.Status,
		Phone:     o.Phone,
		City:      o.City,
		Website:   o.Website,
		CreatedAt: o.CreatedAt,
	}
}
