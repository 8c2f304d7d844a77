package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"joblink_backend/internal/auth"
	"joblink_backend/internal/email"
	"joblink_backend/internal/logger"
	"joblink_backend/internal/models"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/internal/storage"
	"joblink_backend/pkg/apperrors"
)

// presignTTL is how long resolved blob URLs stay valid.
const presignTTL = 15 * time.Minute

// CandidateAuthService handles the passwordless sign-in flow: issue a
// one-time code, then exchange it for a session token.
type CandidateAuthService interface {
	RequestOtp(ctx context.Context, db *gorm.DB, emailAddr string) (*dto.CandidateDTO, error)
	VerifyOtp(ctx context.Context, db *gorm.DB, emailAddr, code string) (*dto.CandidateAuthResponse, error)
}

type CandidateAuthServiceImpl struct {
	candidateRepo repositories.CandidateRepository
	tokenIssuer   *auth.TokenIssuer
	emailProvider email.Provider
	blobStore     storage.Storage
	otpTTL        time.Duration
}

func NewCandidateAuthService(
	candidateRepo repositories.CandidateRepository,
	tokenIssuer *auth.TokenIssuer,
	emailProvider email.Provider,
	blobStore storage.Storage,
	otpTTL time.Duration,
) CandidateAuthService {
	if otpTTL <= 0 {
		otpTTL = 10 * time.Minute
	}
	return &CandidateAuthServiceImpl{
		candidateRepo: candidateRepo,
		tokenIssuer:   tokenIssuer,
		emailProvider: emailProvider,
		blobStore:     blobStore,
		otpTTL:        otpTTL,
	}
}

// RequestOtp issues a fresh 5-digit code for the email, creating the
// candidate record on first contact. The previous code, if any, is
// overwritten so at most one code is ever live. The code itself never
// appears in the response.
func (s *CandidateAuthServiceImpl) RequestOtp(ctx context.Context, db *gorm.DB, emailAddr string) (*dto.CandidateDTO, error) {
	emailAddr = normalizeEmail(emailAddr)

	code, err := auth.GenerateOtp()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	expiresAt := time.Now().Add(s.otpTTL)

	candidate, err := s.candidateRepo.FindByEmail(db, emailAddr)
	switch {
	case err == nil:
		if err := s.candidateRepo.SetOtp(db, candidate.ID, code, expiresAt); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case apperrors.Is(err, repositories.ErrCandidateNotFound):
		// First contact: create the identity with email + OTP only.
		candidate = &models.Candidate{
			Email:        emailAddr,
			Otp:          code,
			OtpExpiresAt: &expiresAt,
		}
		if err := s.candidateRepo.Create(db, candidate); err != nil {
			return nil, apperrors.InternalError(err)
		}
	default:
		return nil, apperrors.InternalError(err)
	}

	s.sendLoginCode(ctx, emailAddr, code)

	view := candidateToDTO(candidate)
	return &view, nil
}

// VerifyOtp validates the code and mints a session token. Codes are
// single use: a successful validation consumes the stored code and its
// expiry, so a replay within the TTL fails with ErrOtpExpired.
func (s *CandidateAuthServiceImpl) VerifyOtp(ctx context.Context, db *gorm.DB, emailAddr, code string) (*dto.CandidateAuthResponse, error) {
	emailAddr = normalizeEmail(emailAddr)

	candidate, err := s.candidateRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrIdentityNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if candidate.OtpExpiresAt == nil || time.Now().After(*candidate.OtpExpiresAt) {
		return nil, apperrors.ErrOtpExpired
	}

	if candidate.Otp == "" || candidate.Otp != code {
		return nil, apperrors.ErrInvalidOtp
	}

	if err := s.candidateRepo.ClearOtp(db, candidate.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokenIssuer.Issue(auth.CandidateClaims(candidate))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.CandidateAuthResponse{
		Token:     token,
		Candidate: candidateToDTO(candidate),
	}

	// Best effort: a presign failure must not fail the validation.
	if candidate.ProfilePictureKey != "" && s.blobStore != nil {
		url, err := s.blobStore.GetSignedURL(ctx, candidate.ProfilePictureKey, presignTTL)
		if err != nil {
			logger.CtxWarn(ctx, "failed to presign profile picture",
				"error", err.Error(),
				"candidate_id", candidate.ID,
			)
		} else {
			resp.ProfilePictureURL = url
		}
	}

	return resp, nil
}

// sendLoginCode delivers the code without blocking or failing the
// request; removing the notifier entirely would change no persisted
// state or returned result.
func (s *CandidateAuthServiceImpl) sendLoginCode(ctx context.Context, to, code string) {
	if s.emailProvider == nil {
		return
	}

	ttlMinutes := int(s.otpTTL.Minutes())
	go func() {
		if err := s.emailProvider.SendLoginCode(to, code, ttlMinutes); err != nil {
			logger.CtxWarn(ctx, "failed to send login code",
				"error", err.Error(),
				"email", to,
			)
		}
	}()
}

func normalizeEmail(emailAddr string) string {
	return strings.ToLower(strings.TrimSpace(emailAddr))
}

func candidateToDTO(c *models.Candidate) dto.CandidateDTO {
	return dto.CandidateDTO{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		City:      c.City,
		Headline:  c.Headline,
		CreatedAt: c.CreatedAt,
	}
}
