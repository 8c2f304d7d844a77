package services

import (
	"context"

	"gorm.io/gorm"

	"joblink_backend/internal/auth"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"
)

type RecruiterAuthService interface {
	Login(ctx context.Context, db *gorm.DB, req *dto.RecruiterLoginRequest) (*dto.RecruiterAuthResponse, error)
}

type RecruiterAuthServiceImpl struct {
	recruiterRepo repositories.RecruiterRepository
	tokenIssuer   *auth.TokenIssuer
}

func NewRecruiterAuthService(recruiterRepo repositories.RecruiterRepository, tokenIssuer *auth.TokenIssuer) RecruiterAuthService {
	return &RecruiterAuthServiceImpl{
		recruiterRepo: recruiterRepo,
		tokenIssuer:   tokenIssuer,
	}
}

// Login checks the password and the active flag. A deactivated
// recruiter account keeps its row but cannot sign in.
func (s *RecruiterAuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.RecruiterLoginRequest) (*dto.RecruiterAuthResponse, error) {
	recruiter, err := s.recruiterRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecruiterNotFound) {
			return nil, apperrors.ErrIdentityNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, recruiter.PasswordHash) {
		return nil, apperrors.ErrBadCredentials
	}

	if !recruiter.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}

	token, err := s.tokenIssuer.Issue(auth.RecruiterClaims(recruiter))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RecruiterAuthResponse{
		Token: token,
		Recruiter: dto.RecruiterDTO{
			ID:        recruiter.ID,
			Email:     recruiter.Email,
			FirstName: recruiter.FirstName,
			LastName:  recruiter.LastName,
		},
	}, nil
}
