package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joblink_backend/internal/auth"
	"joblink_backend/pkg/apperrors"
)

func newCandidateAuthFixture(otpTTL time.Duration) (*fakeCandidateRepo, *recordingEmailProvider, CandidateAuthService) {
	repo := newFakeCandidateRepo()
	notifier := &recordingEmailProvider{}
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	svc := NewCandidateAuthService(repo, issuer, notifier, &fakeStorage{}, otpTTL)
	return repo, notifier, svc
}

func TestRequestOtp_CreatesCandidateOnFirstContact(t *testing.T) {
	repo, _, svc := newCandidateAuthFixture(10 * time.Minute)
	ctx := context.Background()

	view, err := svc.RequestOtp(ctx, nil, "New.User@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "new.user@example.com", view.Email)
	assert.NotEmpty(t, view.ID)

	code, expiresAt := repo.storedOtp("new.user@example.com")
	assert.Len(t, code, 5)
	require.NotNil(t, expiresAt)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), *expiresAt, time.Minute)
}

func TestRequestOtp_OverwritesPreviousCode(t *testing.T) {
	repo, _, svc := newCandidateAuthFixture(10 * time.Minute)
	ctx := context.Background()

	_, err := svc.RequestOtp(ctx, nil, "user@example.com")
	require.NoError(t, err)
	first, _ := repo.storedOtp("user@example.com")

	// Reissue until the code changes; two random 5-digit codes can
	// collide, but not repeatedly.
	var second string
	for i := 0; i < 20; i++ {
		_, err = svc.RequestOtp(ctx, nil, "user@example.com")
		require.NoError(t, err)
		second, _ = repo.storedOtp("user@example.com")
		if second != first {
			break
		}
	}
	assert.NotEqual(t, first, second)

	// The old code is dead: only the stored code verifies.
	_, err = svc.VerifyOtp(ctx, nil, "user@example.com", first)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOtp)
}

func TestVerifyOtp_Success_ConsumesCode(t *testing.T) {
	repo, _, svc := newCandidateAuthFixture(10 * time.Minute)
	ctx := context.Background()

	_, err := svc.RequestOtp(ctx, nil, "user@example.com")
	require.NoError(t, err)
	code, _ := repo.storedOtp("user@example.com")

	resp, err := svc.VerifyOtp(ctx, nil, "user@example.com", code)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user@example.com", resp.Candidate.Email)

	// Single use: the same code fails on replay.
	_, err = svc.VerifyOtp(ctx, nil, "user@example.com", code)
	assert.ErrorIs(t, err, apperrors.ErrOtpExpired)
}

func TestVerifyOtp_WrongCode(t *testing.T) {
	repo, _, svc := newCandidateAuthFixture(10 * time.Minute)
	ctx := context.Background()

	_, err := svc.RequestOtp(ctx, nil, "user@example.com")
	require.NoError(t, err)
	code, _ := repo.storedOtp("user@example.com")

	wrong := "00000"
	if wrong == code {
		wrong = "00001"
	}
	_, err = svc.VerifyOtp(ctx, nil, "user@example.com", wrong)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOtp)

	// The stored code survives a failed attempt.
	stored, _ := repo.storedOtp("user@example.com")
	assert.Equal(t, code, stored)
}

func TestVerifyOtp_Expired(t *testing.T) {
	repo, _, svc := newCandidateAuthFixture(10 * time.Minute)
	ctx := context.Background()

	_, err := svc.RequestOtp(ctx, nil, "user@example.com")
	require.NoError(t, err)
	code, _ := repo.storedOtp("user@example.com")
	repo.expireOtp("user@example.com")

	_, err = svc.VerifyOtp(ctx, nil, "user@example.com", code)
	assert.ErrorIs(t, err, apperrors.ErrOtpExpired)
}

func TestVerifyOtp_UnknownEmail(t *testing.T) {
	_, _, svc := newCandidateAuthFixture(10 * time.Minute)

	_, err := svc.VerifyOtp(context.Background(), nil, "ghost@example.com", "12345")
	assert.ErrorIs(t, err, apperrors.ErrIdentityNotFound)
}

func TestVerifyOtp_TokenCarriesCandidateKind(t *testing.T) {
	repo, _, svc := newCandidateAuthFixture(10 * time.Minute)
	ctx := context.Background()

	_, err := svc.RequestOtp(ctx, nil, "user@example.com")
	require.NoError(t, err)
	code, _ := repo.storedOtp("user@example.com")

	resp, err := svc.VerifyOtp(ctx, nil, "user@example.com", code)
	require.NoError(t, err)

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	claims, err := issuer.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "candidate", string(claims.Kind))
	assert.Equal(t, resp.Candidate.ID, claims.SubjectID)
}
