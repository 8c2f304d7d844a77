package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joblink_backend/internal/auth"
	"joblink_backend/internal/models"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"
)

type adminFixture struct {
	adminRepo     *fakeAdminRepo
	orgRepo       *fakeOrganizationRepo
	recruiterRepo *fakeRecruiterRepo
	svc           AdminService
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	adminRepo := newFakeAdminRepo()
	orgRepo := newFakeOrganizationRepo()
	recruiterRepo := newFakeRecruiterRepo()
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	hash, err := auth.HashPassword("admin-pass-123")
	require.NoError(t, err)
	require.NoError(t, adminRepo.Create(nil, &models.Admin{
		Username:     "root",
		PasswordHash: hash,
		Role:         "admin",
	}))

	return &adminFixture{
		adminRepo:     adminRepo,
		orgRepo:       orgRepo,
		recruiterRepo: recruiterRepo,
		svc:           NewAdminService(adminRepo, orgRepo, recruiterRepo, issuer),
	}
}

func TestAdminLogin(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Login(ctx, nil, &dto.AdminLoginRequest{Username: "root", Password: "admin-pass-123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "root", resp.Username)

	_, err = f.svc.Login(ctx, nil, &dto.AdminLoginRequest{Username: "root", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrBadCredentials)

	// Unknown usernames report the same error as a bad password.
	_, err = f.svc.Login(ctx, nil, &dto.AdminLoginRequest{Username: "ghost", Password: "admin-pass-123"})
	assert.ErrorIs(t, err, apperrors.ErrBadCredentials)
}

func TestAdminActivatesOrganization(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	org := &models.Organization{
		Email:  "acme@example.com",
		Name:   "Acme",
		Kind:   models.OrganizationKindClient,
		Status: models.OrganizationStatusRegistered,
	}
	require.NoError(t, f.orgRepo.Create(nil, org))

	require.NoError(t, f.svc.UpdateOrganizationStatus(ctx, nil, org.ID, models.OrganizationStatusActive))

	updated, err := f.orgRepo.FindByID(nil, org.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrganizationStatusActive, updated.Status)

	err = f.svc.UpdateOrganizationStatus(ctx, nil, "missing-org", models.OrganizationStatusActive)
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
}

func TestAdminSetsOrganizationPassword(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	org := &models.Organization{Email: "acme@example.com", Name: "Acme"}
	require.NoError(t, f.orgRepo.Create(nil, org))

	require.NoError(t, f.svc.SetOrganizationPassword(ctx, nil, org.ID, "fresh-password1"))

	updated, err := f.orgRepo.FindByID(nil, org.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("fresh-password1", updated.PasswordHash))

	err = f.svc.SetOrganizationPassword(ctx, nil, org.ID, "short")
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAdminCreatesRecruiter(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	rec, err := f.svc.CreateRecruiter(ctx, nil, &dto.CreateRecruiterRequest{
		Email:     "Rec@Example.com",
		Password:  "recruiter-pass1",
		FirstName: "Jo",
	})
	require.NoError(t, err)
	assert.Equal(t, "rec@example.com", rec.Email)

	_, err = f.svc.CreateRecruiter(ctx, nil, &dto.CreateRecruiterRequest{
		Email:    "rec@example.com",
		Password: "another-pass12",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAdminListsOrganizations(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	for _, o := range []*models.Organization{
		{Email: "a@example.com", Name: "A", Kind: models.OrganizationKindClient, Status: models.OrganizationStatusRegistered},
		{Email: "b@example.com", Name: "B", Kind: models.OrganizationKindVendor, Status: models.OrganizationStatusActive},
	} {
		require.NoError(t, f.orgRepo.Create(nil, o))
	}

	resp, err := f.svc.ListOrganizations(ctx, nil, &dto.OrganizationListQuery{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)

	resp, err = f.svc.ListOrganizations(ctx, nil, &dto.OrganizationListQuery{
		Status: models.OrganizationStatusRegistered,
		Page:   1, PageSize: 20,
	})
	require.NoError(t, err)
	require.Len(t, resp.Organizations, 1)
	assert.Equal(t, "a@example.com", resp.Organizations[0].Email)
}

func TestRecruiterLogin(t *testing.T) {
	recruiterRepo := newFakeRecruiterRepo()
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	svc := NewRecruiterAuthService(recruiterRepo, issuer)
	ctx := context.Background()

	hash, err := auth.HashPassword("recruiter-pass1")
	require.NoError(t, err)
	rec := &models.Recruiter{Email: "rec@example.com", PasswordHash: hash, IsActive: true}
	require.NoError(t, recruiterRepo.Create(nil, rec))

	resp, err := svc.Login(ctx, nil, &dto.RecruiterLoginRequest{Email: "rec@example.com", Password: "recruiter-pass1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(ctx, nil, &dto.RecruiterLoginRequest{Email: "rec@example.com", Password: "wrong-pass123"})
	assert.ErrorIs(t, err, apperrors.ErrBadCredentials)

	// Deactivated recruiters cannot sign in.
	rec.IsActive = false
	require.NoError(t, recruiterRepo.Update(nil, rec))
	_, err = svc.Login(ctx, nil, &dto.RecruiterLoginRequest{Email: "rec@example.com", Password: "recruiter-pass1"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDeactivated)
}
