package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joblink_backend/internal/models"
	"joblink_backend/internal/services/dto"
	"joblink_backend/pkg/apperrors"
)

func newJobFixture() (*fakeJobRepo, JobService) {
	jobRepo := newFakeJobRepo()
	org := &models.Organization{Name: "Acme GmbH"}
	org.ID = "org-1"
	jobRepo.addOrganization(org)
	return jobRepo, NewJobService(jobRepo, &fakeStorage{})
}

func TestJobCreate(t *testing.T) {
	_, svc := newJobFixture()

	job, err := svc.Create(context.Background(), nil, "org-1", &dto.CreateJobRequest{
		Title:  "Backend Engineer",
		Skills: []string{"go", "postgres"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, []string{"go", "postgres"}, job.Skills)
	assert.Equal(t, "org-1", job.OrganizationID)
}

func TestJobUpdate_OwnershipEnforced(t *testing.T) {
	_, svc := newJobFixture()
	ctx := context.Background()

	job, err := svc.Create(ctx, nil, "org-1", &dto.CreateJobRequest{Title: "Backend Engineer"})
	require.NoError(t, err)

	newTitle := "Senior Backend Engineer"
	updated, err := svc.Update(ctx, nil, "org-1", job.ID, &dto.UpdateJobRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)

	_, err = svc.Update(ctx, nil, "other-org", job.ID, &dto.UpdateJobRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrJobNotOwned)

	_, err = svc.Update(ctx, nil, "org-1", "missing-job", &dto.UpdateJobRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestJobClose(t *testing.T) {
	jobRepo, svc := newJobFixture()
	ctx := context.Background()

	job, err := svc.Create(ctx, nil, "org-1", &dto.CreateJobRequest{Title: "Backend Engineer"})
	require.NoError(t, err)

	err = svc.Close(ctx, nil, "other-org", job.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobNotOwned)

	require.NoError(t, svc.Close(ctx, nil, "org-1", job.ID))
	stored, err := jobRepo.FindByID(nil, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, stored.Status)
}

func TestJobList_OnlyOpenJobs(t *testing.T) {
	_, svc := newJobFixture()
	ctx := context.Background()

	open, err := svc.Create(ctx, nil, "org-1", &dto.CreateJobRequest{Title: "Open role"})
	require.NoError(t, err)
	closed, err := svc.Create(ctx, nil, "org-1", &dto.CreateJobRequest{Title: "Closed role"})
	require.NoError(t, err)
	require.NoError(t, svc.Close(ctx, nil, "org-1", closed.ID))

	resp, err := svc.List(ctx, nil, &dto.JobListQuery{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, open.ID, resp.Jobs[0].ID)
	assert.Equal(t, "Acme GmbH", resp.Jobs[0].OrganizationName)

	// The owner's listing still shows the closed job.
	mine, err := svc.ListByOrganization(ctx, nil, "org-1", &dto.JobListQuery{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, mine.Jobs, 2)
}

func TestJobGet_ResolvesOrganization(t *testing.T) {
	_, svc := newJobFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, nil, "org-1", &dto.CreateJobRequest{Title: "Backend Engineer"})
	require.NoError(t, err)

	job, err := svc.Get(ctx, nil, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", job.OrganizationName)

	_, err = svc.Get(ctx, nil, "missing-job")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}
