package dto

import (
	"time"

	"joblink_backend/internal/models"
)

// CreateJobRequest posts a new opening.
type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	JobType     string   `json:"job_type,omitempty"`
	SalaryMin   *float64 `json:"salary_min,omitempty"`
	SalaryMax   *float64 `json:"salary_max,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// UpdateJobRequest edits an opening owned by the caller.
type UpdateJobRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Location    *string  `json:"location,omitempty"`
	JobType     *string  `json:"job_type,omitempty"`
	SalaryMin   *float64 `json:"salary_min,omitempty"`
	SalaryMax   *float64 `json:"salary_max,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,is-job-status"`
}

// JobListQuery filters the public job listing.
type JobListQuery struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// JobDTO is a job joined with its owning organization for display.
type JobDTO struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	Location         string           `json:"location,omitempty"`
	JobType          string           `json:"job_type,omitempty"`
	SalaryMin        *float64         `json:"salary_min,omitempty"`
	SalaryMax        *float64         `json:"salary_max,omitempty"`
	Skills           []string         `json:"skills,omitempty"`
	Status           models.JobStatus `json:"status"`
	OrganizationID   string           `json:"organization_id"`
	OrganizationName string           `json:"organization_name,omitempty"`
	OrganizationLogo string           `json:"organization_logo,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// JobListResponse is a paginated job listing.
type JobListResponse struct {
	Jobs  []JobDTO `json:"jobs"`
	Total int64    `json:"total"`
	Page  int      `json:"page"`
}
