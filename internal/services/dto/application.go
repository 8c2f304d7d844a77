package dto

import "time"

// ApplicationDTO is one ledger record resolved for display.
type ApplicationDTO struct {
	ID           string     `json:"id"`
	JobID        string     `json:"job_id"`
	IsJobApplied bool       `json:"is_job_applied"`
	AppliedAt    *time.Time `json:"applied_at,omitempty"`
	IsJobSaved   bool       `json:"is_job_saved"`
	SavedAt      *time.Time `json:"saved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`

	Job *JobDTO `json:"job,omitempty"`
}

// ApplicationListResponse wraps the candidate's ledger.
type ApplicationListResponse struct {
	Applications []ApplicationDTO `json:"applications"`
	Total        int              `json:"total"`
}
