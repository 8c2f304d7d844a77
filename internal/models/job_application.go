package models

import "time"

// JobApplication is the single ledger record for one (candidate, job)
// pair. Applying and saving share the record; the composite unique index
// is what makes concurrent first-writes safe, application-level existence
// checks are advisory only.
type JobApplication struct {
	BaseModel
	CandidateID string `gorm:"type:uuid;not null;uniqueIndex:idx_candidate_job"`
	JobID       string `gorm:"type:uuid;not null;uniqueIndex:idx_candidate_job"`

	IsJobApplied bool `gorm:"default:false"`
	AppliedAt    *time.Time
	IsJobSaved   bool `gorm:"default:false"`
	SavedAt      *time.Time

	Candidate *Candidate `gorm:"foreignKey:CandidateID"`
	Job       *Job       `gorm:"foreignKey:JobID"`
}
