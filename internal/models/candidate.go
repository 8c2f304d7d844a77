package models

import "time"

// Candidate is the passwordless identity. The OTP pair is the only
// credential: issuing a new code overwrites the previous one, so at most
// one live code exists per candidate.
type Candidate struct {
	BaseModel
	Email     string `gorm:"uniqueIndex;not null"`
	FirstName string
	LastName  string
	Phone     string
	City      string
	Headline  string

	// Storage keys for uploaded blobs; resolved to short-lived URLs on read.
	ProfilePictureKey string
	ResumeKey         string

	Otp          string
	OtpExpiresAt *time.Time

	Applications []JobApplication `gorm:"foreignKey:CandidateID"`
}
