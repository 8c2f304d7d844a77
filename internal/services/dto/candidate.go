package dto

// UpdateCandidateProfileRequest edits the caller's own profile.
type UpdateCandidateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	City      *string `json:"city,omitempty"`
	Headline  *string `json:"headline,omitempty"`
}

// CandidateProfileResponse is the profile with resolved blob URLs.
type CandidateProfileResponse struct {
	Candidate         CandidateDTO `json:"candidate"`
	ProfilePictureURL string       `json:"profile_picture_url,omitempty"`
	ResumeURL         string       `json:"resume_url,omitempty"`
}
