package dto

import (
	"time"

	"joblink_backend/internal/models"
)

// RequestOtpRequest asks for a one-time sign-in code.
type RequestOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOtpRequest exchanges a code for a session token.
type VerifyOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required" validate:"otp5"`
}

// CandidateDTO is the candidate's public view; OTP fields never leave
// the server.
type CandidateDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	City      string    `json:"city,omitempty"`
	Headline  string    `json:"headline,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CandidateAuthResponse is returned from a successful OTP validation.
type CandidateAuthResponse struct {
	Token             string       `json:"token"`
	Candidate         CandidateDTO `json:"candidate"`
	ProfilePictureURL string       `json:"profile_picture_url,omitempty"`
}

// OrganizationRegisterRequest creates a client/vendor account.
type OrganizationRegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
	Name            string `json:"name" binding:"required"`
	Kind            string `json:"kind" binding:"required" validate:"is-org-kind"`
	Phone           string `json:"phone,omitempty"`
	City            string `json:"city,omitempty"`
	Website         string `json:"website,omitempty" binding:"omitempty,url"`
}

// OrganizationLoginRequest is the password login.
type OrganizationLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PasswordResetRequest asks for a reset code.
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetVerify checks a reset code without committing.
type PasswordResetVerify struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required" validate:"otp5"`
}

// PasswordResetCommit sets the new password. The code is re-verified at
// commit time, so verify-then-commit cannot race a later issuance.
type PasswordResetCommit struct {
	Email           string `json:"email" binding:"required,email"`
	Otp             string `json:"otp" binding:"required" validate:"otp5"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

// OrganizationDTO is the organization's public view.
type OrganizationDTO struct {
	ID        string                    `json:"id"`
	Email     string                    `json:"email"`
	Name      string                    `json:"name"`
	Kind      models.OrganizationKind   `json:"kind"`
	Status    models.OrganizationStatus `json:"status"`
	Phone     string                    `json:"phone,omitempty"`
	City      string                    `json:"city,omitempty"`
	Website   string                    `json:"website,omitempty"`
	LogoURL   string                    `json:"logo_url,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}

// OrganizationAuthResponse is returned from a successful login.
type OrganizationAuthResponse struct {
	Token        string          `json:"token"`
	Organization OrganizationDTO `json:"organization"`
}

// RecruiterLoginRequest is the recruiter password login.
type RecruiterLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RecruiterDTO is the recruiter's public view.
type RecruiterDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// RecruiterAuthResponse is returned from a successful recruiter login.
type RecruiterAuthResponse struct {
	Token     string       `json:"token"`
	Recruiter RecruiterDTO `json:"recruiter"`
}

// AdminLoginRequest is the administrator login.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminAuthResponse is returned from a successful admin login.
type AdminAuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
