package dto

import "joblink_backend/internal/models"

// UpdateOrganizationStatusRequest moves an account between statuses.
type UpdateOrganizationStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"is-org-status"`
}

// SetOrganizationPasswordRequest lets an administrator overwrite an
// organization's password out of band.
type SetOrganizationPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// CreateRecruiterRequest provisions a recruiter account.
type CreateRecruiterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// OrganizationListQuery filters the admin organization listing.
type OrganizationListQuery struct {
	Status   models.OrganizationStatus `form:"status"`
	Kind     models.OrganizationKind   `form:"kind"`
	Search   string                    `form:"search"`
	Page     int                       `form:"page,default=1"`
	PageSize int                       `form:"page_size,default=20"`
}

// OrganizationListResponse is a paginated admin listing.
type OrganizationListResponse struct {
	Organizations []OrganizationDTO `json:"organizations"`
	Total         int64             `json:"total"`
	Page          int               `json:"page"`
	PageSize      int               `json:"page_size"`
}
