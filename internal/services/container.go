package services

import "joblink_backend/internal/email"

// ServiceContainer bundles every service for dependency injection.
type ServiceContainer struct {
	CandidateAuthService    CandidateAuthService
	OrganizationAuthService OrganizationAuthService
	RecruiterAuthService    RecruiterAuthService
	AdminService            AdminService
	JobService              JobService
	ApplicationService      ApplicationService
	CandidateService        CandidateService
	EmailService            email.Provider
}
