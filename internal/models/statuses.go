package models

type OrganizationStatus string
type OrganizationKind string
type IdentityKind string
type JobStatus string

const (
	// Organization lifecycle: registered until an administrator activates
	// the account; only active organizations may log in.
	OrganizationStatusRegistered OrganizationStatus = "registered"
	OrganizationStatusActive     OrganizationStatus = "active"
	OrganizationStatusInactive   OrganizationStatus = "inactive"

	OrganizationKindClient OrganizationKind = "client"
	OrganizationKindVendor OrganizationKind = "vendor"

	// Identity kinds carried in session tokens.
	IdentityKindCandidate IdentityKind = "candidate"
	IdentityKindClient    IdentityKind = "client"
	IdentityKindVendor    IdentityKind = "vendor"
	IdentityKindRecruiter IdentityKind = "recruiter"
	IdentityKindAdmin     IdentityKind = "admin"

	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// KindForOrganization maps an organization kind onto its token identity kind.
func KindForOrganization(kind OrganizationKind) IdentityKind {
	if kind == OrganizationKindVendor {
		return IdentityKindVendor
	}
	return IdentityKindClient
}
