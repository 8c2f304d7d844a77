package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"joblink_backend/internal/models"
)

// registerCustomRules installs the domain validation tags on the
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'otp5': one-time codes are exactly 5 ASCII digits
	mustRegister("otp5", validateOtp5)

	// 'is-org-kind': organization kind from statuses.go
	mustRegister("is-org-kind", validateOrgKind)

	// 'is-org-status': organization lifecycle status from statuses.go
	mustRegister("is-org-status", validateOrgStatus)

	// 'is-job-status': job lifecycle status
	mustRegister("is-job-status", validateJobStatus)
}

func validateOtp5(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are handled by 'required'
	}
	if len(value) != 5 {
		return false
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func validateOrgKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.OrganizationKind(value) {
	case models.OrganizationKindClient, models.OrganizationKindVendor:
		return true
	default:
		return false
	}
}

func validateOrgStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.OrganizationStatus(value) {
	case models.OrganizationStatusRegistered, models.OrganizationStatusActive, models.OrganizationStatusInactive:
		return true
	default:
		return false
	}
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusOpen, models.JobStatusClosed:
		return true
	default:
		return false
	}
}
