package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository "no rows" error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth flows ---

// ErrIdentityNotFound - no identity exists for the supplied email.
var ErrIdentityNotFound = New(
	CodeNotFound,
	"auth",
	"No account found for this email",
	http.StatusNotFound,
)

// ErrOtpExpired - the one-time code is past its TTL; the caller must
// request a fresh one.
var ErrOtpExpired = New(
	CodeOtpExpired,
	"auth",
	"Verification code has expired, please request a new one",
	http.StatusUnauthorized,
)

// ErrInvalidOtp - the supplied code does not match the stored one.
var ErrInvalidOtp = New(
	CodeInvalidOtp,
	"auth",
	"Invalid verification code",
	http.StatusUnauthorized,
)

// ErrBadCredentials - email/password mismatch.
var ErrBadCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrAccountNotActive - the organization registered but was never
// activated by an administrator.
var ErrAccountNotActive = New(
	CodeForbidden,
	"auth",
	"Account is not activated yet",
	http.StatusForbidden,
)

// ErrAccountDeactivated - the account was deactivated by an administrator.
var ErrAccountDeactivated = New(
	CodeForbidden,
	"auth",
	"Account has been deactivated",
	http.StatusForbidden,
)

// ErrEmailAlreadyExists - registration against an email already in use.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrWeakPassword - password fails the minimum strength rule.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// --- Tokens ---

// ErrTokenInvalid - signature mismatch or malformed token.
var ErrTokenInvalid = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusForbidden,
)

// ErrTokenExpired - the embedded expiry has passed.
var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusForbidden,
)

// --- Application ledger ---

// ErrJobNotFound - referential precondition failure on the job side.
var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// ErrCandidateNotFound - referential precondition failure on the
// candidate side.
var ErrCandidateNotFound = New(
	CodeNotFound,
	"candidate",
	"Candidate not found",
	http.StatusNotFound,
)

// ErrAlreadyApplied - a second Apply on the same (candidate, job) pair.
var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// ErrNotSaved - Unsave on a pair that is not currently saved.
var ErrNotSaved = New(
	CodeInvalidOperation,
	"application",
	"Job is not in your saved list",
	http.StatusConflict,
)

// ErrOrganizationNotFound - no organization for the supplied id/email.
var ErrOrganizationNotFound = New(
	CodeNotFound,
	"organization",
	"Organization not found",
	http.StatusNotFound,
)

// ErrJobNotOwned - an organization touching a job it does not own.
var ErrJobNotOwned = New(
	CodeForbidden,
	"job",
	"Job belongs to another organization",
	http.StatusForbidden,
)
