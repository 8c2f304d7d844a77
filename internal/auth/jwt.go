package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"joblink_backend/internal/models"
	"joblink_backend/pkg/apperrors"
)

// Claims is the closed, role-tagged identity claim carried by session
// tokens. Kind decides which optional fields are populated:
//
//	candidate       -> Email
//	client / vendor -> Email, OrganizationName
//	recruiter       -> Email, FirstName, LastName
//	admin           -> Username, Role
type Claims struct {
	SubjectID        string              `json:"sub_id"`
	Kind             models.IdentityKind `json:"kind"`
	Email            string              `json:"email,omitempty"`
	OrganizationName string              `json:"organization_name,omitempty"`
	Username         string              `json:"username,omitempty"`
	Role             string              `json:"role,omitempty"`
	FirstName        string              `json:"first_name,omitempty"`
	LastName         string              `json:"last_name,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies signed session tokens. Stateless: no
// server-side token storage, no refresh.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL reports the configured session lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue signs the claims with the configured TTL.
func (t *TokenIssuer) Issue(claims Claims) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(t.secret)
}

// Verify parses the token and returns its claims. Expired tokens map to
// ErrTokenExpired, everything else (bad signature, malformed, wrong
// algorithm) to ErrTokenInvalid.
func (t *TokenIssuer) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrTokenInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if apperrors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}

// CandidateClaims builds the claim set for a candidate session.
func CandidateClaims(c *models.Candidate) Claims {
	return Claims{
		SubjectID: c.ID,
		Kind:      models.IdentityKindCandidate,
		Email:     c.Email,
	}
}

// OrganizationClaims builds the claim set for a client/vendor session.
func OrganizationClaims(o *models.Organization) Claims {
	return Claims{
		SubjectID:        o.ID,
		Kind:             models.KindForOrganization(o.Kind),
		Email:            o.Email,
		OrganizationName: o.Name,
	}
}

// RecruiterClaims builds the claim set for a recruiter session.
func RecruiterClaims(r *models.Recruiter) Claims {
	return Claims{
		SubjectID: r.ID,
		Kind:      models.IdentityKindRecruiter,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// AdminClaims builds the claim set for an admin session.
func AdminClaims(a *models.Admin) Claims {
	return Claims{
		SubjectID: a.ID,
		Kind:      models.IdentityKindAdmin,
		Username:  a.Username,
		Role:      a.Role,
	}
}
