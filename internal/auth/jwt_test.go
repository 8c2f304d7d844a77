package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joblink_backend/internal/models"
	"joblink_backend/pkg/apperrors"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue(Claims{
		SubjectID: "cand-1",
		Kind:      models.IdentityKindCandidate,
		Email:     "user@example.com",
	})
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "cand-1", claims.SubjectID)
	assert.Equal(t, models.IdentityKindCandidate, claims.Kind)
	assert.Equal(t, "user@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	issuer.ttl = -time.Minute

	token, err := issuer.Issue(Claims{SubjectID: "cand-1", Kind: models.IdentityKindCandidate})
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	other := NewTokenIssuer("different-secret", time.Hour)

	token, err := issuer.Issue(Claims{SubjectID: "cand-1", Kind: models.IdentityKindCandidate})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	_, err := issuer.Verify("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)
	assert.Equal(t, 24*time.Hour, issuer.TTL())
}

func TestClaimsBuilders(t *testing.T) {
	org := &models.Organization{Name: "Acme", Kind: models.OrganizationKindVendor, Email: "acme@example.com"}
	org.ID = "org-1"
	claims := OrganizationClaims(org)
	assert.Equal(t, models.IdentityKindVendor, claims.Kind)
	assert.Equal(t, "Acme", claims.OrganizationName)

	admin := &models.Admin{Username: "root", Role: "admin"}
	admin.ID = "admin-1"
	claims = AdminClaims(admin)
	assert.Equal(t, models.IdentityKindAdmin, claims.Kind)
	assert.Equal(t, "root", claims.Username)
	assert.Empty(t, claims.Email)

	rec := &models.Recruiter{Email: "rec@example.com", FirstName: "Jo", LastName: "Doe"}
	rec.ID = "rec-1"
	claims = RecruiterClaims(rec)
	assert.Equal(t, models.IdentityKindRecruiter, claims.Kind)
	assert.Equal(t, "Jo", claims.FirstName)
}

func TestGenerateOtp_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateOtp()
		require.NoError(t, err)
		require.Len(t, code, 5)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9')
		}
		assert.NotEqual(t, '0', rune(code[0]), "codes never have a leading zero")
		seen[code] = true
	}
	// 200 draws from 90000 values should not all collide.
	assert.Greater(t, len(seen), 100)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("strongpass123")
	require.NoError(t, err)
	assert.NotEqual(t, "strongpass123", hash)

	assert.True(t, CheckPasswordHash("strongpass123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough"))
}
