package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"joblink_backend/internal/auth"
	"joblink_backend/internal/logger"
	"joblink_backend/internal/models"
	"joblink_backend/pkg/apperrors"
)

const (
	ContextIdentityID   = "identityID"
	ContextIdentityKind = "identityKind"
	ContextClaims       = "identityClaims"
)

// AuthMiddleware verifies the bearer token and stores the identity on
// the gin context. It also tags the request context with the subject ID
// so downstream logs carry it.
func AuthMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("authorization header missing or invalid"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.Verify(tokenStr)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.SubjectID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(ContextIdentityID, claims.SubjectID)
		c.Set(ContextIdentityKind, claims.Kind)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// RequireKinds admits only the listed identity kinds.
func RequireKinds(kinds ...models.IdentityKind) gin.HandlerFunc {
	kindSet := make(map[models.IdentityKind]bool, len(kinds))
	for _, k := range kinds {
		kindSet[k] = true
	}

	return func(c *gin.Context) {
		kindVal, exists := c.Get(ContextIdentityKind)
		if !exists {
			apperrors.HandleError(c, apperrors.NewForbiddenError("access denied"))
			c.Abort()
			return
		}

		kind, ok := kindVal.(models.IdentityKind)
		if !ok {
			kindStr, isString := kindVal.(string)
			if !isString {
				apperrors.HandleError(c, apperrors.NewForbiddenError("access denied"))
				c.Abort()
				return
			}
			kind = models.IdentityKind(kindStr)
		}

		if !kindSet[kind] {
			apperrors.HandleError(c, apperrors.NewForbiddenError("access denied"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetIdentityID extracts the authenticated subject ID from the context.
func GetIdentityID(c *gin.Context) string {
	idVal, exists := c.Get(ContextIdentityID)
	if !exists {
		return ""
	}
	id, ok := idVal.(string)
	if !ok {
		return ""
	}
	return id
}

// GetClaims extracts the full claim set, or nil when unauthenticated.
func GetClaims(c *gin.Context) *auth.Claims {
	claimsVal, exists := c.Get(ContextClaims)
	if !exists {
		return nil
	}
	claims, ok := claimsVal.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
