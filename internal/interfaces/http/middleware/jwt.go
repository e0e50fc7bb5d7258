package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/infrastructure/auth"
	"github.com/warungin/backend/internal/interfaces/http/dto"
)

const (
	// ClaimsContextKey is the gin context key for validated JWT claims
	ClaimsContextKey = "jwt_claims"
	// AuthorizationHeader is the header carrying the bearer token
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the expected scheme prefix in the Authorization header
	BearerPrefix = "Bearer "
)

// JWTAuth validates the bearer token and stores its claims in the context.
// Requests without a valid token are rejected with 401.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthorizationHeader)
		if header == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, "Authorization header must use the Bearer scheme")
			return
		}

		claims, err := jwtService.Validate(strings.TrimPrefix(header, BearerPrefix))
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequireRoles allows the request through only when the caller's role is one
// of the given roles. Must run after JWTAuth.
func RequireRoles(roles ...shared.Role) gin.HandlerFunc {
	allowed := make(map[shared.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, "Authentication required")
			return
		}
		if _, ok := allowed[claims.GetRole()]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeForbidden, "Role not allowed for this operation", GetRequestID(c)))
			return
		}
		c.Next()
	}
}

// GetClaims returns the validated claims, or nil when the request is
// unauthenticated
func GetClaims(c *gin.Context) *auth.Claims {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// GetUserID returns the caller's user ID from the validated claims
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	claims := GetClaims(c)
	if claims == nil {
		return uuid.Nil, false
	}
	id, err := claims.GetUserUUID()
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetRole returns the caller's role, or the empty role when unauthenticated
func GetRole(c *gin.Context) shared.Role {
	claims := GetClaims(c)
	if claims == nil {
		return ""
	}
	return claims.GetRole()
}

// GetWarungID returns the outlet binding from the claims. It is nil for
// roles that are not tied to a warung.
func GetWarungID(c *gin.Context) *uuid.UUID {
	claims := GetClaims(c)
	if claims == nil {
		return nil
	}
	id, err := claims.GetWarungUUID()
	if err != nil {
		return nil
	}
	return id
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeUnauthorized, message, GetRequestID(c)))
}
