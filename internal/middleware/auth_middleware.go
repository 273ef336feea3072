package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/pkg/apperrors"
	"github.com/halit/campushub/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "roleType"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// tokenFromRequest looks for a credential in the Authorization header first
// and falls back to the session cookie set at login.
func tokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if tokenString, err := auth.ExtractBearerToken(authHeader); err == nil {
			return tokenString
		}
		return authHeader
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid credential is
// present and lets the request through anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString != "" {
			if claims, err := m.jwtService.ValidateAndExtractClaims(tokenString); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextEmail, claims.Email)
				c.Set(ContextRole, claims.Role)
			}
		}
		c.Next()
	}
}

// RoleRequired middleware to check if user has required role. It must run
// after JWTAuth.
func (m *AuthMiddleware) RoleRequired(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}
		if roleStr, ok := role.(string); !ok || roleStr != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the gin context.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// IsAdmin reports whether the authenticated caller has the admin role.
func IsAdmin(c *gin.Context) bool {
	v, exists := c.Get(ContextRole)
	if !exists {
		return false
	}
	role, ok := v.(string)
	return ok && role == "admin"
}
