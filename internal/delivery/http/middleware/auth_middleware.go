package middleware

import (
	"net/http"
	"slices"
	"strings"

	"plantstore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID = "userID"
	keyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// Missing or invalid credentials are reported with 403, never 401.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.claimsFromRequest(c)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Authentication credentials were not provided."})
		}

		// Set user info on the context for handlers to use
		c.Set(keyUserID, claims.UserID)
		c.Set(keyRoles, claims.Roles)

		return next(c)
	}
}

// OptionalAuthenticate resolves the principal when a valid token is present
// but lets anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, ok := m.claimsFromRequest(c); ok {
			c.Set(keyUserID, claims.UserID)
			c.Set(keyRoles, claims.Roles)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(keyRoles).([]string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !slices.Contains(roles, requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) claimsFromRequest(c echo.Context) (*service.TokenClaims, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, false
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, false
	}

	return claims, true
}

// UserID extracts the authenticated user's ID set by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyUserID).(uuid.UUID)

	return id, ok
}
