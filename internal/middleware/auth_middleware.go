package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devang/profmatch/internal/app/models"
	"github.com/devang/profmatch/internal/app/models/dto"
	"github.com/devang/profmatch/internal/pkg/auth"
)

// Context keys set by the auth gate for downstream handlers.
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware is the auth gate: it turns a session cookie into a verified
// (subject id, role) pair and enforces per-route role allow-lists.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth protects a route. An empty role list means any authenticated
// role. Single pass, no side effects beyond clearing the cookie when the
// token itself fails verification; a valid token with a disallowed role
// keeps its cookie.
func (m *AuthMiddleware) RequireAuth(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			// Stale or tampered credential: make sure the client stops
			// resending it.
			auth.ClearSessionCookie(c.Writer)
			m.logger.Debug().Err(err).Msg("Session token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
			return
		}

		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Forbidden"))
			return
		}

		c.Set(ContextUserIDKey, claims.Subject)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// extractToken reads the session cookie, falling back to a bearer header for
// non-browser clients.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// Identity returns the subject id and role the gate attached to the request.
func Identity(c *gin.Context) (string, models.Role) {
	userID, _ := c.Get(ContextUserIDKey)
	role, _ := c.Get(ContextRoleKey)

	id, _ := userID.(string)
	r, _ := role.(models.Role)
	return id, r
}
