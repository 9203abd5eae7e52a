package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/pkg/auth"
)

// principalKey is the gin context key holding the authenticated principal
const principalKey = "principal"

// AuthMiddleware validates the session cookie and attaches the principal to
// the request context
type AuthMiddleware struct {
	sessionService *auth.SessionService
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(sessionService *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		sessionService: sessionService,
	}
}

// RequireAuth rejects requests without a valid session cookie
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.sessionService.CookieName())
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		claims, err := m.sessionService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		c.Set(principalKey, &models.Principal{
			UserID:   claims.UserID,
			Role:     models.Role(claims.Role),
			Email:    claims.Email,
			FullName: claims.FullName,
		})

		c.Next()
	}
}

// RequireRoles rejects authenticated requests whose role is not allowed.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Insufficient permissions"))
	}
}

// GetPrincipal returns the principal attached by RequireAuth, or nil
func GetPrincipal(c *gin.Context) *models.Principal {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil
	}

	principal, ok := value.(*models.Principal)
	if !ok {
		return nil
	}

	return principal
}
