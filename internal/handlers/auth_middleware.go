package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mr-pathfinder/roadmap-service/internal/auth"
	"github.com/mr-pathfinder/roadmap-service/internal/models"
)

const tokenCookieName = "token"

// JWTAuthMiddleware authenticates requests using the bearer token or the
// session cookie set at login.
type JWTAuthMiddleware struct {
	tokens *auth.TokenService
}

func NewJWTAuthMiddleware(tokens *auth.TokenService) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{tokens: tokens}
}

// Authenticate validates the token and stores user_id and user_role in the
// request context.
func (m *JWTAuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Authentication required",
			})
			return
		}

		userID, role, err := m.tokens.Validate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

// RequireRole restricts a route to the given roles. It must run after
// Authenticate.
func (m *JWTAuthMiddleware) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("user_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Authentication required",
			})
			return
		}

		role := models.UserRole(roleValue.(string))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
			Message: "Forbidden - insufficient permissions",
		})
	}
}

// extractToken prefers the Authorization header and falls back to the
// session cookie used by the web frontend.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(tokenCookieName); err == nil {
		return cookie
	}
	return ""
}
