package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/swiftvtu/vtu_api/internal/utils"
)

// SessionMiddleware validates the bearer session token minted by the login
// system and exposes the session id to handlers. Login itself happens
// outside this service.
type SessionMiddleware struct {
	secret string
}

// NewSessionMiddleware constructs a SessionMiddleware over the shared
// signing secret.
func NewSessionMiddleware(secret string) *SessionMiddleware {
	return &SessionMiddleware{secret: secret}
}

// Handle authenticates the request or aborts with 401.
func (m *SessionMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "UNAUTHORIZED", "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1], m.secret)
		if err != nil {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired session token")
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Next()
	}
}

// SessionID returns the authenticated session id set by Handle.
func SessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
