package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dsev/locknlock-bff/internal/errors"
)

// TokenKey is the gin context key the session token is stored under.
const TokenKey = "session_token"

// SessionMiddleware lifts the auth cookie into the request context. The
// token is never decoded here, the backend verifies it on every forwarded
// call.
type SessionMiddleware struct {
	cookieName string
}

func NewSessionMiddleware(cookieName string) *SessionMiddleware {
	return &SessionMiddleware{cookieName: cookieName}
}

// resolveToken reads the auth cookie, falling back to a Bearer header for
// non-browser clients.
func (m *SessionMiddleware) resolveToken(c *gin.Context) string {
	if token, err := c.Cookie(m.cookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return ""
}

// RequireSession rejects requests that carry no session token.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.resolveToken(c)
		if token == "" {
			log := GetLoggerFromContext(c)
			log.Warn("Missing session token", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(TokenKey, token)
		c.Next()
	}
}

// OptionalSession stores the token when present and continues as guest
// otherwise.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := m.resolveToken(c); token != "" {
			c.Set(TokenKey, token)
		}
		c.Next()
	}
}

// GetToken extracts the session token from context. An empty string means
// the caller is a guest.
func GetToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}
