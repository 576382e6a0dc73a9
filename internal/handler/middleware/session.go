package middleware

import (
	"net/http"
	"strings"

	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/pkg/cookie"
	"ecocollect/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const ctxUserIDKey = "user_id"

type SessionMiddleware struct {
	session *shared.SessionState
	clock   clock.Clock
}

func NewSessionMiddleware(session *shared.SessionState, clk clock.Clock) *SessionMiddleware {
	return &SessionMiddleware{session: session, clock: clk}
}

// RequireSession accepts the session cookie or a Bearer header, and only
// lets through the token of the active session.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}

		current, ok := m.session.Token()
		if !ok || current != token {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid session token",
			})
			c.Abort()
			return
		}

		if m.session.Expired(m.clock.Now()) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired",
			})
			c.Abort()
			return
		}

		if user, ok := m.session.User(); ok {
			c.Set(ctxUserIDKey, user.ID)
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}
