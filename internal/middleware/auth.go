package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nmaupu/cocktails/internal/auth"
)

// RequireSession gates admin surfaces behind the session cookie.
// API calls get a 401 JSON body; page requests redirect to the login
// form instead.
func RequireSession(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err == nil && sessions.Validate(token) == nil {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}
