// ABOUTME: Gin middleware for request IDs and session authentication.
// ABOUTME: The session is attached to the request context, never stored globally.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/weekly/internal/auth"
	"github.com/harperreed/weekly/internal/logger"
	"github.com/oklog/ulid/v2"
)

const headerRequestID = "X-Request-ID"

// RequestID assigns each request a time-ordered ULID, honoring one supplied by the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" || len(id) > 64 {
			id = ulid.Make().String()
		}
		c.Set(logger.RequestIDKey, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// AuthRequired rejects requests without a valid bearer session token.
func AuthRequired(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abort(c, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		sess, err := sessions.Parse(parts[1])
		if err != nil {
			msg := "invalid session"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "session expired, please log in again"
			}
			abort(c, http.StatusUnauthorized, msg)
			return
		}

		c.Request = c.Request.WithContext(auth.WithSession(c.Request.Context(), sess))
		c.Next()
	}
}

// sessionFrom returns the request's session. AuthRequired guarantees one exists.
func sessionFrom(c *gin.Context) (auth.Session, bool) {
	return auth.FromContext(c.Request.Context())
}
