package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the anonymous cart session id.
const SessionCookie = "streamix_session"

// EnsureSession resolves the session id from the X-Session-ID header or the
// session cookie, minting a new id (and setting the cookie) when neither is
// present. The id is stored in the request context as "session_id".
func EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader("X-Session-ID")
		if sid == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				sid = cookie
			}
		}
		if sid == "" {
			sid = uuid.NewString()
			c.SetCookie(SessionCookie, sid, 0, "/", "", false, true)
		}
		c.Set("session_id", sid)
		c.Next()
	}
}
