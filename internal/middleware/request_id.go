package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-bms/internal/shared/contextutil"
)

// RequestID tags the request with an X-Request-ID, honoring one the
// caller already sent, and threads it into the request context so
// downstream log lines carry it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Header("X-Request-ID", rid)
		c.Request = c.Request.WithContext(
			contextutil.WithRequestID(c.Request.Context(), rid))

		c.Next()
	}
}
