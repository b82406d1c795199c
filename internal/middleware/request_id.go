package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskkeep/pkg/log"
)

// RequestIDHeader carries the per-request id back to the client.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns every request a uuid, stores it in the request context
// for pkg/log to pick up and echoes it in the response header. An id
// supplied by the client is kept.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
