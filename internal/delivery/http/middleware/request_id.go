package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "RequestID"

// RequestID assigns a unique ID to each request for log correlation. An
// existing X-Request-ID header is honored; otherwise a new ID is generated.
// The ID is stored in the context and echoed in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestIDFromContext returns the request ID set by RequestID, or "".
func RequestIDFromContext(c *gin.Context) string {
	id, _ := c.Get(requestIDKey)
	idStr, _ := id.(string)
	return idStr
}
