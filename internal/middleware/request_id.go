// Package middleware provides the HTTP middleware chain of the load plan
// service: request correlation, logging, recovery, timeouts, rate limiting,
// and response compression.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation ID between client and server.
const RequestIDHeader = "X-Request-ID"

// ContextKey is the type used for middleware context keys.
type ContextKey string

// RequestIDKey stores the correlation ID in the gin context.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with a correlation ID. A client-supplied
// X-Request-ID header is kept as-is, otherwise a fresh UUID is generated.
// The ID is echoed back on the response so clients can quote it when
// reporting a failed recommendation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(string(RequestIDKey), id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request's correlation ID, or an empty string when
// the RequestID middleware has not run.
func GetRequestID(c *gin.Context) string {
	v, _ := c.Get(string(RequestIDKey))
	id, _ := v.(string)
	return id
}
