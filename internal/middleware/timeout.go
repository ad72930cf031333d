package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/loadplan-service/internal/domain/dto"
)

// TimeoutConfig configures the per-request timeout middleware.
type TimeoutConfig struct {
	// Timeout bounds the total request processing time.
	Timeout time.Duration
	// ErrorMessage is returned to the client when the budget is exceeded.
	ErrorMessage string
}

// DefaultTimeoutConfig allows generous headroom over the optimizer's own
// internal time budget.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout aborts requests that exceed the configured budget with a 504 and
// cancels the request context so downstream work (packing sweeps, database
// calls) stops instead of running on for an absent client.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		// The handler chain runs in its own goroutine; the mutex arbitrates
		// between its completion and the deadline firing.
		var mu sync.Mutex
		var handlerDone bool
		done := make(chan struct{})

		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			mu.Lock()
			handlerDone = true
			mu.Unlock()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if handlerDone {
				return
			}
			if !c.Writer.Written() {
				resp := dto.NewError(dto.ErrCodeTimeout, cfg.ErrorMessage).
					WithRequestID(GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusGatewayTimeout, resp)
			}
		}
	}
}

// TimeoutWithDuration returns the timeout middleware with the default error
// message and the given budget.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
