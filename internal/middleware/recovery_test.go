package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/loadplan-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery_PanicBecomesInternalError(t *testing.T) {
	tests := []struct {
		name  string
		panic any
	}{
		{name: "string panic", panic: "placement state corrupted"},
		{name: "error panic", panic: errors.New("anchor index out of range")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.POST("/api/recommend", func(c *gin.Context) {
				panic(tt.panic)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/recommend", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusInternalServerError, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeInternal, resp.Error)

			// The panic detail stays in the logs.
			assert.NotContains(t, w.Body.String(), "placement state")
			assert.NotContains(t, w.Body.String(), "anchor index")
		})
	}
}

func TestRecovery_HealthyHandlerUntouched(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
