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

func TestErrorHandler_ContextErrorBecomesInternalError(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.POST("/api/recommend", func(c *gin.Context) {
		_ = c.Error(errors.New("catalog lookup failed"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/recommend", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInternal, resp.Error)
	assert.NotEmpty(t, resp.RequestID)
	assert.NotContains(t, resp.Message, "catalog lookup", "internal detail must not leak")
}

func TestErrorHandler_CommittedResponseLeftAlone(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.POST("/api/recommend", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "nothing fits"})
		_ = c.Error(errors.New("all containers rejected"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/recommend", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "nothing fits")
}

func TestErrorHandler_NoErrorsPassThrough(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
