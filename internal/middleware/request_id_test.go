package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestIDRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/api/recommend", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	return router
}

func TestRequestID_GeneratesUUIDWhenAbsent(t *testing.T) {
	router := requestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/recommend", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	id := w.Body.String()
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated ID must be a valid UUID")
	assert.Equal(t, id, w.Header().Get(RequestIDHeader), "ID must be echoed on the response")
}

func TestRequestID_KeepsClientSuppliedID(t *testing.T) {
	router := requestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/recommend", nil)
	req.Header.Set(RequestIDHeader, "loadplan-e2e-042")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "loadplan-e2e-042", w.Body.String())
	assert.Equal(t, "loadplan-e2e-042", w.Header().Get(RequestIDHeader))
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*gin.Context)
		want  string
	}{
		{
			name:  "empty when middleware has not run",
			setup: func(c *gin.Context) {},
			want:  "",
		},
		{
			name: "returns stored ID",
			setup: func(c *gin.Context) {
				c.Set(string(RequestIDKey), "req-7c1")
			},
			want: "req-7c1",
		},
		{
			name: "empty on unexpected value type",
			setup: func(c *gin.Context) {
				c.Set(string(RequestIDKey), 42)
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/recommend", nil)
			tt.setup(c)

			assert.Equal(t, tt.want, GetRequestID(c))
		})
	}
}
