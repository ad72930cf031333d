package middleware

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressionRouter() *gin.Engine {
	router := gin.New()
	router.Use(Compression())
	router.GET("/api/containers", func(c *gin.Context) {
		containers := make([]gin.H, 50)
		for i := range containers {
			containers[i] = gin.H{"id": "20ft-standard", "length": 589, "width": 235, "height": 239}
		}
		c.JSON(http.StatusOK, gin.H{"containers": containers})
	})
	return router
}

func TestCompression_GzipClient(t *testing.T) {
	router := compressionRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/containers", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	// The payload must survive the round trip intact.
	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)

	var resp struct {
		Containers []map[string]any `json:"containers"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Len(t, resp.Containers, 50)
}

func TestCompression_PlainClient(t *testing.T) {
	router := compressionRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/containers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Contains(t, w.Body.String(), "20ft-standard")
}
