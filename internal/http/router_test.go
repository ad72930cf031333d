//go:build !integration

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	handler := NewHandler(&stubRecommender{plan: okPlan()}, &stubCatalog{})
	router := NewRouter(handler, NewHealthHandler(), DefaultRouterConfig())

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "liveness", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "readiness", method: http.MethodGet, path: "/readyz", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestNewRouter_RegistersCatalogRoutesWithCatalogService(t *testing.T) {
	catalog := &stubCatalog{}
	handler := NewHandler(&stubRecommender{plan: okPlan()}, catalog)

	cfg := DefaultRouterConfig()
	cfg.CatalogService = catalog
	router := NewRouter(handler, NewHealthHandler(), cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/containers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_OmitsCatalogRoutesWithoutCatalogService(t *testing.T) {
	handler := NewHandler(&stubRecommender{plan: okPlan()}, &stubCatalog{})
	router := NewRouter(handler, NewHealthHandler(), DefaultRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/containers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
