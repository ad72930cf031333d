//go:build !integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/loadplan-service/internal/domain/dto"
	"github.com/guttosm/loadplan-service/internal/domain/model"
	"github.com/guttosm/loadplan-service/internal/repository"
	"github.com/guttosm/loadplan-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubRecommender captures its inputs and returns a canned plan.
type stubRecommender struct {
	plan      model.Plan
	err       error
	catalog   []model.Container
	overrides service.RequestOverrides
	calls     int
}

func (s *stubRecommender) Recommend(ctx context.Context, items []model.Item, catalog []model.Container, overrides service.RequestOverrides) (model.Plan, error) {
	s.calls++
	s.catalog = catalog
	s.overrides = overrides
	return s.plan, s.err
}

// stubCatalog implements service.ContainerCatalog in memory.
type stubCatalog struct {
	containers  []model.Container
	config      *repository.ContainerConfig
	activeErr   error
	replaceErr  error
	listErr     error
	activeCalls int
}

func (s *stubCatalog) Active(ctx context.Context) ([]model.Container, *repository.ContainerConfig, error) {
	s.activeCalls++
	return s.containers, s.config, s.activeErr
}

func (s *stubCatalog) Replace(ctx context.Context, containers []model.Container, createdBy string) (*repository.ContainerConfig, error) {
	if s.replaceErr != nil {
		return nil, s.replaceErr
	}
	return &repository.ContainerConfig{Containers: containers, Version: 2, CreatedBy: createdBy}, nil
}

func (s *stubCatalog) List(ctx context.Context, limit int) ([]repository.ContainerConfig, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return []repository.ContainerConfig{{Version: 2}, {Version: 1}}, nil
}

// stubHistory records Record invocations.
type stubHistory struct {
	recorded  int
	requestID string
	records   []*repository.RecommendationRecord
	err       error
}

func (s *stubHistory) Record(requestID string, itemCount, unitCount int, plan model.Plan, duration time.Duration) {
	s.recorded++
	s.requestID = requestID
}

func (s *stubHistory) Query(ctx context.Context, opts repository.HistoryQueryOptions) ([]*repository.RecommendationRecord, error) {
	return s.records, s.err
}

func (s *stubHistory) Count(ctx context.Context, opts repository.HistoryQueryOptions) (int64, error) {
	return int64(len(s.records)), s.err
}

func okPlan() model.Plan {
	return model.Plan{
		Status: model.StatusOK,
		Recommendations: []model.Recommendation{
			{Rank: 1, Container: model.Container{ID: "20ft-standard"}, Score: 0.9},
		},
	}
}

func recommendRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.POST("/api/recommend", h.Recommend)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validRecommendRequest() dto.RecommendRequest {
	return dto.RecommendRequest{
		Items: []dto.ItemSpec{
			{ID: "carton", Length: 50, Width: 40, Height: 30, Weight: 15, Quantity: 2},
		},
		Containers: []dto.ContainerSpec{
			{ID: "truck", Length: 400, Width: 200, Height: 200, MaxWeight: 4000},
		},
	}
}

func TestHandler_Recommend_Success(t *testing.T) {
	rec := &stubRecommender{plan: okPlan()}
	h := NewHandler(rec, &stubCatalog{})
	router := recommendRouter(h)

	w := postJSON(t, router, "/api/recommend", validRecommendRequest())

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.PlanResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Data.Status)
	require.Len(t, resp.Data.Recommendations, 1)
	assert.Equal(t, "20ft-standard", resp.Data.Recommendations[0].Container.ID)

	// Inline containers bypass the catalog service.
	require.Len(t, rec.catalog, 1)
	assert.Equal(t, "truck", rec.catalog[0].ID)
}

func TestHandler_Recommend_InvalidJSON(t *testing.T) {
	h := NewHandler(&stubRecommender{plan: okPlan()}, &stubCatalog{})
	router := recommendRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/recommend", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
}

func TestHandler_Recommend_ValidationError(t *testing.T) {
	h := NewHandler(&stubRecommender{plan: okPlan()}, &stubCatalog{})
	router := recommendRouter(h)

	body := validRecommendRequest()
	body.Items[0].Length = -1

	w := postJSON(t, router, "/api/recommend", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "items[0].length")
}

func TestHandler_Recommend_ScoringWeightsOverride(t *testing.T) {
	rec := &stubRecommender{plan: okPlan()}
	h := NewHandler(rec, &stubCatalog{})
	router := recommendRouter(h)

	body := validRecommendRequest()
	body.Options.ScoringWeights = &model.ScoringWeights{Volume: 0.7, Cost: 0.1, Weight: 0.1, Handling: 0.1}

	w := postJSON(t, router, "/api/recommend", body)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, rec.overrides.ScoringWeights)
	assert.Equal(t, 0.7, rec.overrides.ScoringWeights.Volume)
}

func TestHandler_Recommend_InvalidScoringWeightsRejected(t *testing.T) {
	h := NewHandler(&stubRecommender{plan: okPlan()}, &stubCatalog{})
	router := recommendRouter(h)

	body := validRecommendRequest()
	body.Options.ScoringWeights = &model.ScoringWeights{Volume: -1}

	w := postJSON(t, router, "/api/recommend", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "options.scoring_weights")
}

func TestHandler_Recommend_ServiceError(t *testing.T) {
	rec := &stubRecommender{err: errors.New(`unknown sorting strategy "bogus"`)}
	h := NewHandler(rec, &stubCatalog{})
	router := recommendRouter(h)

	w := postJSON(t, router, "/api/recommend", validRecommendRequest())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Recommend_UsesCatalogWhenNoInlineContainers(t *testing.T) {
	rec := &stubRecommender{plan: okPlan()}
	catalog := &stubCatalog{containers: []model.Container{
		{ID: "from-catalog", Length: 400, Width: 200, Height: 200, MaxWeight: 4000},
	}}
	h := NewHandler(rec, catalog)
	router := recommendRouter(h)

	body := validRecommendRequest()
	body.Containers = nil

	w := postJSON(t, router, "/api/recommend", body)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, rec.catalog, 1)
	assert.Equal(t, "from-catalog", rec.catalog[0].ID)
	assert.Equal(t, 1, catalog.activeCalls)
}

func TestHandler_Recommend_CatalogCached(t *testing.T) {
	rec := &stubRecommender{plan: okPlan()}
	catalog := &stubCatalog{containers: []model.Container{
		{ID: "from-catalog", Length: 400, Width: 200, Height: 200, MaxWeight: 4000},
	}}
	h := NewHandler(rec, catalog, WithCatalogCacheTTL(time.Minute))
	router := recommendRouter(h)

	body := validRecommendRequest()
	body.Containers = nil

	for i := 0; i < 3; i++ {
		w := postJSON(t, router, "/api/recommend", body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 1, catalog.activeCalls, "catalog must be served from cache")
}

func TestHandler_Recommend_CatalogErrorFallsBackToDefaults(t *testing.T) {
	rec := &stubRecommender{plan: okPlan()}
	catalog := &stubCatalog{activeErr: errors.New("connection refused")}
	h := NewHandler(rec, catalog)
	router := recommendRouter(h)

	body := validRecommendRequest()
	body.Containers = nil

	w := postJSON(t, router, "/api/recommend", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, len(service.DefaultContainers), len(rec.catalog))
}

func TestHandler_Recommend_RecordsHistory(t *testing.T) {
	rec := &stubRecommender{plan: okPlan()}
	history := &stubHistory{}
	h := NewHandler(rec, &stubCatalog{}, WithHistory(history))
	router := recommendRouter(h)

	w := postJSON(t, router, "/api/recommend", validRecommendRequest())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, history.recorded)
}

func TestHandler_InvalidateCatalogCache(t *testing.T) {
	rec := &stubRecommender{plan: okPlan()}
	catalog := &stubCatalog{containers: []model.Container{
		{ID: "from-catalog", Length: 400, Width: 200, Height: 200, MaxWeight: 4000},
	}}
	h := NewHandler(rec, catalog, WithCatalogCacheTTL(time.Minute))
	router := recommendRouter(h)

	body := validRecommendRequest()
	body.Containers = nil

	_ = postJSON(t, router, "/api/recommend", body)
	h.InvalidateCatalogCache()
	_ = postJSON(t, router, "/api/recommend", body)

	assert.Equal(t, 2, catalog.activeCalls)
}
