package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/loadplan-service/internal/domain/dto"
	"github.com/guttosm/loadplan-service/internal/domain/model"
	"github.com/guttosm/loadplan-service/internal/metrics"
	"github.com/guttosm/loadplan-service/internal/middleware"
	"github.com/guttosm/loadplan-service/internal/service"
)

// catalogCache provides thread-safe caching of the active container catalog.
type catalogCache struct {
	containers atomic.Value // holds []model.Container
	expiresAt  atomic.Value // holds time.Time
	mu         sync.Mutex
	ttl        time.Duration
}

// newCatalogCache creates a new catalog cache with the given TTL.
func newCatalogCache(ttl time.Duration) *catalogCache {
	c := &catalogCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached catalog if valid, or nil if cache is expired/empty.
func (c *catalogCache) get() []model.Container {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if containers := c.containers.Load(); containers != nil {
				if cs, ok := containers.([]model.Container); ok {
					metrics.RecordCacheOperation("get", "hit")
					return cs
				}
			}
		}
	}
	metrics.RecordCacheOperation("get", "miss")
	return nil
}

// set stores the catalog in the cache with TTL.
func (c *catalogCache) set(containers []model.Container) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.containers.Store(containers)
	c.expiresAt.Store(time.Now().Add(c.ttl))
	metrics.RecordCacheOperation("set", "success")
}

// invalidate clears the cache.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
	metrics.RecordCacheOperation("invalidate", "success")
}

// Handler provides HTTP handlers for recommendation routes.
type Handler struct {
	recommender  service.Recommender
	catalog      service.ContainerCatalog
	history      service.HistoryService
	catalogCache *catalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets the TTL for container catalog caching.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newCatalogCache(ttl)
	}
}

// WithHistory wires the recommendation history recorder.
func WithHistory(history service.HistoryService) HandlerOption {
	return func(h *Handler) {
		h.history = history
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(recommender service.Recommender, catalog service.ContainerCatalog, opts ...HandlerOption) *Handler {
	h := &Handler{
		recommender:  recommender,
		catalog:      catalog,
		catalogCache: newCatalogCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getCatalog retrieves the active catalog from cache or the catalog service.
func (h *Handler) getCatalog(ctx context.Context) []model.Container {
	if containers := h.catalogCache.get(); containers != nil {
		return containers
	}

	if h.catalog == nil {
		return service.DefaultContainers
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	containers, _, err := h.catalog.Active(ctx)
	if err != nil || len(containers) == 0 {
		return service.DefaultContainers
	}

	h.catalogCache.set(containers)
	return containers
}

// InvalidateCatalogCache invalidates the catalog cache.
// Call this when the container catalog is updated.
func (h *Handler) InvalidateCatalogCache() {
	h.catalogCache.invalidate()
}

// Recommend handles POST /api/recommend requests.
//
// @Summary      Recommend containers for a cargo manifest
// @Description  Runs every sorting strategy against every placement algorithm for each container candidate, scores the outcomes, and returns a ranked recommendation plan. Containers may be supplied inline; otherwise the active server catalog is used. Partial fits and infeasible items are reported inside the plan, not as errors.
// @Tags         Recommendations
// @Accept       json
// @Produce      json
// @Param        request body dto.RecommendRequest true "Cargo manifest and options"
// @Success      200 {object} dto.SuccessResponse{data=dto.PlanResponse} "Recommendation plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/recommend [post]
func (h *Handler) Recommend(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordRecommendation(0, "validation_error")
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	items, containers := req.ToModel()
	if len(containers) == 0 {
		containers = h.getCatalog(c.Request.Context())
	}

	overrides := service.RequestOverrides{
		Strategies:      req.Options.Strategies,
		Algorithms:      req.Options.Algorithms,
		MaxAlternatives: req.Options.MaxAlternatives,
		ScoringWeights:  req.Options.ScoringWeights,
	}
	if req.Options.TimeBudgetMs > 0 {
		overrides.TimeBudget = time.Duration(req.Options.TimeBudgetMs) * time.Millisecond
	}

	start := time.Now()
	plan, err := h.recommender.Recommend(c.Request.Context(), items, containers, overrides)
	if err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}
	duration := time.Since(start)

	if h.history != nil {
		unitCount := 0
		for _, it := range items {
			unitCount += it.Quantity
		}
		h.history.Record(middleware.GetRequestID(c), len(items), unitCount, plan, duration)
	}

	builder.SuccessOK(dto.NewPlanResponse(plan))
}
