package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/loadplan-service/internal/domain/dto"
	"github.com/guttosm/loadplan-service/internal/repository"
	"github.com/guttosm/loadplan-service/internal/service"
)

// CatalogHandler provides HTTP handlers for container catalog routes.
type CatalogHandler struct {
	catalog service.ContainerCatalog
	history service.HistoryService
	// mainHandler is notified so its catalog cache is invalidated on updates.
	mainHandler *Handler
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.ContainerCatalog, history service.HistoryService, mainHandler *Handler) *CatalogHandler {
	return &CatalogHandler{
		catalog:     catalog,
		history:     history,
		mainHandler: mainHandler,
	}
}

// GetContainers handles GET /api/containers requests.
//
// @Summary      Get active container catalog
// @Description  Returns the currently active container catalog. Falls back to the built-in defaults when no catalog has been stored.
// @Tags         Containers
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ContainerCatalogResponse} "Active container catalog"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/containers [get]
func (h *CatalogHandler) GetContainers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	containers, config, err := h.catalog.Active(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, "failed to load container catalog", err)
		return
	}

	resp := dto.ContainerCatalogResponse{}
	for _, ct := range containers {
		resp.Containers = append(resp.Containers, dto.ContainerSpec{
			ID:             ct.ID,
			Name:           ct.Name,
			Length:         ct.Length,
			Width:          ct.Width,
			Height:         ct.Height,
			MaxWeight:      ct.MaxWeight,
			CostPerKm:      ct.CostPerKm,
			FuelEfficiency: ct.FuelEfficiency,
		})
	}
	if config != nil {
		resp.Version = config.Version
		resp.UpdatedAt = config.UpdatedAt
	}

	builder.SuccessOK(resp)
}

// UpdateContainers handles PUT /api/containers requests.
//
// @Summary      Replace the container catalog
// @Description  Installs a new active container catalog version. Previous versions are kept for history.
// @Tags         Containers
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateContainersRequest true "Replacement catalog"
// @Success      200 {object} dto.SuccessResponse "Installed catalog version"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/containers [put]
func (h *CatalogHandler) UpdateContainers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateContainersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	config, err := h.catalog.Replace(c.Request.Context(), req.ToModel(), req.CreatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "failed to update container catalog", err)
		return
	}

	if h.mainHandler != nil {
		h.mainHandler.InvalidateCatalogCache()
	}

	builder.SuccessOK(map[string]interface{}{
		"containers": config.Containers,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListCatalogVersions handles GET /api/containers/history requests.
//
// @Summary      List container catalog versions
// @Description  Returns stored catalog versions, newest first.
// @Tags         Containers
// @Accept       json
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Catalog versions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/containers/history [get]
func (h *CatalogHandler) ListCatalogVersions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	configs, err := h.catalog.List(c.Request.Context(), queryLimit(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, "failed to list catalog versions", err)
		return
	}

	builder.SuccessOK(configs)
}

// ListRecommendationHistory handles GET /api/history requests.
//
// @Summary      List recommendation history
// @Description  Returns compact records of past recommendation runs, newest first.
// @Tags         History
// @Accept       json
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Param        status query string false "Filter by plan status"
// @Param        request_id query string false "Filter by request id"
// @Success      200 {object} dto.SuccessResponse "Recommendation history"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/history [get]
func (h *CatalogHandler) ListRecommendationHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.history == nil {
		builder.Error(http.StatusServiceUnavailable, "history is not configured", nil)
		return
	}

	opts := repository.HistoryQueryOptions{
		RequestID: c.Query("request_id"),
		Status:    c.Query("status"),
		Limit:     queryLimit(c),
	}
	if sinceStr := c.Query("since"); sinceStr != "" {
		if since, err := time.Parse(time.RFC3339, sinceStr); err == nil {
			opts.Since = since
		}
	}

	records, err := h.history.Query(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "failed to list recommendation history", err)
		return
	}

	builder.SuccessOK(records)
}

func queryLimit(c *gin.Context) int {
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			return l
		}
	}
	return 0
}
