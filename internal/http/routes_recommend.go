package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/loadplan-service/internal/service"
)

// RecommendRoutes handles recommendation and catalog route registration.
type RecommendRoutes struct {
	handler        *Handler
	catalogHandler *CatalogHandler
}

// NewRecommendRoutes creates a new RecommendRoutes instance.
func NewRecommendRoutes(handler *Handler, catalog service.ContainerCatalog, history service.HistoryService) *RecommendRoutes {
	var catalogHandler *CatalogHandler
	if catalog != nil {
		catalogHandler = NewCatalogHandler(catalog, history, handler)
	}

	return &RecommendRoutes{
		handler:        handler,
		catalogHandler: catalogHandler,
	}
}

// Register registers the recommendation routes on the given group.
func (r *RecommendRoutes) Register(rg *gin.RouterGroup) {
	rg.POST("/recommend", r.handler.Recommend)

	if r.catalogHandler != nil {
		rg.GET("/containers", r.catalogHandler.GetContainers)
		rg.PUT("/containers", r.catalogHandler.UpdateContainers)
		rg.GET("/containers/history", r.catalogHandler.ListCatalogVersions)
		rg.GET("/history", r.catalogHandler.ListRecommendationHistory)
	}
}
