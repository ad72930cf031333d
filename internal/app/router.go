// Package app provides router configuration.
package app

import (
	"github.com/guttosm/loadplan-service/config"
	"github.com/guttosm/loadplan-service/internal/http"
	"github.com/guttosm/loadplan-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	// Catalog and history services run against the database when available,
	// or degrade to the default catalog and a no-op recorder.
	var catalogService service.ContainerCatalog
	var historyService service.HistoryService
	if dbComponents != nil {
		catalogService = service.NewContainerCatalogService(dbComponents.ContainersRepo)
		historyService = service.NewHistoryService(dbComponents.HistoryRepo)
	} else {
		catalogService = service.NewContainerCatalogService(nil)
	}

	handlerOpts := []http.HandlerOption{}
	if cfg.Cache.CatalogTTL > 0 {
		handlerOpts = append(handlerOpts, http.WithCatalogCacheTTL(cfg.Cache.CatalogTTL))
	}
	if historyService != nil {
		handlerOpts = append(handlerOpts, http.WithHistory(historyService))
	}

	handler := http.NewHandler(services.Recommender, catalogService, handlerOpts...)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.ContainersCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_containers", dbComponents.ContainersCircuitBreaker)
		}
		if dbComponents.HistoryCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_history", dbComponents.HistoryCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:       cfg.Server.RateLimit,
		RateWindow:      cfg.Server.RateWindow,
		RequestTimeout:  cfg.Server.RequestTimeout,
		CORSOrigins:     cfg.Server.CORSOrigins,
		SwaggerUser:     cfg.Server.SwaggerUser,
		SwaggerPass:     cfg.Server.SwaggerPass,
		CatalogService:  catalogService,
		HistoryService:  historyService,
		Recommender:     services.Recommender,
		CatalogCacheTTL: cfg.Cache.CatalogTTL,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
