// Package app provides service initialization.
package app

import (
	"github.com/guttosm/loadplan-service/config"
	"github.com/guttosm/loadplan-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Recommender service.Recommender
}

// InitializeServices initializes the recommendation engine.
func InitializeServices(cfg config.OptimizerConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.Workers > 0 {
		opts = append(opts, service.WithWorkers(cfg.Workers))
	}
	if cfg.TimeBudget > 0 {
		opts = append(opts, service.WithTimeBudget(cfg.TimeBudget))
	}
	if cfg.ScoringWeights.Valid() {
		opts = append(opts, service.WithScoringWeights(cfg.ScoringWeights))
	}
	if cfg.MaxAlternatives >= 0 {
		opts = append(opts, service.WithMaxAlternatives(cfg.MaxAlternatives))
	}
	if cfg.MaxFallbackContainers >= 1 {
		opts = append(opts, service.WithMaxFallbackContainers(cfg.MaxFallbackContainers))
	}

	recommender := service.NewRecommenderService(opts...)

	return &ServiceComponents{
		Recommender: recommender,
	}
}
