// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/loadplan-service/config"
	"github.com/guttosm/loadplan-service/internal/circuitbreaker"
	"github.com/guttosm/loadplan-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	ContainersRepo           repository.ContainersRepositoryInterface
	HistoryRepo              repository.HistoryRepositoryInterface
	ContainersCircuitBreaker *circuitbreaker.CircuitBreaker
	HistoryCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories.
// Returns nil if the database is disabled or the connection fails; the service
// then runs with the built-in default catalog and without history.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(cfg.HistoryTTL.Hours() / 24)
	if err := db.SetHistoryTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set history TTL index (may already exist)")
	}

	containersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-containers",
	})

	historyCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-history",
	})

	containersRepo := repository.NewContainersRepository(db)
	containersRepoWithCB := repository.NewContainersRepositoryWithCircuitBreaker(containersRepo, containersCB)

	historyRepo := repository.NewHistoryRepository(db)
	historyRepoWithCB := repository.NewHistoryRepositoryWithCircuitBreaker(historyRepo, historyCB)

	return &DatabaseComponents{
		ContainersRepo:           containersRepoWithCB,
		HistoryRepo:              historyRepoWithCB,
		ContainersCircuitBreaker: containersCB,
		HistoryCircuitBreaker:    historyCB,
	}
}
