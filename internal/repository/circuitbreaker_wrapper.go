// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/loadplan-service/internal/circuitbreaker"
	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// ContainersRepositoryWithCircuitBreaker wraps ContainersRepository with circuit breaker protection.
type ContainersRepositoryWithCircuitBreaker struct {
	repo           *ContainersRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewContainersRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewContainersRepositoryWithCircuitBreaker(repo *ContainersRepository, cb *circuitbreaker.CircuitBreaker) *ContainersRepositoryWithCircuitBreaker {
	return &ContainersRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active container catalog with circuit breaker protection.
// When the circuit is open, (nil, nil) is returned so callers fall back to the
// built-in default catalog.
func (r *ContainersRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*ContainerConfig, error) {
	var result *ContainerConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Replace installs a new catalog version with circuit breaker protection.
func (r *ContainersRepositoryWithCircuitBreaker) Replace(ctx context.Context, containers []model.Container, createdBy string) (*ContainerConfig, error) {
	var result *ContainerConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Replace(ctx, containers, createdBy)
		return cbErr
	})
	return result, err
}

// List returns catalog versions with circuit breaker protection.
func (r *ContainersRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]ContainerConfig, error) {
	var result []ContainerConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ContainersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// HistoryRepositoryWithCircuitBreaker wraps HistoryRepository with circuit breaker protection.
type HistoryRepositoryWithCircuitBreaker struct {
	repo           *HistoryRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewHistoryRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewHistoryRepositoryWithCircuitBreaker(repo *HistoryRepository, cb *circuitbreaker.CircuitBreaker) *HistoryRepositoryWithCircuitBreaker {
	return &HistoryRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a recommendation record with circuit breaker protection.
// When the circuit is open the write is silently dropped; history is
// non-critical.
func (r *HistoryRepositoryWithCircuitBreaker) Create(ctx context.Context, record *RecommendationRecord) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, record)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves history records with circuit breaker protection.
func (r *HistoryRepositoryWithCircuitBreaker) Query(ctx context.Context, opts HistoryQueryOptions) ([]*RecommendationRecord, error) {
	var result []*RecommendationRecord
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of history records with circuit breaker protection.
func (r *HistoryRepositoryWithCircuitBreaker) Count(ctx context.Context, opts HistoryQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *HistoryRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
