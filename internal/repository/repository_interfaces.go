// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// ContainersRepositoryInterface defines the interface for container catalog operations.
type ContainersRepositoryInterface interface {
	GetActive(ctx context.Context) (*ContainerConfig, error)
	Replace(ctx context.Context, containers []model.Container, createdBy string) (*ContainerConfig, error)
	List(ctx context.Context, limit int) ([]ContainerConfig, error)
}

// HistoryRepositoryInterface defines the interface for recommendation history operations.
type HistoryRepositoryInterface interface {
	Create(ctx context.Context, record *RecommendationRecord) error
	Query(ctx context.Context, opts HistoryQueryOptions) ([]*RecommendationRecord, error)
	Count(ctx context.Context, opts HistoryQueryOptions) (int64, error)
}
