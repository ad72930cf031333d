package service

import (
	"context"
	"errors"

	"github.com/guttosm/loadplan-service/internal/domain/model"
	"github.com/guttosm/loadplan-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// DefaultContainers is the built-in catalog used when no stored catalog
// exists or the database is unavailable. Interior dimensions in centimeters,
// weights in kilograms.
var DefaultContainers = []model.Container{
	{ID: "20ft-standard", Name: "20ft Standard", Length: 589, Width: 235, Height: 239, MaxWeight: 28200, CostPerKm: 1.2, FuelEfficiency: 3.5},
	{ID: "40ft-standard", Name: "40ft Standard", Length: 1203, Width: 235, Height: 239, MaxWeight: 26700, CostPerKm: 1.8, FuelEfficiency: 3.0},
	{ID: "40ft-high-cube", Name: "40ft High Cube", Length: 1203, Width: 235, Height: 269, MaxWeight: 26500, CostPerKm: 1.9, FuelEfficiency: 2.9},
	{ID: "45ft-high-cube", Name: "45ft High Cube", Length: 1355, Width: 235, Height: 269, MaxWeight: 26000, CostPerKm: 2.1, FuelEfficiency: 2.8},
}

// ContainerCatalog provides container catalog operations.
type ContainerCatalog interface {
	// Active returns the catalog to use for recommendations, falling back to
	// the built-in defaults when no stored catalog is available.
	Active(ctx context.Context) ([]model.Container, *repository.ContainerConfig, error)
	// Replace installs a new catalog version.
	Replace(ctx context.Context, containers []model.Container, createdBy string) (*repository.ContainerConfig, error)
	// List returns stored catalog versions, newest first.
	List(ctx context.Context, limit int) ([]repository.ContainerConfig, error)
}

// ContainerCatalogService implements ContainerCatalog over the repository.
type ContainerCatalogService struct {
	repo repository.ContainersRepositoryInterface
}

// NewContainerCatalogService creates a new catalog service. A nil repository
// yields a service that always serves the default catalog.
func NewContainerCatalogService(repo repository.ContainersRepositoryInterface) *ContainerCatalogService {
	return &ContainerCatalogService{repo: repo}
}

func defaultCatalog() []model.Container {
	out := make([]model.Container, len(DefaultContainers))
	copy(out, DefaultContainers)
	return out
}

// Active returns the stored active catalog, or the defaults when none exists
// or the store cannot be reached. Store failures degrade to the defaults
// rather than failing the recommendation.
func (s *ContainerCatalogService) Active(ctx context.Context) ([]model.Container, *repository.ContainerConfig, error) {
	if s.repo == nil {
		return defaultCatalog(), nil, nil
	}
	config, err := s.repo.GetActive(ctx)
	if err != nil || config == nil || len(config.Containers) == 0 {
		return defaultCatalog(), nil, err
	}
	return config.Containers, config, nil
}

// Replace installs a new catalog version.
func (s *ContainerCatalogService) Replace(ctx context.Context, containers []model.Container, createdBy string) (*repository.ContainerConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Replace(ctx, containers, createdBy)
}

// List returns stored catalog versions, newest first.
func (s *ContainerCatalogService) List(ctx context.Context, limit int) ([]repository.ContainerConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}
