//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/guttosm/loadplan-service/internal/domain/model"
	"github.com/guttosm/loadplan-service/internal/repository"
	"github.com/guttosm/loadplan-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContainersRepo(t *testing.T) (*repository.ContainersRepository, func()) {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := testutil.GetSharedMongoDB(ctx)
	require.NoError(t, err)

	db, err := repository.NewMongoDB(mongoContainer.URI, testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)

	return repository.NewContainersRepository(db), func() {
		_ = db.Close(ctx)
	}
}

func TestContainersRepository_GetActive_Empty(t *testing.T) {
	repo, cleanup := setupContainersRepo(t)
	defer cleanup()

	config, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	assert.Nil(t, config)
}

func TestContainersRepository_ReplaceAndGetActive(t *testing.T) {
	repo, cleanup := setupContainersRepo(t)
	defer cleanup()
	ctx := context.Background()

	catalog := []model.Container{
		{ID: "20ft-standard", Length: 589, Width: 235, Height: 239, MaxWeight: 28200, CostPerKm: 1.2, FuelEfficiency: 3.5},
		{ID: "40ft-standard", Length: 1203, Width: 235, Height: 239, MaxWeight: 26700, CostPerKm: 1.8, FuelEfficiency: 3.0},
	}

	installed, err := repo.Replace(ctx, catalog, "ops")
	require.NoError(t, err)
	assert.Equal(t, 1, installed.Version)
	assert.True(t, installed.Active)
	assert.Equal(t, "ops", installed.CreatedBy)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, 1, active.Version)
	require.Len(t, active.Containers, 2)
	assert.Equal(t, "20ft-standard", active.Containers[0].ID)
}

func TestContainersRepository_Replace_IncrementsVersion(t *testing.T) {
	repo, cleanup := setupContainersRepo(t)
	defer cleanup()
	ctx := context.Background()

	first := []model.Container{{ID: "a", Length: 100, Width: 100, Height: 100, MaxWeight: 1000}}
	second := []model.Container{{ID: "b", Length: 200, Width: 200, Height: 200, MaxWeight: 2000}}

	_, err := repo.Replace(ctx, first, "ops")
	require.NoError(t, err)

	installed, err := repo.Replace(ctx, second, "ops")
	require.NoError(t, err)
	assert.Equal(t, 2, installed.Version)

	// Only the newest version is active.
	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, 2, active.Version)
	assert.Equal(t, "b", active.Containers[0].ID)
}

func TestContainersRepository_List(t *testing.T) {
	repo, cleanup := setupContainersRepo(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Replace(ctx, []model.Container{
			{ID: "a", Length: 100, Width: 100, Height: 100, MaxWeight: 1000},
		}, "ops")
		require.NoError(t, err)
	}

	configs, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, configs, 2)
	// Newest first.
	assert.Equal(t, 3, configs[0].Version)
	assert.Equal(t, 2, configs[1].Version)
}
