//go:build !integration

package packing

import (
	"testing"

	"github.com/guttosm/loadplan-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategies(t *testing.T) {
	strategies := Strategies()
	require.Len(t, strategies, 5)

	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.Name()
	}
	assert.Equal(t, []string{
		StrategyVolumeDesc,
		StrategyWeightDesc,
		StrategyLongestDimDesc,
		StrategyFootprintDesc,
		StrategyDensityDesc,
	}, names)
}

func TestStrategyByName(t *testing.T) {
	s, err := StrategyByName(StrategyVolumeDesc)
	require.NoError(t, err)
	assert.Equal(t, StrategyVolumeDesc, s.Name())

	_, err = StrategyByName("no-such-strategy")
	assert.Error(t, err)
}

func TestStrategiesByName(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "empty returns all",
			input:     nil,
			wantCount: 5,
		},
		{
			name:      "subset resolves in order",
			input:     []string{StrategyWeightDesc, StrategyVolumeDesc},
			wantCount: 2,
		},
		{
			name:    "unknown name fails",
			input:   []string{StrategyVolumeDesc, "bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StrategiesByName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)
		})
	}
}

func TestSortingStrategy_Order(t *testing.T) {
	units := model.ExpandUnits([]model.Item{
		{ID: "small", Length: 10, Width: 10, Height: 10, Weight: 100, Quantity: 1},
		{ID: "big", Length: 50, Width: 40, Height: 30, Weight: 20, Quantity: 1},
		{ID: "long", Length: 80, Width: 5, Height: 5, Weight: 5, Quantity: 1},
		{ID: "flat", Length: 45, Width: 45, Height: 2, Weight: 10, Quantity: 1},
	})

	tests := []struct {
		name      string
		strategy  string
		wantFirst string
	}{
		{
			name:      "volume-desc puts largest volume first",
			strategy:  StrategyVolumeDesc,
			wantFirst: "big",
		},
		{
			name:      "weight-desc puts heaviest first",
			strategy:  StrategyWeightDesc,
			wantFirst: "small",
		},
		{
			name:      "longest-dim-desc puts longest first",
			strategy:  StrategyLongestDimDesc,
			wantFirst: "long",
		},
		{
			name:      "footprint-desc puts widest base first",
			strategy:  StrategyFootprintDesc,
			wantFirst: "flat",
		},
		{
			name:      "density-desc puts densest first",
			strategy:  StrategyDensityDesc,
			wantFirst: "small",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := StrategyByName(tt.strategy)
			require.NoError(t, err)

			ordered := s.Order(units)
			require.Len(t, ordered, len(units))
			assert.Equal(t, tt.wantFirst, ordered[0].ID)
		})
	}
}

func TestSortingStrategy_Order_DoesNotMutateInput(t *testing.T) {
	units := model.ExpandUnits([]model.Item{
		{ID: "a", Length: 10, Width: 10, Height: 10, Weight: 1, Quantity: 1},
		{ID: "b", Length: 50, Width: 40, Height: 30, Weight: 2, Quantity: 1},
	})
	original := make([]model.ItemUnit, len(units))
	copy(original, units)

	for _, s := range Strategies() {
		_ = s.Order(units)
		assert.Equal(t, original, units, "strategy %s mutated its input", s.Name())
	}
}

func TestSortingStrategy_Order_StableTieBreak(t *testing.T) {
	// Identical units must come out ordered by (id, unit index) for every
	// strategy so repeated runs see the same placement order.
	units := model.ExpandUnits([]model.Item{
		{ID: "b", Length: 10, Width: 10, Height: 10, Weight: 5, Quantity: 2},
		{ID: "a", Length: 10, Width: 10, Height: 10, Weight: 5, Quantity: 2},
	})

	for _, s := range Strategies() {
		ordered := s.Order(units)
		require.Len(t, ordered, 4)
		assert.Equal(t, "a", ordered[0].ID, "strategy %s", s.Name())
		assert.Equal(t, 0, ordered[0].UnitIndex, "strategy %s", s.Name())
		assert.Equal(t, "a", ordered[1].ID, "strategy %s", s.Name())
		assert.Equal(t, 1, ordered[1].UnitIndex, "strategy %s", s.Name())
		assert.Equal(t, "b", ordered[2].ID, "strategy %s", s.Name())
	}
}
