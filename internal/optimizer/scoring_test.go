//go:build !integration

package optimizer

import (
	"testing"

	"github.com/guttosm/loadplan-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestCostProxy(t *testing.T) {
	tests := []struct {
		name      string
		container model.Container
		want      float64
	}{
		{
			name:      "cost plus fuel component",
			container: model.Container{CostPerKm: 1.2, FuelEfficiency: 3.0},
			want:      1.2 + 1.5/3.0,
		},
		{
			name:      "zero fuel efficiency skips fuel term",
			container: model.Container{CostPerKm: 1.2},
			want:      1.2,
		},
		{
			name:      "no cost data",
			container: model.Container{},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, costProxy(tt.container), 1e-9)
		})
	}
}

func TestScorer_Score(t *testing.T) {
	cheap := model.Container{ID: "cheap", CostPerKm: 1.0, FuelEfficiency: 5.0}
	pricey := model.Container{ID: "pricey", CostPerKm: 3.0, FuelEfficiency: 2.0}
	catalog := []model.Container{cheap, pricey}

	placed := []model.PlacedItem{{Unit: model.ItemUnit{Item: model.Item{ID: "a"}}}}

	scorer := NewScorer(model.DefaultScoringWeights(), catalog)

	t.Run("no fitted units is unscorable", func(t *testing.T) {
		score := scorer.Score(cheap, model.PackingResult{})
		assert.Equal(t, unscorable, score)
	})

	t.Run("score is in unit interval", func(t *testing.T) {
		r := model.PackingResult{
			Placed:            placed,
			VolumeUtilization: 80,
			WeightUtilization: 60,
		}
		score := scorer.Score(cheap, r)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	})

	t.Run("cheapest container gets full cost component", func(t *testing.T) {
		r := model.PackingResult{
			Placed:            placed,
			VolumeUtilization: 50,
			WeightUtilization: 50,
		}
		assert.Greater(t, scorer.Score(cheap, r), scorer.Score(pricey, r))
	})

	t.Run("higher utilization scores higher", func(t *testing.T) {
		low := model.PackingResult{Placed: placed, VolumeUtilization: 30, WeightUtilization: 30}
		high := model.PackingResult{Placed: placed, VolumeUtilization: 90, WeightUtilization: 90}
		assert.Greater(t, scorer.Score(cheap, high), scorer.Score(cheap, low))
	})

	t.Run("floor placements improve handling component", func(t *testing.T) {
		unit := model.ItemUnit{Item: model.Item{ID: "a", Length: 1, Width: 1, Height: 1}}
		onFloor := model.PackingResult{
			Placed:            []model.PlacedItem{{Unit: unit, Z: 0}, {Unit: unit, Z: 0}},
			VolumeUtilization: 50,
		}
		stacked := model.PackingResult{
			Placed:            []model.PlacedItem{{Unit: unit, Z: 0}, {Unit: unit, Z: 1}},
			VolumeUtilization: 50,
		}
		assert.Greater(t, scorer.Score(cheap, onFloor), scorer.Score(cheap, stacked))
	})
}

func TestScorer_Score_UtilizationAboveCapClamped(t *testing.T) {
	c := model.Container{ID: "c", CostPerKm: 1}
	scorer := NewScorer(model.DefaultScoringWeights(), []model.Container{c})

	r := model.PackingResult{
		Placed:            []model.PlacedItem{{Unit: model.ItemUnit{Item: model.Item{ID: "a"}}}},
		VolumeUtilization: 140,
		WeightUtilization: 120,
	}
	assert.LessOrEqual(t, scorer.Score(c, r), 1.0)
}

func TestNewScorer_InvalidWeightsFallBack(t *testing.T) {
	c := model.Container{ID: "c", CostPerKm: 1}
	scorer := NewScorer(model.ScoringWeights{}, []model.Container{c})

	assert.Equal(t, model.DefaultScoringWeights(), scorer.weights)
}

func TestNewScorer_BaselineIsCheapestPositiveProxy(t *testing.T) {
	catalog := []model.Container{
		{ID: "free"}, // zero proxy is skipped
		{ID: "mid", CostPerKm: 2},
		{ID: "low", CostPerKm: 1},
	}
	scorer := NewScorer(model.DefaultScoringWeights(), catalog)
	assert.InDelta(t, 1.0, scorer.baseline, 1e-9)
}

func TestScorer_CustomWeights(t *testing.T) {
	c := model.Container{ID: "c", CostPerKm: 1}
	// Volume-only weighting: score equals the volume fraction.
	scorer := NewScorer(model.ScoringWeights{Volume: 1}, []model.Container{c})

	r := model.PackingResult{
		Placed:            []model.PlacedItem{{Unit: model.ItemUnit{Item: model.Item{ID: "a"}}}},
		VolumeUtilization: 75,
		WeightUtilization: 10,
	}
	assert.InDelta(t, 0.75, scorer.Score(c, r), 1e-9)
}
