//go:build !integration

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScoringWeights(t *testing.T) {
	w := DefaultScoringWeights()

	assert.Equal(t, 0.4, w.Volume)
	assert.Equal(t, 0.3, w.Cost)
	assert.Equal(t, 0.2, w.Weight)
	assert.Equal(t, 0.1, w.Handling)
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
}

func TestScoringWeights_Valid(t *testing.T) {
	tests := []struct {
		name    string
		weights ScoringWeights
		want    bool
	}{
		{
			name:    "defaults are valid",
			weights: DefaultScoringWeights(),
			want:    true,
		},
		{
			name:    "all zero is invalid",
			weights: ScoringWeights{},
			want:    false,
		},
		{
			name:    "negative weight is invalid",
			weights: ScoringWeights{Volume: 0.5, Cost: -0.1, Weight: 0.3, Handling: 0.3},
			want:    false,
		},
		{
			name:    "single non-zero weight is valid",
			weights: ScoringWeights{Volume: 1},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.weights.Valid())
		})
	}
}

func TestPlan_FullyPlaced(t *testing.T) {
	assert.True(t, Plan{Status: StatusOK}.FullyPlaced())
	assert.False(t, Plan{Status: StatusPartialFit}.FullyPlaced())
	assert.False(t, Plan{Status: StatusNoFeasibleContainer}.FullyPlaced())
}
