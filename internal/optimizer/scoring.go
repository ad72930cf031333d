package optimizer

import "github.com/guttosm/loadplan-service/internal/domain/model"

// nominalFuelPrice converts fuel efficiency into a cost-per-km component so
// containers with different efficiency/cost mixes compare on one axis.
const nominalFuelPrice = 1.5

// unscorable ranks below every real composite score. Results with zero
// fitted units have no defined score.
const unscorable = -1.0

// costProxy is the per-km operating cost estimate used for both scoring and
// the cheapest-container tie-break.
func costProxy(c model.Container) float64 {
	cost := c.CostPerKm
	if c.FuelEfficiency > 0 {
		cost += nominalFuelPrice / c.FuelEfficiency
	}
	return cost
}

// Scorer computes the composite quality score of packing attempts. The
// baseline is the cheapest cost proxy among the candidate containers, so
// cost efficiency is relative to the current catalog rather than absolute.
type Scorer struct {
	weights  model.ScoringWeights
	baseline float64
}

// NewScorer builds a scorer for a candidate set. Invalid weights fall back
// to the defaults.
func NewScorer(weights model.ScoringWeights, candidates []model.Container) *Scorer {
	if !weights.Valid() {
		weights = model.DefaultScoringWeights()
	}
	baseline := 0.0
	for _, c := range candidates {
		if p := costProxy(c); p > 0 && (baseline == 0 || p < baseline) {
			baseline = p
		}
	}
	return &Scorer{weights: weights, baseline: baseline}
}

// Score returns the weighted composite score in [0, 1], or unscorable for
// results with no fitted units.
func (s *Scorer) Score(c model.Container, r model.PackingResult) float64 {
	if len(r.Placed) == 0 {
		return unscorable
	}

	volume := clamp01(r.VolumeUtilization / 100)
	weight := clamp01(r.WeightUtilization / 100)

	cost := 0.0
	if p := costProxy(c); p > 0 && s.baseline > 0 {
		cost = clamp01(s.baseline / p)
	}

	handling := clamp01(r.FloorFraction())

	total := s.weights.Sum()
	return (s.weights.Volume*volume +
		s.weights.Cost*cost +
		s.weights.Weight*weight +
		s.weights.Handling*handling) / total
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
