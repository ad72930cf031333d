package model

// PlanStatus classifies the fit outcome of a recommendation request.
// Feasibility conditions are structured result fields, never errors.
type PlanStatus string

const (
	// StatusOK means all requested units were placed.
	StatusOK PlanStatus = "ok"
	// StatusPartialFit means the best achievable result leaves units unplaced.
	StatusPartialFit PlanStatus = "partial_fit"
	// StatusNoFeasibleContainer means at least one item unit cannot fit in any
	// catalog container in any orientation, even alone.
	StatusNoFeasibleContainer PlanStatus = "no_feasible_container"
)

// ScoringWeights holds the composite-score weights. The defaults mirror the
// planner's historical weighting but are configuration, not contract.
type ScoringWeights struct {
	Volume   float64 `json:"volume"`
	Cost     float64 `json:"cost"`
	Weight   float64 `json:"weight"`
	Handling float64 `json:"handling"`
}

// DefaultScoringWeights returns the standard 0.4/0.3/0.2/0.1 weighting.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{Volume: 0.4, Cost: 0.3, Weight: 0.2, Handling: 0.1}
}

// Sum returns the total of all four weights.
func (w ScoringWeights) Sum() float64 {
	return w.Volume + w.Cost + w.Weight + w.Handling
}

// Valid reports whether the weights can be used for scoring.
func (w ScoringWeights) Valid() bool {
	return w.Volume >= 0 && w.Cost >= 0 && w.Weight >= 0 && w.Handling >= 0 && w.Sum() > 0
}

// Recommendation is one ranked container choice with its best packing result.
type Recommendation struct {
	Rank      int           `json:"rank"`
	Container Container     `json:"container"`
	Result    PackingResult `json:"result"`
	Score     float64       `json:"score"`
}

// Plan is the complete outcome of a recommendation request: the ranked
// single-container recommendations, the optional multi-container fallback
// sequence, and structured feasibility diagnostics.
type Plan struct {
	// Recommendations holds the primary recommendation (rank 1) followed by
	// up to the configured number of alternatives.
	Recommendations []Recommendation `json:"recommendations"`
	// MultiContainer is the accumulated container sequence when no single
	// container fits everything. Empty when the primary is a full fit or the
	// fallback is disabled.
	MultiContainer []Recommendation `json:"multi_container,omitempty"`

	Status PlanStatus `json:"status"`
	// TimedOut marks a plan based on an incomplete search: the wall-clock
	// budget expired before all combinations were evaluated.
	TimedOut bool `json:"timed_out"`

	// UnfittedUnits are units no chosen container could hold.
	UnfittedUnits []ItemUnit `json:"unfitted_units,omitempty"`
	// InfeasibleItems names items that exceed every container's interior in
	// every orientation.
	InfeasibleItems []string `json:"infeasible_items,omitempty"`
}

// FullyPlaced reports whether the plan covers every requested unit.
func (p Plan) FullyPlaced() bool {
	return p.Status == StatusOK
}
