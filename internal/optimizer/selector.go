package optimizer

import (
	"context"
	"sort"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// SelectorConfig controls recommendation assembly.
type SelectorConfig struct {
	// Weights for the composite score.
	Weights model.ScoringWeights
	// MaxAlternatives is the number of next-best containers returned after
	// the primary recommendation.
	MaxAlternatives int
	// MaxContainers caps the multi-container fallback: the total number of
	// containers a plan may accumulate. 1 disables the fallback.
	MaxContainers int
}

// DefaultSelectorConfig returns the standard selection parameters.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		Weights:         model.DefaultScoringWeights(),
		MaxAlternatives: 3,
		MaxContainers:   5,
	}
}

// Selector ranks container candidates from multi-pass sweeps and assembles
// the final plan, including the multi-container fallback when no single
// container holds everything.
type Selector struct {
	opt *MultiPassOptimizer
	cfg SelectorConfig
}

// NewSelector creates a selector, filling config defaults.
func NewSelector(opt *MultiPassOptimizer, cfg SelectorConfig) *Selector {
	if !cfg.Weights.Valid() {
		cfg.Weights = model.DefaultScoringWeights()
	}
	if cfg.MaxAlternatives < 0 {
		cfg.MaxAlternatives = 0
	}
	if cfg.MaxContainers < 1 {
		cfg.MaxContainers = 1
	}
	return &Selector{opt: opt, cfg: cfg}
}

// Recommend runs the full pipeline: feasibility pre-check, per-container
// sweeps, ranking, and the multi-container fallback. Feasibility and timeout
// conditions are fields of the returned plan, never errors.
func (s *Selector) Recommend(ctx context.Context, items []model.Item, catalog []model.Container) model.Plan {
	plan := model.Plan{Recommendations: []model.Recommendation{}}

	units := model.ExpandUnits(items)
	feasible, infeasibleUnits, infeasibleIDs := splitFeasible(units, catalog)
	plan.InfeasibleItems = infeasibleIDs
	plan.UnfittedUnits = append(plan.UnfittedUnits, infeasibleUnits...)

	if len(feasible) == 0 {
		if len(infeasibleIDs) > 0 {
			plan.Status = model.StatusNoFeasibleContainer
		} else {
			plan.Status = model.StatusOK
		}
		return plan
	}

	scorer := NewScorer(s.cfg.Weights, catalog)
	candidates, timedOut := s.rankCandidates(ctx, feasible, catalog, scorer)
	plan.TimedOut = timedOut

	if len(candidates) == 0 {
		plan.Status = model.StatusPartialFit
		plan.UnfittedUnits = append(plan.UnfittedUnits, feasible...)
		return plan
	}

	limit := 1 + s.cfg.MaxAlternatives
	if limit > len(candidates) {
		limit = len(candidates)
	}
	for i := 0; i < limit; i++ {
		candidates[i].Rank = i + 1
		plan.Recommendations = append(plan.Recommendations, candidates[i])
	}

	primary := plan.Recommendations[0]
	remaining := primary.Result.Unfitted

	if len(remaining) > 0 && s.cfg.MaxContainers > 1 {
		multi, leftover, fellTimedOut := s.fallback(ctx, primary, remaining, catalog, scorer)
		plan.TimedOut = plan.TimedOut || fellTimedOut
		if len(multi) > 1 {
			plan.MultiContainer = multi
		}
		remaining = leftover
	}

	plan.UnfittedUnits = append(plan.UnfittedUnits, remaining...)

	switch {
	case len(infeasibleIDs) > 0:
		plan.Status = model.StatusNoFeasibleContainer
	case len(remaining) == 0:
		plan.Status = model.StatusOK
	default:
		plan.Status = model.StatusPartialFit
	}
	return plan
}

// fallback re-runs the pipeline on the unfitted remainder against the
// remaining catalog, accumulating containers until everything is placed, a
// round makes no progress, or the container cap is reached.
func (s *Selector) fallback(ctx context.Context, primary model.Recommendation, remaining []model.ItemUnit, catalog []model.Container, scorer *Scorer) ([]model.Recommendation, []model.ItemUnit, bool) {
	multi := []model.Recommendation{primary}
	used := map[string]bool{primary.Container.ID: true}
	timedOut := false

	for len(remaining) > 0 && len(multi) < s.cfg.MaxContainers {
		rest := make([]model.Container, 0, len(catalog))
		for _, c := range catalog {
			if !used[c.ID] {
				rest = append(rest, c)
			}
		}
		if len(rest) == 0 {
			break
		}

		candidates, roundTimedOut := s.rankCandidates(ctx, remaining, rest, scorer)
		timedOut = timedOut || roundTimedOut
		if len(candidates) == 0 || len(candidates[0].Result.Placed) == 0 {
			// No progress: the leftover is irreducible with this catalog.
			break
		}

		next := candidates[0]
		next.Rank = len(multi) + 1
		multi = append(multi, next)
		used[next.Container.ID] = true
		remaining = next.Result.Unfitted
	}

	return multi, remaining, timedOut
}

// rankCandidates sweeps every container and orders them by: full fit first,
// composite score descending, cost proxy ascending, then container id for a
// stable total order independent of run completion order.
func (s *Selector) rankCandidates(ctx context.Context, units []model.ItemUnit, catalog []model.Container, scorer *Scorer) ([]model.Recommendation, bool) {
	timedOut := false
	candidates := make([]model.Recommendation, 0, len(catalog))

	for _, c := range catalog {
		results, sweepTimedOut := s.opt.Sweep(ctx, units, c)
		timedOut = timedOut || sweepTimedOut
		best, ok := bestResult(results, c, scorer)
		if !ok {
			continue
		}
		candidates = append(candidates, model.Recommendation{
			Container: c,
			Result:    best,
			Score:     scorer.Score(c, best),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Result.FullFit() != b.Result.FullFit() {
			return a.Result.FullFit()
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		pa, pb := costProxy(a.Container), costProxy(b.Container)
		if pa != pb {
			return pa < pb
		}
		return a.Container.ID < b.Container.ID
	})
	return candidates, timedOut
}

// bestResult picks the container's representative attempt from a sweep.
func bestResult(results []model.PackingResult, c model.Container, scorer *Scorer) (model.PackingResult, bool) {
	if len(results) == 0 {
		return model.PackingResult{}, false
	}
	best := results[0]
	bestScore := scorer.Score(c, best)
	for _, r := range results[1:] {
		score := scorer.Score(c, r)
		if r.FullFit() != best.FullFit() {
			if r.FullFit() {
				best, bestScore = r, score
			}
			continue
		}
		if score > bestScore {
			best, bestScore = r, score
		}
	}
	return best, true
}

// splitFeasible separates units that can never be placed: their item exceeds
// every container's interior in every orientation, or outweighs every
// container's capacity on its own.
func splitFeasible(units []model.ItemUnit, catalog []model.Container) (feasible, infeasible []model.ItemUnit, ids []string) {
	seen := map[string]bool{}
	for _, u := range units {
		ok := false
		for _, c := range catalog {
			if c.Fits(u.Item) && u.Weight <= c.MaxWeight {
				ok = true
				break
			}
		}
		if ok {
			feasible = append(feasible, u)
			continue
		}
		infeasible = append(infeasible, u)
		if !seen[u.ID] {
			seen[u.ID] = true
			ids = append(ids, u.ID)
		}
	}
	return feasible, infeasible, ids
}
