package packing

import (
	"fmt"
	"sort"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// SortingStrategy orders item units prior to placement. Implementations are
// pure: the input slice is never mutated, and the output is deterministic
// with a stable tie-break on (item id, unit index).
type SortingStrategy interface {
	// Name returns the registry identifier of the strategy.
	Name() string
	// Order returns a new slice with the units in placement order.
	Order(units []model.ItemUnit) []model.ItemUnit
}

// Strategy identifiers.
const (
	StrategyVolumeDesc     = "volume-desc"
	StrategyWeightDesc     = "weight-desc"
	StrategyLongestDimDesc = "longest-dim-desc"
	StrategyFootprintDesc  = "footprint-desc"
	StrategyDensityDesc    = "density-desc"
)

// keyStrategy sorts descending by a scalar key derived from the unit.
type keyStrategy struct {
	name string
	key  func(model.ItemUnit) float64
}

func (s keyStrategy) Name() string { return s.name }

func (s keyStrategy) Order(units []model.ItemUnit) []model.ItemUnit {
	out := make([]model.ItemUnit, len(units))
	copy(out, units)
	sort.Slice(out, func(i, j int) bool {
		ki, kj := s.key(out[i]), s.key(out[j])
		if ki != kj {
			return ki > kj
		}
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].UnitIndex < out[j].UnitIndex
	})
	return out
}

// strategyRegistry holds the built-in strategies in presentation order.
var strategyRegistry = []SortingStrategy{
	keyStrategy{StrategyVolumeDesc, func(u model.ItemUnit) float64 { return u.Volume() }},
	keyStrategy{StrategyWeightDesc, func(u model.ItemUnit) float64 { return u.Weight }},
	keyStrategy{StrategyLongestDimDesc, func(u model.ItemUnit) float64 { return u.LongestDimension() }},
	keyStrategy{StrategyFootprintDesc, func(u model.ItemUnit) float64 { return u.Footprint() }},
	keyStrategy{StrategyDensityDesc, func(u model.ItemUnit) float64 { return u.Density() }},
}

// Strategies returns all registered sorting strategies.
func Strategies() []SortingStrategy {
	out := make([]SortingStrategy, len(strategyRegistry))
	copy(out, strategyRegistry)
	return out
}

// StrategyByName looks up a strategy by its registry identifier.
func StrategyByName(name string) (SortingStrategy, error) {
	for _, s := range strategyRegistry {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown sorting strategy %q", name)
}

// StrategiesByName resolves a list of identifiers, or all strategies when the
// list is empty.
func StrategiesByName(names []string) ([]SortingStrategy, error) {
	if len(names) == 0 {
		return Strategies(), nil
	}
	out := make([]SortingStrategy, 0, len(names))
	for _, n := range names {
		s, err := StrategyByName(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
