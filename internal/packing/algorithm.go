package packing

import (
	"context"
	"fmt"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// PlacementAlgorithm produces a packing attempt for one container. Each unit
// is attempted once, in the given order: it is either placed or added to the
// unfitted list, and earlier placements are never revisited. Implementations
// check ctx between unit placements; a cancelled run returns ctx.Err() and
// its partial result is discarded by the caller.
type PlacementAlgorithm interface {
	// Name returns the registry identifier of the algorithm.
	Name() string
	// Pack attempts to place the ordered units into the container.
	Pack(ctx context.Context, units []model.ItemUnit, c model.Container) (model.PackingResult, error)
}

// Algorithm identifiers.
const (
	AlgorithmBottomLeftFill     = "bottom-left-fill"
	AlgorithmBestFitDecreasing  = "best-fit-decreasing"
	AlgorithmFirstFitDecreasing = "first-fit-decreasing"
	AlgorithmNextFitDecreasing  = "next-fit-decreasing"
	AlgorithmSkylineEP          = "skyline-extreme-points"
	AlgorithmEnhancedEP         = "enhanced-extreme-points-2025"
	AlgorithmCornerFitness      = "dynamic-corner-fitness"
	AlgorithmDomainSearch       = "hybrid-domain-search"
	AlgorithmWastePriority      = "waste-space-priority"
	AlgorithmStability          = "physics-stability"
)

// algorithmRegistry holds the built-in algorithms in presentation order.
var algorithmRegistry = []PlacementAlgorithm{
	bottomLeftFill{},
	bestFitDecreasing{},
	firstFitDecreasing{},
	nextFitDecreasing{},
	skylineExtremePoints{},
	enhancedExtremePoints{},
	cornerFitness{},
	domainSearch{},
	wastePriority{},
	stabilityFirst{},
}

// Algorithms returns all registered placement algorithms.
func Algorithms() []PlacementAlgorithm {
	out := make([]PlacementAlgorithm, len(algorithmRegistry))
	copy(out, algorithmRegistry)
	return out
}

// AlgorithmByName looks up an algorithm by its registry identifier.
func AlgorithmByName(name string) (PlacementAlgorithm, error) {
	for _, a := range algorithmRegistry {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("unknown placement algorithm %q", name)
}

// AlgorithmsByName resolves a list of identifiers, or all algorithms when the
// list is empty.
func AlgorithmsByName(names []string) ([]PlacementAlgorithm, error) {
	if len(names) == 0 {
		return Algorithms(), nil
	}
	out := make([]PlacementAlgorithm, 0, len(names))
	for _, n := range names {
		a, err := AlgorithmByName(n)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
