package packing

import (
	"context"
	"sort"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// wastePriority is a two-pass algorithm: the first pass packs with the
// best-fit search, then the largest contiguous voids left behind are
// identified and the remaining units, smallest first, are re-attempted
// inside them.
type wastePriority struct{}

func (wastePriority) Name() string { return AlgorithmWastePriority }

func (a wastePriority) Pack(ctx context.Context, units []model.ItemUnit, c model.Container) (model.PackingResult, error) {
	state := newPackState(c)
	anchors := newAnchorList()
	var leftover []model.ItemUnit

	// First pass: best-fit placement.
	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return model.PackingResult{}, err
		}
		if !state.canCarry(u) {
			leftover = append(leftover, u)
			continue
		}
		p, o, ok := bestFitPlacement(state, anchors, u)
		if !ok {
			leftover = append(leftover, u)
			continue
		}
		b := state.place(u, o, p)
		anchors.consume(p, b)
	}

	// Second pass: rank remaining voids by size and retry the leftovers,
	// smallest unit first, so small cargo fills the gaps large units opened.
	sort.Slice(leftover, func(i, j int) bool {
		vi, vj := leftover[i].Volume(), leftover[j].Volume()
		if vi != vj {
			return vi < vj
		}
		if leftover[i].ID != leftover[j].ID {
			return leftover[i].ID < leftover[j].ID
		}
		return leftover[i].UnitIndex < leftover[j].UnitIndex
	})

	var unfitted []model.ItemUnit
	for _, u := range leftover {
		if err := ctx.Err(); err != nil {
			return model.PackingResult{}, err
		}
		if !state.canCarry(u) {
			unfitted = append(unfitted, u)
			continue
		}

		placed := false
		for _, p := range voidsBySize(state, anchors) {
			for _, o := range model.Orientations {
				b := orientedBox(u, o, p)
				if !state.fits(b) {
					continue
				}
				state.place(u, o, p)
				anchors.consume(p, b)
				placed = true
				break
			}
			if placed {
				break
			}
		}
		if !placed {
			unfitted = append(unfitted, u)
		}
	}

	return state.result(a.Name(), unfitted), nil
}

// bestFitPlacement finds the feasible anchor+orientation minimizing leftover
// slack, shared with the first pass of the waste-priority algorithm.
func bestFitPlacement(state *packState, anchors *anchorList, u model.ItemUnit) (point, model.Orientation, bool) {
	var bestPt point
	var bestOrient model.Orientation
	bestWaste := 0.0
	found := false

	for _, p := range anchors.sortedPoints() {
		dx, dy, dz := state.clearance(p)
		free := dx * dy * dz
		for _, o := range model.Orientations {
			b := orientedBox(u, o, p)
			if !state.fits(b) {
				continue
			}
			waste := free - b.volume()
			if !found || waste < bestWaste-eps {
				bestPt, bestOrient, bestWaste = p, o, waste
				found = true
			}
		}
	}
	return bestPt, bestOrient, found
}

// voidsBySize orders the open anchors by the free volume reachable from
// them, largest first: the biggest contiguous voids are attempted before
// the scraps.
func voidsBySize(state *packState, anchors *anchorList) []point {
	pts := anchors.sortedPoints()
	out := make([]point, len(pts))
	copy(out, pts)

	volume := func(p point) float64 {
		dx, dy, dz := state.clearance(p)
		return dx * dy * dz
	}
	sort.SliceStable(out, func(i, j int) bool {
		return volume(out[i]) > volume(out[j])
	})
	return out
}
