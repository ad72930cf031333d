package packing

import (
	"context"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// bottomLeftFill is the enhanced bottom-left-fill algorithm: it maintains the
// open anchor set and, for each unit, tries all six orientations at every
// anchor, committing to the feasible placement with the lowest z, then y,
// then x.
type bottomLeftFill struct{}

func (bottomLeftFill) Name() string { return AlgorithmBottomLeftFill }

func (a bottomLeftFill) Pack(ctx context.Context, units []model.ItemUnit, c model.Container) (model.PackingResult, error) {
	return packBottomLeft(ctx, units, c, a.Name(), 0)
}

// stabilityFirst runs the same candidate search as bottom-left-fill but
// rejects placements whose base is insufficiently supported from below,
// trading packing density for load stability.
type stabilityFirst struct{}

func (stabilityFirst) Name() string { return AlgorithmStability }

// supportThreshold is the minimum fraction of a unit's base area that must
// rest on cargo below it (or the floor, which always fully supports). The
// 70% threshold follows common practice for mixed-size palletizing, where
// full base support is rarely achievable.
const supportThreshold = 0.70

func (a stabilityFirst) Pack(ctx context.Context, units []model.ItemUnit, c model.Container) (model.PackingResult, error) {
	return packBottomLeft(ctx, units, c, a.Name(), supportThreshold)
}

// packBottomLeft is the shared bottom-left scan. A positive minSupport adds
// the base-support feasibility check.
func packBottomLeft(ctx context.Context, units []model.ItemUnit, c model.Container, name string, minSupport float64) (model.PackingResult, error) {
	state := newPackState(c)
	anchors := newAnchorList()
	var unfitted []model.ItemUnit

	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return model.PackingResult{}, err
		}
		if !state.canCarry(u) {
			unfitted = append(unfitted, u)
			continue
		}

		placed := false
		for _, p := range anchors.sortedPoints() {
			for _, o := range model.Orientations {
				b := orientedBox(u, o, p)
				if !state.fits(b) {
					continue
				}
				if minSupport > 0 && state.supportRatio(b) < minSupport {
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

	return state.result(name, unfitted), nil
}
