package packing

import (
	"context"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// bestFitDecreasing evaluates every feasible anchor+orientation pair and
// commits to the one minimizing the leftover bounding-box slack: the empty
// volume reachable from the anchor minus the unit's own volume.
type bestFitDecreasing struct{}

func (bestFitDecreasing) Name() string { return AlgorithmBestFitDecreasing }

func (a bestFitDecreasing) Pack(ctx context.Context, units []model.ItemUnit, c model.Container) (model.PackingResult, error) {
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

		p, o, ok := bestFitPlacement(state, anchors, u)
		if !ok {
			unfitted = append(unfitted, u)
			continue
		}
		b := state.place(u, o, p)
		anchors.consume(p, b)
	}

	return state.result(a.Name(), unfitted), nil
}

// firstFitDecreasing scans anchors in a fixed (insertion) order and places at
// the first feasible one. Orientations are restricted to the two upright
// rotations, which keeps the scan cheap; quality is below best-fit.
type firstFitDecreasing struct{}

func (firstFitDecreasing) Name() string { return AlgorithmFirstFitDecreasing }

func (a firstFitDecreasing) Pack(ctx context.Context, units []model.ItemUnit, c model.Container) (model.PackingResult, error) {
	return packScanFit(ctx, units, c, a.Name(), false)
}

// nextFitDecreasing is first-fit with a moving cursor: anchors before the
// last successful placement are never revisited. Cheapest variant, lowest
// quality. Orientations are restricted like first-fit-decreasing.
type nextFitDecreasing struct{}

func (nextFitDecreasing) Name() string { return AlgorithmNextFitDecreasing }

func (a nextFitDecreasing) Pack(ctx context.Context, units []model.ItemUnit, c model.Container) (model.PackingResult, error) {
	return packScanFit(ctx, units, c, a.Name(), true)
}

func packScanFit(ctx context.Context, units []model.ItemUnit, c model.Container, name string, nextFit bool) (model.PackingResult, error) {
	state := newPackState(c)
	anchors := newAnchorList()
	var unfitted []model.ItemUnit
	cursor := 0

	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return model.PackingResult{}, err
		}
		if !state.canCarry(u) {
			unfitted = append(unfitted, u)
			continue
		}

		start := 0
		if nextFit {
			start = cursor
		}

		placed := false
		pts := anchors.points()
		for i := start; i < len(pts); i++ {
			p := pts[i]
			for _, o := range model.UprightOrientations {
				b := orientedBox(u, o, p)
				if !state.fits(b) {
					continue
				}
				state.place(u, o, p)
				anchors.consume(p, b)
				if nextFit {
					cursor = i
					if cursor >= len(anchors.points()) {
						cursor = len(anchors.points()) - 1
					}
					if cursor < 0 {
						cursor = 0
					}
				}
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
