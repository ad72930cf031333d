package packing

import (
	"context"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// cornerFitness scores every candidate corner with a fitness function that
// rewards contact with already-placed geometry and penalizes the free-space
// fragmentation a placement would leave behind. Fitness is recomputed from
// the live state after every placement, so earlier choices feed back into
// later ones.
type cornerFitness struct{}

func (cornerFitness) Name() string { return AlgorithmCornerFitness }

// Fitness weighting between surface contact and fragmentation avoidance.
const (
	fitnessContactWeight = 0.6
	fitnessWasteWeight   = 0.4
)

func (a cornerFitness) Pack(ctx context.Context, units []model.ItemUnit, c model.Container) (model.PackingResult, error) {
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

		bestFitness := -1.0
		var bestPt point
		var bestOrient model.Orientation
		found := false

		for _, p := range anchors.sortedPoints() {
			dx, dy, dz := state.clearance(p)
			free := dx * dy * dz
			for _, o := range model.Orientations {
				b := orientedBox(u, o, p)
				if !state.fits(b) {
					continue
				}
				f := fitness(state, b, free)
				if f > bestFitness+eps {
					bestFitness = f
					bestPt = p
					bestOrient = o
					found = true
				}
			}
		}

		if !found {
			unfitted = append(unfitted, u)
			continue
		}
		b := state.place(u, bestOrient, bestPt)
		anchors.consume(bestPt, b)
	}

	return state.result(a.Name(), unfitted), nil
}

// fitness combines the contact ratio of the box with how completely it fills
// the free region reachable from its corner. Both terms lie in [0, 1].
func fitness(s *packState, b box, freeVolume float64) float64 {
	surface := 2 * (b.l*b.w + b.l*b.h + b.w*b.h)
	contact := 0.0
	if surface > 0 {
		contact = s.contactArea(b) / surface
		if contact > 1 {
			contact = 1
		}
	}

	fill := 1.0
	if freeVolume > b.volume() {
		fill = b.volume() / freeVolume
	}

	return fitnessContactWeight*contact + fitnessWasteWeight*fill
}
