package packing

import (
	"context"
	"sort"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// extremePoints maintains the set of corners exposed by placed cargo and the
// container walls. Unlike the plain anchor list it projects new points onto
// the nearest supporting surface, which lets it describe irregular,
// non-cuboid residual free space. The enhanced mode additionally slides
// points toward the walls on all three axes and prunes dominated points.
type extremePoints struct {
	state    *packState
	pts      []point
	enhanced bool
}

func newExtremePoints(state *packState, enhanced bool) *extremePoints {
	return &extremePoints{state: state, pts: []point{{0, 0, 0}}, enhanced: enhanced}
}

// points returns the extreme points ordered by (z, y, x).
func (e *extremePoints) points() []point {
	return e.pts
}

// update reworks the point set after a placement: the consumed point and any
// point swallowed by the new box are removed, and the three corners exposed
// by the box are projected and inserted.
func (e *extremePoints) update(used point, b box) {
	kept := e.pts[:0]
	for _, p := range e.pts {
		if samePoint(p, used) || b.contains(p) {
			continue
		}
		kept = append(kept, p)
	}
	e.pts = kept

	e.insert(e.project(point{b.x2(), b.y, b.z}))
	e.insert(e.project(point{b.x, b.y2(), b.z}))
	e.insert(point{b.x, b.y, b.z2()})

	if e.enhanced {
		e.prune()
	}
	sort.Slice(e.pts, func(i, j int) bool { return pointLess(e.pts[i], e.pts[j]) })
}

// project drops the point onto the highest surface below it; in enhanced
// mode it also slides the point toward the origin walls until it meets
// placed cargo, exposing corners of the irregular free space.
func (e *extremePoints) project(p point) point {
	p.z = e.state.restingZ(p.x, p.y, eps, eps)
	if !e.enhanced {
		return p
	}
	p.x = e.slideX(p)
	p.y = e.slideY(p)
	return p
}

// slideX returns the smallest x the point can move to without entering
// placed cargo.
func (e *extremePoints) slideX(p point) float64 {
	x := 0.0
	for _, o := range e.state.boxes {
		if o.x2() <= p.x+eps &&
			o.y <= p.y+eps && p.y < o.y2()-eps &&
			o.z <= p.z+eps && p.z < o.z2()-eps &&
			o.x2() > x {
			x = o.x2()
		}
	}
	return x
}

func (e *extremePoints) slideY(p point) float64 {
	y := 0.0
	for _, o := range e.state.boxes {
		if o.y2() <= p.y+eps &&
			o.x <= p.x+eps && p.x < o.x2()-eps &&
			o.z <= p.z+eps && p.z < o.z2()-eps &&
			o.y2() > y {
			y = o.y2()
		}
	}
	return y
}

func (e *extremePoints) insert(p point) {
	for _, q := range e.pts {
		if samePoint(p, q) {
			return
		}
	}
	if len(e.pts) >= maxAnchors {
		worst := 0
		for i := 1; i < len(e.pts); i++ {
			if pointLess(e.pts[worst], e.pts[i]) {
				worst = i
			}
		}
		if pointLess(p, e.pts[worst]) {
			e.pts[worst] = p
		}
		return
	}
	e.pts = append(e.pts, p)
}

// prune removes points dominated on all three axes by another point. A
// dominated point proposes a strictly worse placement region than its
// dominator, so dropping it shrinks the candidate set without losing
// packings.
func (e *extremePoints) prune() {
	kept := e.pts[:0]
	for i, p := range e.pts {
		dominated := false
		for j, q := range e.pts {
			if i == j {
				continue
			}
			if q.x <= p.x+eps && q.y <= p.y+eps && q.z <= p.z+eps && !samePoint(p, q) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, p)
		}
	}
	e.pts = kept
}

// skylineExtremePoints packs at the lowest feasible extreme point, skyline
// style: the point set traces the irregular upper surface of the cargo and
// the first feasible point in (z, y, x) order is taken.
type skylineExtremePoints struct{}

func (skylineExtremePoints) Name() string { return AlgorithmSkylineEP }

func (a skylineExtremePoints) Pack(ctx context.Context, units []model.ItemUnit, c model.Container) (model.PackingResult, error) {
	return packExtremePoints(ctx, units, c, a.Name(), false)
}

// enhancedExtremePoints is the 2025 refinement: projected points slide onto
// supporting surfaces on every axis, dominated points are pruned, and among
// feasible placements the one with the most face contact at the lowest level
// wins instead of plain first-fit.
type enhancedExtremePoints struct{}

func (enhancedExtremePoints) Name() string { return AlgorithmEnhancedEP }

func (a enhancedExtremePoints) Pack(ctx context.Context, units []model.ItemUnit, c model.Container) (model.PackingResult, error) {
	return packExtremePoints(ctx, units, c, a.Name(), true)
}

func packExtremePoints(ctx context.Context, units []model.ItemUnit, c model.Container, name string, enhanced bool) (model.PackingResult, error) {
	state := newPackState(c)
	points := newExtremePoints(state, enhanced)
	var unfitted []model.ItemUnit

	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return model.PackingResult{}, err
		}
		if !state.canCarry(u) {
			unfitted = append(unfitted, u)
			continue
		}

		var bestPt point
		var bestOrient model.Orientation
		bestContact := -1.0
		found := false

	search:
		for _, p := range points.points() {
			for _, o := range model.Orientations {
				b := orientedBox(u, o, p)
				if !state.fits(b) {
					continue
				}
				if !enhanced {
					bestPt, bestOrient, found = p, o, true
					break search
				}
				// Enhanced: points are (z, y, x)-sorted, so the first
				// feasible level is the lowest; within that level prefer
				// the placement touching the most existing geometry.
				if found && p.z > bestPt.z+eps {
					break search
				}
				if contact := state.contactArea(b); contact > bestContact+eps {
					bestPt, bestOrient, bestContact = p, o, contact
					found = true
				}
			}
		}

		if !found {
			unfitted = append(unfitted, u)
			continue
		}
		b := state.place(u, bestOrient, bestPt)
		points.update(bestPt, b)
	}

	return state.result(name, unfitted), nil
}
