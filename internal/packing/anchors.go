package packing

import "sort"

// maxAnchors caps the candidate set maintained by an algorithm run. The cap
// keeps the per-run cost polynomial in item count; the lowest anchors are
// kept because placements prefer low positions anyway.
const maxAnchors = 256

// anchorList maintains the open placement anchors for one algorithm run.
// A fresh list starts with the container origin as its only anchor.
type anchorList struct {
	pts    []point
	sorted bool
}

func newAnchorList() *anchorList {
	return &anchorList{pts: []point{{0, 0, 0}}, sorted: true}
}

// points returns the anchors in insertion order.
func (a *anchorList) points() []point {
	return a.pts
}

// sortedPoints returns the anchors ordered by (z, y, x).
func (a *anchorList) sortedPoints() []point {
	if !a.sorted {
		sort.Slice(a.pts, func(i, j int) bool { return pointLess(a.pts[i], a.pts[j]) })
		a.sorted = true
	}
	return a.pts
}

// consume removes the anchor used for a placement and opens the three corners
// exposed by the placed box. Anchors swallowed by the box are dropped.
func (a *anchorList) consume(used point, b box) {
	kept := a.pts[:0]
	for _, p := range a.pts {
		if samePoint(p, used) || b.contains(p) {
			continue
		}
		kept = append(kept, p)
	}
	a.pts = kept
	a.add(point{b.x2(), b.y, b.z})
	a.add(point{b.x, b.y2(), b.z})
	a.add(point{b.x, b.y, b.z2()})
}

// add appends a new anchor, deduplicating and enforcing the cap.
func (a *anchorList) add(p point) {
	for _, q := range a.pts {
		if samePoint(p, q) {
			return
		}
	}
	a.sorted = false
	if len(a.pts) >= maxAnchors {
		// Evict the highest anchor to keep the low candidates.
		worst := 0
		for i := 1; i < len(a.pts); i++ {
			if pointLess(a.pts[worst], a.pts[i]) {
				worst = i
			}
		}
		if pointLess(p, a.pts[worst]) {
			a.pts[worst] = p
		}
		return
	}
	a.pts = append(a.pts, p)
}
