package packing

import "github.com/guttosm/loadplan-service/internal/domain/model"

// packState is the per-run mutable placement state. Every algorithm run owns
// its own instance, so runs never share mutable data and are safe to execute
// in parallel.
type packState struct {
	container  model.Container
	placed     []model.PlacedItem
	boxes      []box
	usedWeight float64
	usedVolume float64
}

func newPackState(c model.Container) *packState {
	return &packState{container: c}
}

// canCarry reports whether adding the unit stays within the weight capacity.
func (s *packState) canCarry(u model.ItemUnit) bool {
	return s.usedWeight+u.Weight <= s.container.MaxWeight+eps
}

// fits reports whether the box lies inside the container and overlaps no
// placed cargo.
func (s *packState) fits(b box) bool {
	if b.x < -eps || b.y < -eps || b.z < -eps {
		return false
	}
	if b.x2() > s.container.Length+eps || b.y2() > s.container.Width+eps || b.z2() > s.container.Height+eps {
		return false
	}
	for _, o := range s.boxes {
		if b.intersects(o) {
			return false
		}
	}
	return true
}

// place commits a unit at the given position and orientation. Callers must
// have verified fits and canCarry.
func (s *packState) place(u model.ItemUnit, o model.Orientation, p point) box {
	b := orientedBox(u, o, p)
	s.placed = append(s.placed, model.PlacedItem{Unit: u, Orientation: o, X: p.x, Y: p.y, Z: p.z})
	s.boxes = append(s.boxes, b)
	s.usedWeight += u.Weight
	s.usedVolume += b.volume()
	return b
}

// supportRatio returns the fraction of the box's base area resting on the
// container floor or on top faces of placed cargo.
func (s *packState) supportRatio(b box) float64 {
	if b.z < eps {
		return 1
	}
	base := b.l * b.w
	if base <= 0 {
		return 0
	}
	var supported float64
	for _, o := range s.boxes {
		if absf(o.z2()-b.z) > eps {
			continue
		}
		dx := overlap1D(b.x, b.x2(), o.x, o.x2())
		dy := overlap1D(b.y, b.y2(), o.y, o.y2())
		supported += dx * dy
	}
	ratio := supported / base
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

// restingZ returns the lowest z at which a base of the given footprint can
// rest at (x, y): the highest top face under the footprint, or the floor.
func (s *packState) restingZ(x, y, l, w float64) float64 {
	var z float64
	for _, o := range s.boxes {
		if overlap1D(x, x+l, o.x, o.x2()) > eps && overlap1D(y, y+w, o.y, o.y2()) > eps && o.z2() > z {
			z = o.z2()
		}
	}
	return z
}

// clearance returns the free extent from p toward the container walls on each
// axis, stopping at the nearest placed box whose cross-section covers p. It
// approximates the empty bounding region reachable from the anchor.
func (s *packState) clearance(p point) (dx, dy, dz float64) {
	dx = s.container.Length - p.x
	dy = s.container.Width - p.y
	dz = s.container.Height - p.z
	for _, o := range s.boxes {
		if o.x >= p.x && o.y <= p.y+eps && p.y < o.y2()-eps && o.z <= p.z+eps && p.z < o.z2()-eps {
			if d := o.x - p.x; d < dx {
				dx = d
			}
		}
		if o.y >= p.y && o.x <= p.x+eps && p.x < o.x2()-eps && o.z <= p.z+eps && p.z < o.z2()-eps {
			if d := o.y - p.y; d < dy {
				dy = d
			}
		}
		if o.z >= p.z && o.x <= p.x+eps && p.x < o.x2()-eps && o.y <= p.y+eps && p.y < o.y2()-eps {
			if d := o.z - p.z; d < dz {
				dz = d
			}
		}
	}
	return dx, dy, dz
}

// contactArea returns the total face-contact area between the box and the
// container floor, walls, and placed cargo.
func (s *packState) contactArea(b box) float64 {
	var area float64
	if b.z < eps {
		area += b.l * b.w
	}
	if b.x < eps {
		area += b.w * b.h
	}
	if b.y < eps {
		area += b.l * b.h
	}
	if absf(b.x2()-s.container.Length) < eps {
		area += b.w * b.h
	}
	if absf(b.y2()-s.container.Width) < eps {
		area += b.l * b.h
	}
	for _, o := range s.boxes {
		// Vertical faces touching in x.
		if absf(b.x-o.x2()) < eps || absf(b.x2()-o.x) < eps {
			area += overlap1D(b.y, b.y2(), o.y, o.y2()) * overlap1D(b.z, b.z2(), o.z, o.z2())
		}
		// Vertical faces touching in y.
		if absf(b.y-o.y2()) < eps || absf(b.y2()-o.y) < eps {
			area += overlap1D(b.x, b.x2(), o.x, o.x2()) * overlap1D(b.z, b.z2(), o.z, o.z2())
		}
		// Horizontal faces.
		if absf(b.z-o.z2()) < eps || absf(b.z2()-o.z) < eps {
			area += overlap1D(b.x, b.x2(), o.x, o.x2()) * overlap1D(b.y, b.y2(), o.y, o.y2())
		}
	}
	return area
}

// result assembles the PackingResult with derived metrics. The sorting
// strategy identifier is stamped by the optimizer, which knows which
// ordering produced the input.
func (s *packState) result(algorithm string, unfitted []model.ItemUnit) model.PackingResult {
	r := model.PackingResult{
		ContainerID: s.container.ID,
		Algorithm:   algorithm,
		Placed:      s.placed,
		Unfitted:    unfitted,
	}
	if r.Unfitted == nil {
		r.Unfitted = []model.ItemUnit{}
	}
	if r.Placed == nil {
		r.Placed = []model.PlacedItem{}
	}

	if v := s.container.Volume(); v > 0 {
		r.VolumeUtilization = s.usedVolume / v * 100
	}
	if s.container.MaxWeight > 0 {
		r.WeightUtilization = s.usedWeight / s.container.MaxWeight * 100
	}
	total := len(r.Placed) + len(r.Unfitted)
	if total > 0 {
		r.FittedFraction = float64(len(r.Placed)) / float64(total)
	}
	if len(s.boxes) > 0 {
		var sum float64
		for _, b := range s.boxes {
			sum += s.supportRatio(b)
		}
		r.StabilityScore = sum / float64(len(s.boxes))
	}
	return r
}
