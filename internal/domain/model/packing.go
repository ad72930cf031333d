package model

// Orientation is one of the six axis-aligned permutations of an item's
// (length, width, height) dimensions. The zero value keeps the item as
// specified.
type Orientation int

const (
	// OrientLWH keeps the original (L, W, H) order.
	OrientLWH Orientation = iota
	// OrientWLH swaps length and width (rotation about the vertical axis).
	OrientWLH
	// OrientLHW lays the item on its side, width up.
	OrientLHW
	// OrientHWL lays the item on its side, length up.
	OrientHWL
	// OrientWHL stands the item with width along the container length.
	OrientWHL
	// OrientHLW stands the item with height along the container length.
	OrientHLW
)

// Orientations lists all six axis-aligned orientations in deterministic order.
var Orientations = [6]Orientation{OrientLWH, OrientWLH, OrientLHW, OrientHWL, OrientWHL, OrientHLW}

// UprightOrientations are the two rotations about the vertical axis, keeping
// the item's own height pointing up. Algorithms that do not tip items over
// restrict themselves to this set.
var UprightOrientations = [2]Orientation{OrientLWH, OrientWLH}

// Apply permutes the given dimensions according to the orientation.
func (o Orientation) Apply(l, w, h float64) (float64, float64, float64) {
	switch o {
	case OrientWLH:
		return w, l, h
	case OrientLHW:
		return l, h, w
	case OrientHWL:
		return h, w, l
	case OrientWHL:
		return w, h, l
	case OrientHLW:
		return h, l, w
	default:
		return l, w, h
	}
}

// String returns the permutation name, e.g. "LWH".
func (o Orientation) String() string {
	switch o {
	case OrientWLH:
		return "WLH"
	case OrientLHW:
		return "LHW"
	case OrientHWL:
		return "HWL"
	case OrientWHL:
		return "WHL"
	case OrientHLW:
		return "HLW"
	default:
		return "LWH"
	}
}

// PlacedItem is one item unit placed inside a container. X runs along the
// container length, Y along the width, and Z along the height; the position
// is the unit's minimum corner.
type PlacedItem struct {
	Unit        ItemUnit    `json:"unit"`
	Orientation Orientation `json:"orientation"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Z           float64     `json:"z"`
}

// Dimensions returns the unit's dimensions after applying the orientation.
func (p PlacedItem) Dimensions() (l, w, h float64) {
	return p.Orientation.Apply(p.Unit.Length, p.Unit.Width, p.Unit.Height)
}

// Overlaps reports whether two placed boxes share positive volume.
func (p PlacedItem) Overlaps(q PlacedItem) bool {
	pl, pw, ph := p.Dimensions()
	ql, qw, qh := q.Dimensions()
	return p.X < q.X+ql && q.X < p.X+pl &&
		p.Y < q.Y+qw && q.Y < p.Y+pw &&
		p.Z < q.Z+qh && q.Z < p.Z+ph
}

// InBounds reports whether the placed box lies fully inside the container.
func (p PlacedItem) InBounds(c Container) bool {
	l, w, h := p.Dimensions()
	return p.X >= 0 && p.Y >= 0 && p.Z >= 0 &&
		p.X+l <= c.Length+geomEps &&
		p.Y+w <= c.Width+geomEps &&
		p.Z+h <= c.Height+geomEps
}

// geomEps absorbs float64 rounding when boxes meet container walls exactly.
const geomEps = 1e-6

// PackingResult is the outcome of one placement algorithm run against one
// container candidate.
type PackingResult struct {
	ContainerID string `json:"container_id"`
	// Strategy and Algorithm identify the combination that produced the result.
	Strategy  string `json:"strategy"`
	Algorithm string `json:"algorithm"`

	Placed   []PlacedItem `json:"placed"`
	Unfitted []ItemUnit   `json:"unfitted"`

	// VolumeUtilization is the percentage of container volume consumed.
	VolumeUtilization float64 `json:"volume_utilization"`
	// WeightUtilization is the percentage of weight capacity consumed.
	WeightUtilization float64 `json:"weight_utilization"`
	// StabilityScore is the mean base-support ratio of placed units in [0,1].
	StabilityScore float64 `json:"stability_score"`
	// FittedFraction is placed units over requested units in [0,1].
	FittedFraction float64 `json:"fitted_fraction"`
}

// FullFit reports whether every requested unit was placed.
func (r PackingResult) FullFit() bool {
	return len(r.Unfitted) == 0 && len(r.Placed) > 0
}

// PlacedWeight returns the total weight of placed units in kilograms.
func (r PackingResult) PlacedWeight() float64 {
	var w float64
	for _, p := range r.Placed {
		w += p.Unit.Weight
	}
	return w
}

// FloorFraction returns the fraction of placed units resting directly on the
// container floor. Used as the handling-efficiency proxy: floor-level cargo
// loads faster than stacked cargo.
func (r PackingResult) FloorFraction() float64 {
	if len(r.Placed) == 0 {
		return 0
	}
	onFloor := 0
	for _, p := range r.Placed {
		if p.Z <= geomEps {
			onFloor++
		}
	}
	return float64(onFloor) / float64(len(r.Placed))
}
