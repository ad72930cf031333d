// Package packing implements the 3D placement engine: pre-sort strategies,
// placement algorithms, and the spatial support structures they maintain.
package packing

import "github.com/guttosm/loadplan-service/internal/domain/model"

// eps absorbs float64 rounding in geometric comparisons.
const eps = 1e-6

// point is a candidate anchor position inside a container.
type point struct {
	x, y, z float64
}

// box is an axis-aligned box with its minimum corner at (x, y, z).
type box struct {
	x, y, z float64
	l, w, h float64
}

func (b box) x2() float64 { return b.x + b.l }
func (b box) y2() float64 { return b.y + b.w }
func (b box) z2() float64 { return b.z + b.h }

func (b box) volume() float64 { return b.l * b.w * b.h }

// intersects reports positive-volume overlap. Touching faces do not count.
func (b box) intersects(o box) bool {
	return b.x < o.x2()-eps && o.x < b.x2()-eps &&
		b.y < o.y2()-eps && o.y < b.y2()-eps &&
		b.z < o.z2()-eps && o.z < b.z2()-eps
}

// contains reports whether the point lies inside the box (minimum faces
// inclusive, maximum faces exclusive).
func (b box) contains(p point) bool {
	return p.x >= b.x-eps && p.x < b.x2()-eps &&
		p.y >= b.y-eps && p.y < b.y2()-eps &&
		p.z >= b.z-eps && p.z < b.z2()-eps
}

// overlap1D returns the overlap length of intervals [a1,a2) and [b1,b2).
func overlap1D(a1, a2, b1, b2 float64) float64 {
	lo := a1
	if b1 > lo {
		lo = b1
	}
	hi := a2
	if b2 < hi {
		hi = b2
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// orientedBox builds the box occupied by a unit placed at p in orientation o.
func orientedBox(u model.ItemUnit, o model.Orientation, p point) box {
	l, w, h := o.Apply(u.Length, u.Width, u.Height)
	return box{x: p.x, y: p.y, z: p.z, l: l, w: w, h: h}
}

// pointLess orders points bottom-up, then front-to-back, then left-to-right.
// This is the canonical anchor ordering shared by the placement algorithms.
func pointLess(a, b point) bool {
	if a.z != b.z {
		return a.z < b.z
	}
	if a.y != b.y {
		return a.y < b.y
	}
	return a.x < b.x
}

func samePoint(a, b point) bool {
	return absf(a.x-b.x) < eps && absf(a.y-b.y) < eps && absf(a.z-b.z) < eps
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
