//go:build !integration

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientation_Apply(t *testing.T) {
	tests := []struct {
		name        string
		orientation Orientation
		wantL       float64
		wantW       float64
		wantH       float64
	}{
		{name: "LWH keeps order", orientation: OrientLWH, wantL: 1, wantW: 2, wantH: 3},
		{name: "WLH swaps length and width", orientation: OrientWLH, wantL: 2, wantW: 1, wantH: 3},
		{name: "LHW swaps width and height", orientation: OrientLHW, wantL: 1, wantW: 3, wantH: 2},
		{name: "HWL swaps length and height", orientation: OrientHWL, wantL: 3, wantW: 2, wantH: 1},
		{name: "WHL cycles dimensions", orientation: OrientWHL, wantL: 2, wantW: 3, wantH: 1},
		{name: "HLW cycles dimensions", orientation: OrientHLW, wantL: 3, wantW: 1, wantH: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, w, h := tt.orientation.Apply(1, 2, 3)
			assert.Equal(t, tt.wantL, l)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestOrientation_Apply_PreservesVolume(t *testing.T) {
	for _, o := range Orientations {
		l, w, h := o.Apply(5, 7, 11)
		assert.Equal(t, float64(5*7*11), l*w*h, "orientation %s", o)
	}
}

func TestOrientation_String(t *testing.T) {
	names := map[Orientation]string{
		OrientLWH: "LWH",
		OrientWLH: "WLH",
		OrientLHW: "LHW",
		OrientHWL: "HWL",
		OrientWHL: "WHL",
		OrientHLW: "HLW",
	}
	for o, want := range names {
		assert.Equal(t, want, o.String())
	}
}

func TestPlacedItem_Overlaps(t *testing.T) {
	unit := ItemUnit{Item: Item{ID: "a", Length: 10, Width: 10, Height: 10}}

	tests := []struct {
		name string
		a    PlacedItem
		b    PlacedItem
		want bool
	}{
		{
			name: "identical placement overlaps",
			a:    PlacedItem{Unit: unit, X: 0, Y: 0, Z: 0},
			b:    PlacedItem{Unit: unit, X: 0, Y: 0, Z: 0},
			want: true,
		},
		{
			name: "touching faces do not overlap",
			a:    PlacedItem{Unit: unit, X: 0, Y: 0, Z: 0},
			b:    PlacedItem{Unit: unit, X: 10, Y: 0, Z: 0},
			want: false,
		},
		{
			name: "partial intersection overlaps",
			a:    PlacedItem{Unit: unit, X: 0, Y: 0, Z: 0},
			b:    PlacedItem{Unit: unit, X: 5, Y: 5, Z: 5},
			want: true,
		},
		{
			name: "stacked boxes do not overlap",
			a:    PlacedItem{Unit: unit, X: 0, Y: 0, Z: 0},
			b:    PlacedItem{Unit: unit, X: 0, Y: 0, Z: 10},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestPlacedItem_InBounds(t *testing.T) {
	container := Container{Length: 100, Width: 50, Height: 40}
	unit := ItemUnit{Item: Item{ID: "a", Length: 20, Width: 20, Height: 20}}

	tests := []struct {
		name   string
		placed PlacedItem
		want   bool
	}{
		{
			name:   "at origin",
			placed: PlacedItem{Unit: unit, X: 0, Y: 0, Z: 0},
			want:   true,
		},
		{
			name:   "flush with far walls",
			placed: PlacedItem{Unit: unit, X: 80, Y: 30, Z: 20},
			want:   true,
		},
		{
			name:   "past the length wall",
			placed: PlacedItem{Unit: unit, X: 81, Y: 0, Z: 0},
			want:   false,
		},
		{
			name:   "negative position",
			placed: PlacedItem{Unit: unit, X: -1, Y: 0, Z: 0},
			want:   false,
		},
		{
			name:   "above the ceiling",
			placed: PlacedItem{Unit: unit, X: 0, Y: 0, Z: 21},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.placed.InBounds(container))
		})
	}
}

func TestPlacedItem_Dimensions(t *testing.T) {
	unit := ItemUnit{Item: Item{Length: 10, Width: 20, Height: 30}}
	p := PlacedItem{Unit: unit, Orientation: OrientWLH}

	l, w, h := p.Dimensions()
	assert.Equal(t, 20.0, l)
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 30.0, h)
}

func TestPackingResult_FullFit(t *testing.T) {
	unit := ItemUnit{Item: Item{ID: "a"}}

	tests := []struct {
		name   string
		result PackingResult
		want   bool
	}{
		{
			name:   "all placed",
			result: PackingResult{Placed: []PlacedItem{{Unit: unit}}},
			want:   true,
		},
		{
			name:   "some unfitted",
			result: PackingResult{Placed: []PlacedItem{{Unit: unit}}, Unfitted: []ItemUnit{unit}},
			want:   false,
		},
		{
			name:   "nothing placed",
			result: PackingResult{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.FullFit())
		})
	}
}

func TestPackingResult_FloorFraction(t *testing.T) {
	unit := ItemUnit{Item: Item{ID: "a", Length: 10, Width: 10, Height: 10}}

	tests := []struct {
		name   string
		placed []PlacedItem
		want   float64
	}{
		{
			name:   "no placements",
			placed: nil,
			want:   0,
		},
		{
			name: "all on floor",
			placed: []PlacedItem{
				{Unit: unit, Z: 0},
				{Unit: unit, X: 10, Z: 0},
			},
			want: 1,
		},
		{
			name: "rounding noise still counts as floor",
			placed: []PlacedItem{
				{Unit: unit, Z: 1e-9},
			},
			want: 1,
		},
		{
			name: "half stacked",
			placed: []PlacedItem{
				{Unit: unit, Z: 0},
				{Unit: unit, Z: 10},
			},
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PackingResult{Placed: tt.placed}
			assert.Equal(t, tt.want, r.FloorFraction())
		})
	}
}

func TestPackingResult_PlacedWeight(t *testing.T) {
	r := PackingResult{Placed: []PlacedItem{
		{Unit: ItemUnit{Item: Item{Weight: 100}}},
		{Unit: ItemUnit{Item: Item{Weight: 250}}},
	}}
	assert.Equal(t, 350.0, r.PlacedWeight())
}
