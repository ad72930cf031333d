//go:build !integration

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_Volume(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want float64
	}{
		{
			name: "standard carton",
			item: Item{Length: 50, Width: 40, Height: 30},
			want: 60000,
		},
		{
			name: "unit cube",
			item: Item{Length: 1, Width: 1, Height: 1},
			want: 1,
		},
		{
			name: "zero dimension",
			item: Item{Length: 50, Width: 0, Height: 30},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Volume())
		})
	}
}

func TestItem_Density(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want float64
	}{
		{
			name: "normal density",
			item: Item{Length: 10, Width: 10, Height: 10, Weight: 500},
			want: 0.5,
		},
		{
			name: "zero volume returns zero",
			item: Item{Length: 0, Width: 10, Height: 10, Weight: 500},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Density())
		})
	}
}

func TestItem_LongestDimension(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want float64
	}{
		{
			name: "length longest",
			item: Item{Length: 120, Width: 80, Height: 100},
			want: 120,
		},
		{
			name: "width longest",
			item: Item{Length: 80, Width: 120, Height: 100},
			want: 120,
		},
		{
			name: "height longest",
			item: Item{Length: 80, Width: 100, Height: 120},
			want: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.LongestDimension())
		})
	}
}

func TestExpandUnits(t *testing.T) {
	tests := []struct {
		name      string
		items     []Item
		wantTotal int
	}{
		{
			name: "expands quantities to units",
			items: []Item{
				{ID: "a", Quantity: 3},
				{ID: "b", Quantity: 2},
			},
			wantTotal: 5,
		},
		{
			name: "zero quantity yields no units",
			items: []Item{
				{ID: "a", Quantity: 0},
				{ID: "b", Quantity: 1},
			},
			wantTotal: 1,
		},
		{
			name:      "empty input",
			items:     []Item{},
			wantTotal: 0,
		},
		{
			name: "negative quantity ignored",
			items: []Item{
				{ID: "a", Quantity: -2},
				{ID: "b", Quantity: 2},
			},
			wantTotal: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units := ExpandUnits(tt.items)
			assert.Len(t, units, tt.wantTotal)
		})
	}
}

func TestExpandUnits_DeterministicOrder(t *testing.T) {
	// Input order must not influence the unit order.
	forward := ExpandUnits([]Item{
		{ID: "a", Quantity: 2},
		{ID: "b", Quantity: 2},
	})
	reversed := ExpandUnits([]Item{
		{ID: "b", Quantity: 2},
		{ID: "a", Quantity: 2},
	})

	assert.Equal(t, forward, reversed)
	assert.Equal(t, "a", forward[0].ID)
	assert.Equal(t, 0, forward[0].UnitIndex)
	assert.Equal(t, "a", forward[1].ID)
	assert.Equal(t, 1, forward[1].UnitIndex)
	assert.Equal(t, "b", forward[2].ID)
}
