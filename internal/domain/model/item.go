// Package model defines the core domain entities for the loadplan service.
package model

import "sort"

// Item represents a box-shaped cargo item requested for loading.
//
// @Description Cargo item with external dimensions in centimeters and weight in kilograms
// @Example {"id": "carton-a", "length": 50, "width": 40, "height": 30, "weight": 20, "quantity": 10}
type Item struct {
	// ID identifies the item within a request
	ID string `json:"id" example:"carton-a"`
	// Name is an optional human-readable label
	Name string `json:"name,omitempty" example:"Standard carton"`
	// Length in centimeters
	Length float64 `json:"length" example:"50"`
	// Width in centimeters
	Width float64 `json:"width" example:"40"`
	// Height in centimeters
	Height float64 `json:"height" example:"30"`
	// Weight in kilograms per unit
	Weight float64 `json:"weight" example:"20"`
	// Quantity is the number of units requested
	Quantity int `json:"quantity" example:"10"`
	// UnitValue is the optional declared value per unit
	UnitValue float64 `json:"unit_value,omitempty" example:"150"`
}

// Volume returns the volume of a single unit in cubic centimeters.
func (i Item) Volume() float64 {
	return i.Length * i.Width * i.Height
}

// Footprint returns the base area (length x width) of a single unit.
func (i Item) Footprint() float64 {
	return i.Length * i.Width
}

// Density returns the weight per cubic centimeter of a single unit.
func (i Item) Density() float64 {
	v := i.Volume()
	if v <= 0 {
		return 0
	}
	return i.Weight / v
}

// LongestDimension returns the largest of the three dimensions.
func (i Item) LongestDimension() float64 {
	d := i.Length
	if i.Width > d {
		d = i.Width
	}
	if i.Height > d {
		d = i.Height
	}
	return d
}

// ItemUnit is a single physical unit of an Item. Quantities are expanded to
// unit granularity before sorting and placement so partial fits can be
// reported per unit.
type ItemUnit struct {
	Item
	// UnitIndex distinguishes units of the same item (0-based).
	UnitIndex int `json:"unit_index"`
}

// UnitKey orders units of the same item deterministically.
func (u ItemUnit) less(v ItemUnit) bool {
	if u.ID != v.ID {
		return u.ID < v.ID
	}
	return u.UnitIndex < v.UnitIndex
}

// ExpandUnits expands item quantities into individual ordered units.
// The result is sorted by (item id, unit index) so downstream ordering is
// deterministic regardless of input order.
func ExpandUnits(items []Item) []ItemUnit {
	total := 0
	for _, it := range items {
		if it.Quantity > 0 {
			total += it.Quantity
		}
	}

	units := make([]ItemUnit, 0, total)
	for _, it := range items {
		for n := 0; n < it.Quantity; n++ {
			units = append(units, ItemUnit{Item: it, UnitIndex: n})
		}
	}

	sort.Slice(units, func(a, b int) bool { return units[a].less(units[b]) })
	return units
}
