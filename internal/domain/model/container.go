package model

// Container represents a box-shaped cargo space (truck or container type)
// items are packed into.
//
// @Description Container candidate with interior dimensions, weight capacity, and cost attributes
// @Example {"id": "box-truck-7m", "length": 700, "width": 240, "height": 240, "max_weight": 8000, "cost_per_km": 1.8, "fuel_efficiency": 6.5}
type Container struct {
	// ID identifies the container type in the catalog
	ID string `json:"id" example:"box-truck-7m"`
	// Name is an optional human-readable label
	Name string `json:"name,omitempty" example:"7m box truck"`
	// Length of the interior in centimeters
	Length float64 `json:"length" example:"700"`
	// Width of the interior in centimeters
	Width float64 `json:"width" example:"240"`
	// Height of the interior in centimeters
	Height float64 `json:"height" example:"240"`
	// MaxWeight is the payload capacity in kilograms
	MaxWeight float64 `json:"max_weight" example:"8000"`
	// CostPerKm is the operating cost per kilometer
	CostPerKm float64 `json:"cost_per_km" example:"1.8"`
	// FuelEfficiency is the fuel economy in kilometers per liter
	FuelEfficiency float64 `json:"fuel_efficiency" example:"6.5"`
}

// Volume returns the interior volume in cubic centimeters.
func (c Container) Volume() float64 {
	return c.Length * c.Width * c.Height
}

// Fits reports whether a single unit of the item fits inside the container
// interior in at least one of the six axis-aligned orientations, ignoring
// other cargo.
func (c Container) Fits(i Item) bool {
	for _, o := range Orientations {
		l, w, h := o.Apply(i.Length, i.Width, i.Height)
		if l <= c.Length && w <= c.Width && h <= c.Height {
			return true
		}
	}
	return false
}
