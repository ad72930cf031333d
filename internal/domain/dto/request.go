// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// ItemSpec describes one cargo item line in a recommendation request.
// Dimensions are centimeters, weight is kilograms.
//
// @Description Cargo item with dimensions, weight, and quantity
type ItemSpec struct {
	ID       string  `json:"id" binding:"required" example:"pallet-a"`
	Name     string  `json:"name,omitempty" example:"Euro pallet"`
	Length   float64 `json:"length" binding:"required,gt=0" example:"120"`
	Width    float64 `json:"width" binding:"required,gt=0" example:"80"`
	Height   float64 `json:"height" binding:"required,gt=0" example:"100"`
	Weight   float64 `json:"weight" binding:"required,gt=0" example:"250"`
	Quantity int     `json:"quantity,omitempty" example:"4" minimum:"1"`
	// UnitValue is an optional declared value used for reporting only.
	UnitValue float64 `json:"unit_value,omitempty" example:"1500"`
} // @name ItemSpec

// ContainerSpec describes one container candidate supplied inline with a
// request. When omitted, the server catalog is used instead.
//
// @Description Container candidate with interior dimensions and cost profile
type ContainerSpec struct {
	ID        string  `json:"id" binding:"required" example:"20ft-standard"`
	Name      string  `json:"name,omitempty" example:"20ft Standard"`
	Length    float64 `json:"length" binding:"required,gt=0" example:"589"`
	Width     float64 `json:"width" binding:"required,gt=0" example:"235"`
	Height    float64 `json:"height" binding:"required,gt=0" example:"239"`
	MaxWeight float64 `json:"max_weight" binding:"required,gt=0" example:"28200"`
	CostPerKm float64 `json:"cost_per_km,omitempty" example:"1.2"`
	// FuelEfficiency is kilometers per liter for the carrying vehicle.
	FuelEfficiency float64 `json:"fuel_efficiency,omitempty" example:"3.5"`
} // @name ContainerSpec

// RecommendOptions tunes a single recommendation run. All fields are
// optional; zero values fall back to server configuration.
type RecommendOptions struct {
	// Strategies restricts the sorting strategies to run, by name.
	Strategies []string `json:"strategies,omitempty" example:"volume-desc,weight-desc"`
	// Algorithms restricts the placement algorithms to run, by name.
	Algorithms []string `json:"algorithms,omitempty" example:"bottom-left-fill"`
	// MaxAlternatives caps the alternative recommendations returned.
	MaxAlternatives *int `json:"max_alternatives,omitempty" example:"3"`
	// TimeBudgetMs bounds the optimization wall clock in milliseconds.
	TimeBudgetMs int `json:"time_budget_ms,omitempty" example:"500"`
	// ScoringWeights overrides the composite-score weights for this request.
	ScoringWeights *model.ScoringWeights `json:"scoring_weights,omitempty"`
} // @name RecommendOptions

// RecommendRequest is the JSON body of the recommendation endpoint.
//
// @Description Request for a ranked container recommendation
type RecommendRequest struct {
	Items []ItemSpec `json:"items" binding:"required,min=1,dive"`
	// Containers optionally overrides the server catalog for this request.
	Containers []ContainerSpec  `json:"containers,omitempty" binding:"omitempty,dive"`
	Options    RecommendOptions `json:"options,omitempty"`
} // @name RecommendRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNoItems is returned when the request has no items.
	ErrNoItems = &ValidationError{Field: "items", Message: "at least one item is required"}
)

func badDimension(kind string, index int, field string) *ValidationError {
	return &ValidationError{
		Field:   fmt.Sprintf("%s[%d].%s", kind, index, field),
		Message: "must be greater than 0",
	}
}

// Validate performs custom validation beyond the binding tags.
func (r *RecommendRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	for i, it := range r.Items {
		switch {
		case it.ID == "":
			return &ValidationError{Field: fmt.Sprintf("items[%d].id", i), Message: "is required"}
		case it.Length <= 0:
			return badDimension("items", i, "length")
		case it.Width <= 0:
			return badDimension("items", i, "width")
		case it.Height <= 0:
			return badDimension("items", i, "height")
		case it.Weight <= 0:
			return badDimension("items", i, "weight")
		case it.Quantity < 0:
			return &ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "must not be negative"}
		}
	}
	for i, c := range r.Containers {
		switch {
		case c.ID == "":
			return &ValidationError{Field: fmt.Sprintf("containers[%d].id", i), Message: "is required"}
		case c.Length <= 0:
			return badDimension("containers", i, "length")
		case c.Width <= 0:
			return badDimension("containers", i, "width")
		case c.Height <= 0:
			return badDimension("containers", i, "height")
		case c.MaxWeight <= 0:
			return badDimension("containers", i, "max_weight")
		}
	}
	if w := r.Options.ScoringWeights; w != nil && !w.Valid() {
		return &ValidationError{
			Field:   "options.scoring_weights",
			Message: "weights must be non-negative with a positive sum",
		}
	}
	return nil
}

// ToModel converts the request payload into domain types. A missing quantity
// defaults to one unit.
func (r *RecommendRequest) ToModel() ([]model.Item, []model.Container) {
	items := make([]model.Item, 0, len(r.Items))
	for _, it := range r.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, model.Item{
			ID:        it.ID,
			Name:      it.Name,
			Length:    it.Length,
			Width:     it.Width,
			Height:    it.Height,
			Weight:    it.Weight,
			Quantity:  qty,
			UnitValue: it.UnitValue,
		})
	}

	containers := make([]model.Container, 0, len(r.Containers))
	for _, c := range r.Containers {
		containers = append(containers, model.Container{
			ID:             c.ID,
			Name:           c.Name,
			Length:         c.Length,
			Width:          c.Width,
			Height:         c.Height,
			MaxWeight:      c.MaxWeight,
			CostPerKm:      c.CostPerKm,
			FuelEfficiency: c.FuelEfficiency,
		})
	}
	return items, containers
}

// UpdateContainersRequest is the JSON body for replacing the container catalog.
type UpdateContainersRequest struct {
	// Containers is the full replacement catalog.
	Containers []ContainerSpec `json:"containers" binding:"required,min=1,dive"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateContainersRequest

// Validate performs custom validation on the catalog update.
func (r *UpdateContainersRequest) Validate() error {
	if len(r.Containers) == 0 {
		return &ValidationError{Field: "containers", Message: "at least one container is required"}
	}
	seen := make(map[string]bool, len(r.Containers))
	for i, c := range r.Containers {
		switch {
		case c.ID == "":
			return &ValidationError{Field: fmt.Sprintf("containers[%d].id", i), Message: "is required"}
		case seen[c.ID]:
			return &ValidationError{Field: fmt.Sprintf("containers[%d].id", i), Message: "is duplicated"}
		case c.Length <= 0:
			return badDimension("containers", i, "length")
		case c.Width <= 0:
			return badDimension("containers", i, "width")
		case c.Height <= 0:
			return badDimension("containers", i, "height")
		case c.MaxWeight <= 0:
			return badDimension("containers", i, "max_weight")
		}
		seen[c.ID] = true
	}
	return nil
}

// ToModel converts the catalog update into domain containers.
func (r *UpdateContainersRequest) ToModel() []model.Container {
	containers := make([]model.Container, 0, len(r.Containers))
	for _, c := range r.Containers {
		containers = append(containers, model.Container{
			ID:             c.ID,
			Name:           c.Name,
			Length:         c.Length,
			Width:          c.Width,
			Height:         c.Height,
			MaxWeight:      c.MaxWeight,
			CostPerKm:      c.CostPerKm,
			FuelEfficiency: c.FuelEfficiency,
		})
	}
	return containers
}
