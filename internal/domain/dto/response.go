package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is unavailable.
	ErrCodeUnavailable = "service_unavailable"
)

// PlacementDTO is the position and rotation of one placed unit.
// @Description Position of a single placed cargo unit
type PlacementDTO struct {
	ItemID    string  `json:"item_id" example:"pallet-a"`
	UnitIndex int     `json:"unit_index" example:"0"`
	Rotation  string  `json:"rotation" example:"LWH"`
	X         float64 `json:"x" example:"0"`
	Y         float64 `json:"y" example:"0"`
	Z         float64 `json:"z" example:"0"`
	Length    float64 `json:"length" example:"120"`
	Width     float64 `json:"width" example:"80"`
	Height    float64 `json:"height" example:"100"`
} // @name Placement

// PackingResultDTO summarizes the winning packing attempt for a container.
// @Description Best packing attempt found for one container
type PackingResultDTO struct {
	Strategy          string         `json:"strategy" example:"volume-desc"`
	Algorithm         string         `json:"algorithm" example:"bottom-left-fill"`
	VolumeUtilization float64        `json:"volume_utilization" example:"82.5"`
	WeightUtilization float64        `json:"weight_utilization" example:"64.1"`
	StabilityScore    float64        `json:"stability_score" example:"0.93"`
	FittedUnits       int            `json:"fitted_units" example:"12"`
	UnfittedUnits     int            `json:"unfitted_units" example:"0"`
	Placements        []PlacementDTO `json:"placements,omitempty"`
} // @name PackingResult

// RecommendationDTO is one ranked container choice.
// @Description Ranked container recommendation
type RecommendationDTO struct {
	Rank      int              `json:"rank" example:"1"`
	Container ContainerSpec    `json:"container"`
	Score     float64          `json:"score" example:"0.87"`
	Result    PackingResultDTO `json:"result"`
} // @name Recommendation

// UnfittedUnitDTO identifies one cargo unit that no plan placed.
type UnfittedUnitDTO struct {
	ItemID    string `json:"item_id" example:"crate-b"`
	UnitIndex int    `json:"unit_index" example:"2"`
} // @name UnfittedUnit

// PlanResponse is the body of a successful recommendation call.
// @Description Ranked recommendation plan for a cargo manifest
type PlanResponse struct {
	// Status is ok, partial_fit, or no_feasible_container.
	Status          string              `json:"status" example:"ok"`
	TimedOut        bool                `json:"timed_out" example:"false"`
	Recommendations []RecommendationDTO `json:"recommendations"`
	// MultiContainer is present when a single container could not hold the
	// full manifest and a multi-container split was found.
	MultiContainer []RecommendationDTO `json:"multi_container,omitempty"`
	UnfittedUnits  []UnfittedUnitDTO   `json:"unfitted_units,omitempty"`
	// InfeasibleItems lists item ids that fit no catalog container at all.
	InfeasibleItems []string `json:"infeasible_items,omitempty" example:"oversize-coil"`
} // @name PlanResponse

// NewPlanResponse converts a domain plan into its transport shape.
func NewPlanResponse(plan model.Plan) PlanResponse {
	resp := PlanResponse{
		Status:          string(plan.Status),
		TimedOut:        plan.TimedOut,
		Recommendations: newRecommendationDTOs(plan.Recommendations),
		InfeasibleItems: plan.InfeasibleItems,
	}
	if len(plan.MultiContainer) > 0 {
		resp.MultiContainer = newRecommendationDTOs(plan.MultiContainer)
	}
	for _, u := range plan.UnfittedUnits {
		resp.UnfittedUnits = append(resp.UnfittedUnits, UnfittedUnitDTO{
			ItemID:    u.ID,
			UnitIndex: u.UnitIndex,
		})
	}
	return resp
}

func newRecommendationDTOs(recs []model.Recommendation) []RecommendationDTO {
	out := make([]RecommendationDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationDTO{
			Rank:      r.Rank,
			Container: newContainerSpec(r.Container),
			Score:     r.Score,
			Result:    newPackingResultDTO(r.Result),
		})
	}
	return out
}

func newContainerSpec(c model.Container) ContainerSpec {
	return ContainerSpec{
		ID:             c.ID,
		Name:           c.Name,
		Length:         c.Length,
		Width:          c.Width,
		Height:         c.Height,
		MaxWeight:      c.MaxWeight,
		CostPerKm:      c.CostPerKm,
		FuelEfficiency: c.FuelEfficiency,
	}
}

func newPackingResultDTO(r model.PackingResult) PackingResultDTO {
	dto := PackingResultDTO{
		Strategy:          r.Strategy,
		Algorithm:         r.Algorithm,
		VolumeUtilization: r.VolumeUtilization,
		WeightUtilization: r.WeightUtilization,
		StabilityScore:    r.StabilityScore,
		FittedUnits:       len(r.Placed),
		UnfittedUnits:     len(r.Unfitted),
	}
	for _, p := range r.Placed {
		l, w, h := p.Dimensions()
		dto.Placements = append(dto.Placements, PlacementDTO{
			ItemID:    p.Unit.ID,
			UnitIndex: p.Unit.UnitIndex,
			Rotation:  p.Orientation.String(),
			X:         p.X,
			Y:         p.Y,
			Z:         p.Z,
			Length:    l,
			Width:     w,
			Height:    h,
		})
	}
	return dto
}

// ContainerCatalogResponse is the body of the catalog read endpoint.
// @Description Active container catalog
type ContainerCatalogResponse struct {
	Containers []ContainerSpec `json:"containers"`
	Version    int             `json:"version,omitempty" example:"3"`
	UpdatedAt  time.Time       `json:"updated_at,omitempty"`
} // @name ContainerCatalogResponse

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (PlanResponse for the recommend endpoint)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-08-23T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"items[0].length: must be greater than 0"`
	// Details contains additional error details (optional)
	// Example: {"field": "error message"}
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-08-23T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}
