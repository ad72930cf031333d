// Package service implements the business operations of the load plan
// service: container recommendation, catalog management, and history.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/loadplan-service/internal/domain/model"
	"github.com/guttosm/loadplan-service/internal/metrics"
	"github.com/guttosm/loadplan-service/internal/optimizer"
	"github.com/guttosm/loadplan-service/internal/packing"
)

var (
	// ErrNoItems is returned when a recommendation is requested without items.
	ErrNoItems = errors.New("no items to place")
	// ErrNoContainers is returned when no container candidates are available.
	ErrNoContainers = errors.New("no container candidates")
)

// RequestOverrides narrows a single run below the service defaults.
// Zero values mean "use the configured default".
type RequestOverrides struct {
	// Strategies and Algorithms restrict the sweep, by registry name.
	Strategies []string
	Algorithms []string
	// MaxAlternatives overrides the alternative count when non-nil.
	MaxAlternatives *int
	// TimeBudget overrides the sweep wall-clock budget when positive.
	TimeBudget time.Duration
	// ScoringWeights overrides the composite-score weights when non-nil and
	// valid.
	ScoringWeights *model.ScoringWeights
}

// Recommender defines the container recommendation operation.
type Recommender interface {
	Recommend(ctx context.Context, items []model.Item, catalog []model.Container, overrides RequestOverrides) (model.Plan, error)
}

// Option configures a RecommenderService.
type Option func(*RecommenderService)

// RecommenderService implements Recommender on top of the multi-pass
// optimizer: every sorting strategy is crossed with every placement
// algorithm per container candidate, and the selector ranks the outcomes.
type RecommenderService struct {
	workers         int
	timeBudget      time.Duration
	weights         model.ScoringWeights
	maxAlternatives int
	maxContainers   int
}

// NewRecommenderService creates a recommender with the given options.
func NewRecommenderService(opts ...Option) *RecommenderService {
	cfg := optimizer.DefaultSelectorConfig()
	s := &RecommenderService{
		weights:         cfg.Weights,
		maxAlternatives: cfg.MaxAlternatives,
		maxContainers:   cfg.MaxContainers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithWorkers bounds the optimizer worker pool.
func WithWorkers(n int) Option {
	return func(s *RecommenderService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithTimeBudget sets the default wall-clock budget per sweep.
func WithTimeBudget(d time.Duration) Option {
	return func(s *RecommenderService) {
		if d > 0 {
			s.timeBudget = d
		}
	}
}

// WithScoringWeights sets the composite-score weights. Invalid weights are
// ignored in favor of the defaults.
func WithScoringWeights(w model.ScoringWeights) Option {
	return func(s *RecommenderService) {
		if w.Valid() {
			s.weights = w
		}
	}
}

// WithMaxAlternatives caps the alternative recommendations returned.
func WithMaxAlternatives(n int) Option {
	return func(s *RecommenderService) {
		if n >= 0 {
			s.maxAlternatives = n
		}
	}
}

// WithMaxFallbackContainers caps the total containers a multi-container
// plan may accumulate. 1 disables the fallback.
func WithMaxFallbackContainers(n int) Option {
	return func(s *RecommenderService) {
		if n >= 1 {
			s.maxContainers = n
		}
	}
}

// Recommend validates the inputs, runs the sweep, and returns the assembled
// plan. Input errors fail fast; fit problems are reported inside the plan.
func (s *RecommenderService) Recommend(ctx context.Context, items []model.Item, catalog []model.Container, overrides RequestOverrides) (model.Plan, error) {
	start := time.Now()

	if len(items) == 0 {
		return model.Plan{}, ErrNoItems
	}
	if len(catalog) == 0 {
		return model.Plan{}, ErrNoContainers
	}

	strategies, err := packing.StrategiesByName(overrides.Strategies)
	if err != nil {
		return model.Plan{}, err
	}
	algorithms, err := packing.AlgorithmsByName(overrides.Algorithms)
	if err != nil {
		return model.Plan{}, err
	}

	budget := s.timeBudget
	if overrides.TimeBudget > 0 {
		budget = overrides.TimeBudget
	}
	alternatives := s.maxAlternatives
	if overrides.MaxAlternatives != nil && *overrides.MaxAlternatives >= 0 {
		alternatives = *overrides.MaxAlternatives
	}
	weights := s.weights
	if overrides.ScoringWeights != nil && overrides.ScoringWeights.Valid() {
		weights = *overrides.ScoringWeights
	}

	opt := optimizer.NewMultiPassOptimizer(optimizer.Config{
		Strategies: strategies,
		Algorithms: algorithms,
		Workers:    s.workers,
		TimeBudget: budget,
	})
	sel := optimizer.NewSelector(opt, optimizer.SelectorConfig{
		Weights:         weights,
		MaxAlternatives: alternatives,
		MaxContainers:   s.maxContainers,
	})

	plan := sel.Recommend(ctx, items, catalog)
	metrics.RecordRecommendation(time.Since(start), string(plan.Status))
	return plan, nil
}
