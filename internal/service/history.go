package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/loadplan-service/internal/domain/model"
	"github.com/guttosm/loadplan-service/internal/repository"
)

// HistoryService records recommendation outcomes and serves history queries.
type HistoryService interface {
	// Record stores the outcome of one recommendation run. The write happens
	// asynchronously; history is non-critical and never blocks a response.
	Record(requestID string, itemCount, unitCount int, plan model.Plan, duration time.Duration)

	// Query retrieves history records matching the options.
	Query(ctx context.Context, opts repository.HistoryQueryOptions) ([]*repository.RecommendationRecord, error)

	// Count returns the count of history records matching the options.
	Count(ctx context.Context, opts repository.HistoryQueryOptions) (int64, error)
}

// HistoryServiceImpl implements HistoryService over the repository.
type HistoryServiceImpl struct {
	repo         repository.HistoryRepositoryInterface
	writeTimeout time.Duration
}

// NewHistoryService creates a new history service. A nil repository yields a
// no-op recorder.
func NewHistoryService(repo repository.HistoryRepositoryInterface) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		repo:         repo,
		writeTimeout: 5 * time.Second,
	}
}

// Record stores the outcome of one recommendation run asynchronously.
func (s *HistoryServiceImpl) Record(requestID string, itemCount, unitCount int, plan model.Plan, duration time.Duration) {
	if s.repo == nil {
		return
	}

	record := &repository.RecommendationRecord{
		RequestID:  requestID,
		ItemCount:  itemCount,
		UnitCount:  unitCount,
		Status:     string(plan.Status),
		TimedOut:   plan.TimedOut,
		DurationMs: duration.Milliseconds(),
		CreatedAt:  time.Now(),
	}
	if len(plan.Recommendations) > 0 {
		record.ContainerID = plan.Recommendations[0].Container.ID
		record.Score = plan.Recommendations[0].Score
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
		defer cancel()
		if err := s.repo.Create(ctx, record); err != nil {
			log.Warn().Err(err).Str("request_id", requestID).Msg("failed to store recommendation history")
		}
	}()
}

// Query retrieves history records matching the options.
func (s *HistoryServiceImpl) Query(ctx context.Context, opts repository.HistoryQueryOptions) ([]*repository.RecommendationRecord, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Query(ctx, opts)
}

// Count returns the count of history records matching the options.
func (s *HistoryServiceImpl) Count(ctx context.Context, opts repository.HistoryQueryOptions) (int64, error) {
	if s.repo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	return s.repo.Count(ctx, opts)
}
