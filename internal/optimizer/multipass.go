// Package optimizer runs the multi-pass sweep over strategy and algorithm
// combinations, scores the packing attempts, and assembles the ranked
// container recommendations.
package optimizer

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/loadplan-service/internal/domain/model"
	"github.com/guttosm/loadplan-service/internal/metrics"
	"github.com/guttosm/loadplan-service/internal/packing"
)

// Config controls one multi-pass sweep.
type Config struct {
	// Strategies and Algorithms select the combinations to run. Empty means
	// the full registry.
	Strategies []packing.SortingStrategy
	Algorithms []packing.PlacementAlgorithm
	// Workers bounds the worker pool. Zero means GOMAXPROCS.
	Workers int
	// TimeBudget bounds the wall clock of a whole sweep. Zero means no
	// budget.
	TimeBudget time.Duration
}

// DefaultConfig runs every registered combination on all cores.
func DefaultConfig() Config {
	return Config{
		Strategies: packing.Strategies(),
		Algorithms: packing.Algorithms(),
	}
}

// MultiPassOptimizer executes the cross-product of sorting strategies and
// placement algorithms for a container candidate. Every run works on its own
// copy of the ordered units and its own spatial structures, so runs execute
// in parallel without shared mutable state.
type MultiPassOptimizer struct {
	cfg Config
}

// NewMultiPassOptimizer creates an optimizer, filling config defaults.
func NewMultiPassOptimizer(cfg Config) *MultiPassOptimizer {
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = packing.Strategies()
	}
	if len(cfg.Algorithms) == 0 {
		cfg.Algorithms = packing.Algorithms()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return &MultiPassOptimizer{cfg: cfg}
}

// Combinations returns the number of runs per container candidate.
func (o *MultiPassOptimizer) Combinations() int {
	return len(o.cfg.Strategies) * len(o.cfg.Algorithms)
}

type sweepJob struct {
	strategy  packing.SortingStrategy
	algorithm packing.PlacementAlgorithm
}

// Sweep runs all combinations against one container and returns the
// completed results plus whether the time budget expired before every
// combination finished. Results are sorted deterministically by
// (strategy, algorithm) so the output is independent of completion order.
func (o *MultiPassOptimizer) Sweep(ctx context.Context, units []model.ItemUnit, c model.Container) ([]model.PackingResult, bool) {
	if o.cfg.TimeBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.TimeBudget)
		defer cancel()
	}

	jobs := make(chan sweepJob)
	resultCh := make(chan model.PackingResult, o.Combinations())
	timedOut := false
	var timedOutMu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < o.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				start := time.Now()
				ordered := job.strategy.Order(units)
				res, err := job.algorithm.Pack(ctx, ordered, c)
				if err != nil {
					if errors.Is(err, context.DeadlineExceeded) {
						timedOutMu.Lock()
						timedOut = true
						timedOutMu.Unlock()
					}
					metrics.RecordAlgorithmRun(job.algorithm.Name(), time.Since(start), "cancelled")
					continue
				}
				res.Strategy = job.strategy.Name()
				metrics.RecordAlgorithmRun(job.algorithm.Name(), time.Since(start), "completed")
				resultCh <- res
			}
		}()
	}

dispatch:
	for _, s := range o.cfg.Strategies {
		for _, a := range o.cfg.Algorithms {
			select {
			case jobs <- sweepJob{strategy: s, algorithm: a}:
			case <-ctx.Done():
				timedOutMu.Lock()
				timedOut = timedOut || errors.Is(ctx.Err(), context.DeadlineExceeded)
				timedOutMu.Unlock()
				break dispatch
			}
		}
	}
	close(jobs)
	wg.Wait()
	close(resultCh)

	results := make([]model.PackingResult, 0, o.Combinations())
	for r := range resultCh {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Strategy != results[j].Strategy {
			return results[i].Strategy < results[j].Strategy
		}
		return results[i].Algorithm < results[j].Algorithm
	})

	timedOutMu.Lock()
	defer timedOutMu.Unlock()
	return results, timedOut
}
