// Package sweep runs batches of otherwise-identical lap simulations that
// differ only in one swept vehicle parameter.
package sweep

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/lapsim/internal/sim"
	"github.com/san-kum/lapsim/internal/track"
	"github.com/san-kum/lapsim/internal/vehicle"
)

// Result is one sweep slot. Failures are isolated per slot: a failed scenario
// carries its error here and never disturbs the other slots.
type Result struct {
	Index   int
	Param   float64
	LapTime float64
	Err     error
}

// Runner dispatches independent lap simulations over a bounded worker pool.
// The base parameters and track are shared read-only; each scenario gets a
// private parameter copy with the swept field overridden.
type Runner struct {
	base    vehicle.Params
	track   *track.Track
	param   string
	dt      float64
	workers int
	logger  *zap.Logger
}

type Option func(*Runner)

func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithDt(dt float64) Option {
	return func(r *Runner) { r.dt = dt }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

func New(base vehicle.Params, tr *track.Track, param string, opts ...Option) *Runner {
	r := &Runner{
		base:    base,
		track:   tr,
		param:   param,
		dt:      sim.DefaultDt,
		workers: runtime.NumCPU(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one scenario per value and blocks until every worker has
// finished. Results are written into preallocated slots addressed by input
// index, so the output order always matches the input order regardless of
// scheduling. On cancellation all dispatched workers are still joined before
// returning; unfinished slots carry the context error.
func (r *Runner) Run(ctx context.Context, values []float64) ([]Result, error) {
	results := make([]Result, len(values))

	var g errgroup.Group
	g.SetLimit(r.workers)

	for i, value := range values {
		i, value := i, value
		results[i] = Result{Index: i, Param: value}

		g.Go(func() error {
			results[i].Err = r.runScenario(ctx, value, &results[i])
			return nil
		})
	}

	g.Wait()
	return results, ctx.Err()
}

func (r *Runner) runScenario(ctx context.Context, value float64, slot *Result) error {
	params := r.base
	if err := params.Set(r.param, value); err != nil {
		return err
	}

	s, err := sim.New(params, r.track, sim.WithDt(r.dt))
	if err != nil {
		return err
	}

	res, err := s.Run(ctx)
	if err != nil {
		r.logger.Warn("scenario failed",
			zap.Int("index", slot.Index),
			zap.Float64(r.param, value),
			zap.Error(err))
		return err
	}

	slot.LapTime = res.LapTime
	r.logger.Debug("scenario complete",
		zap.Int("index", slot.Index),
		zap.Float64(r.param, value),
		zap.Float64("lap_time", res.LapTime))
	return nil
}
