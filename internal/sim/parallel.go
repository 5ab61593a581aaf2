package sim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one independent run. Jobs share no state.
type Job func(ctx context.Context) error

// Ensemble runs independent jobs concurrently. A limit of zero or less
// means unbounded.
type Ensemble struct {
	limit int
}

func NewEnsemble(limit int) *Ensemble {
	return &Ensemble{limit: limit}
}

// Run starts every job and returns the first error. Jobs that have not
// started when the context is canceled are skipped.
func (e *Ensemble) Run(ctx context.Context, jobs []Job) error {
	g, ctx := errgroup.WithContext(ctx)
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return job(ctx)
		})
	}

	return g.Wait()
}

// FreeFallEnsemble runs one free-fall per parameter set. newOpts is called
// once per run so each run gets its own metrics.
func FreeFallEnsemble(ctx context.Context, params []FreeFallParams, limit int, newOpts func() []Option) ([]*FreeFallResult, error) {
	results := make([]*FreeFallResult, len(params))
	jobs := make([]Job, len(params))
	for i, p := range params {
		i, p := i, p
		jobs[i] = func(ctx context.Context) error {
			results[i] = RunFreeFall(p, optsFrom(newOpts)...)
			return nil
		}
	}

	if err := NewEnsemble(limit).Run(ctx, jobs); err != nil {
		return nil, err
	}
	return results, nil
}

func WingEnsemble(ctx context.Context, params []WingParams, limit int, newOpts func() []Option) ([]*WingResult, error) {
	results := make([]*WingResult, len(params))
	jobs := make([]Job, len(params))
	for i, p := range params {
		i, p := i, p
		jobs[i] = func(ctx context.Context) error {
			results[i] = RunWingParams(p, optsFrom(newOpts)...)
			return nil
		}
	}

	if err := NewEnsemble(limit).Run(ctx, jobs); err != nil {
		return nil, err
	}
	return results, nil
}

func optsFrom(newOpts func() []Option) []Option {
	if newOpts == nil {
		return nil
	}
	return newOpts()
}
