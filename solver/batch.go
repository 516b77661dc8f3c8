// File: batch.go
// Role: Concurrent batch solving.
//
// Determinism:
//   - Results are stored by input index, independent of scheduling.
//
// Concurrency:
//   - One goroutine per instance, at most Workers at a time (errgroup.SetLimit).
//   - Each worker builds and owns its graph; slots of the result slice are
//     written by exactly one worker.

package solver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchOption configures SolveGraphs.
type BatchOption func(*BatchOptions)

// BatchOptions holds the batch knobs.
type BatchOptions struct {
	// Workers bounds concurrency. Default runtime.GOMAXPROCS(0).
	Workers int
	// OnSolved, when set, is invoked after each instance is solved.
	// It may be called from several goroutines at once.
	OnSolved func(index int, in Instance, path []int)
}

// DefaultBatchOptions returns GOMAXPROCS workers and no hook.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the number of instances solved concurrently.
// Panics if k < 1.
func WithWorkers(k int) BatchOption {
	if k < 1 {
		panic(fmt.Sprintf("solver: WithWorkers(%d): need k >= 1", k))
	}
	return func(o *BatchOptions) {
		o.Workers = k
	}
}

// WithOnSolved installs a progress hook.
func WithOnSolved(fn func(index int, in Instance, path []int)) BatchOption {
	return func(o *BatchOptions) {
		o.OnSolved = fn
	}
}

// SolveGraphs builds every instance and solves it with s. The i-th result
// belongs to instances[i].
//
// The first construction or solver error cancels the batch: no new instance
// is started and the error is returned wrapped with the instance index.
// Cancelling ctx has the same effect and returns ctx.Err().
//
// Errors: ErrSolverNil, Instance.Graph errors, Solver errors, ctx errors.
func SolveGraphs(ctx context.Context, s Solver, instances []Instance, opts ...BatchOption) ([][]int, error) {
	if s == nil {
		return nil, ErrSolverNil
	}
	o := DefaultBatchOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := make([][]int, len(instances))
	if o.Workers == 1 {
		for i, in := range instances {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			p, err := solveOne(s, i, in)
			if err != nil {
				return nil, err
			}
			out[i] = p
			if o.OnSolved != nil {
				o.OnSolved(i, in, p)
			}
		}

		return out, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, in := range instances {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			p, err := solveOne(s, i, in)
			if err != nil {
				return err
			}
			out[i] = p
			if o.OnSolved != nil {
				o.OnSolved(i, in, p)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func solveOne(s Solver, i int, in Instance) ([]int, error) {
	gr, err := in.Graph()
	if err != nil {
		return nil, fmt.Errorf("SolveGraphs: instance %d: %w", i, err)
	}
	p, err := s.Solve(gr)
	if err != nil {
		return nil, fmt.Errorf("SolveGraphs: instance %d (%s): %w", i, s.Name(), err)
	}

	return p, nil
}
