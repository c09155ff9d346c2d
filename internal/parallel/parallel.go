// Package parallel runs data-parallel loops over index ranges on a bounded
// set of goroutines.
//
// Each call to For partitions [0, n) into contiguous, disjoint chunks. A task
// owns its chunk exclusively, so tasks that only write to indices inside
// their own chunk need no locking. For returns only after every task has
// finished, which makes it a barrier between consecutive phases.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minChunk keeps tiny inputs from being split into goroutine-sized work.
const minChunk = 64

// Workers returns w if positive, otherwise GOMAXPROCS.
func Workers(w int) int {
	if w <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return w
}

// Chunks returns the [lo, hi) ranges For would run for n items and w workers.
func Chunks(n, w int) [][2]int {
	if n <= 0 {
		return nil
	}
	w = Workers(w)

	size := (n + w - 1) / w
	if size < minChunk {
		size = minChunk
	}

	out := make([][2]int, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		out = append(out, [2]int{lo, min(lo+size, n)})
	}
	return out
}

// For calls fn once per chunk of [0, n) with at most workers chunks in
// flight. It returns the first error from fn, or ctx.Err() if the context is
// cancelled before all chunks are scheduled.
func For(ctx context.Context, n, workers int, fn func(lo, hi int) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	chunks := Chunks(n, workers)
	if len(chunks) == 1 {
		return fn(chunks[0][0], chunks[0][1])
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers))

	for _, c := range chunks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(c[0], c[1])
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Each is For with a per-index callback and a chunk size of one index per
// task, used when n is small and each index carries a lot of work (one task
// per cluster).
func Each(ctx context.Context, n, workers int, fn func(i int) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers))

	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
