package lloyd

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/lloyd/dataset"
	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/internal/kmeanspp"
	"github.com/hupe1980/lloyd/internal/parallel"
	"github.com/hupe1980/lloyd/internal/sampling"
	"gonum.org/v1/gonum/floats"
)

// Strategy names a centroid initialization strategy.
type Strategy string

const (
	// StrategyRandom copies K uniformly drawn points (with replacement).
	StrategyRandom Strategy = "random"
	// StrategyKMeansPlusPlus draws points proportional to D(x)^2.
	StrategyKMeansPlusPlus Strategy = "kmeans++"
)

// Engine holds the centroid and assignment state of one clustering run over
// a fixed data source.
//
// An Engine is not safe for concurrent use. Step and Objective parallelize
// internally.
type Engine struct {
	k   int
	n   int
	dim int
	src dataset.Source

	centroids   [][]float64
	assignments []int

	initialized bool
	iterations  int

	sampler     *sampling.Sampler
	workers     int
	emptyPolicy EmptyClusterPolicy
	logger      *Logger
	metrics     MetricsCollector
}

// New creates an engine that partitions the points of src into k clusters.
//
// Centroids start uninitialized; call InitializeRandom or InitializeSeeded
// exactly once before Step.
func New(k int, src dataset.Source, optFns ...Option) (*Engine, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be >= 1, got %d", ErrInvalidArgument, k)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil data source", ErrInvalidArgument)
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	n := src.Len()
	e := &Engine{
		k:           k,
		n:           n,
		dim:         src.Dim(),
		src:         src,
		centroids:   make([][]float64, k),
		assignments: make([]int, n),
		sampler:     sampling.New(opts.rand),
		workers:     parallel.Workers(opts.workers),
		emptyPolicy: opts.emptyPolicy,
		logger:      opts.logger.WithK(k).WithDimension(src.Dim()).WithCount(n),
		metrics:     opts.metricsCollector,
	}

	return e, nil
}

// K returns the number of clusters.
func (e *Engine) K() int { return e.k }

// Initialized reports whether an initializer has run.
func (e *Engine) Initialized() bool { return e.initialized }

// Iterations returns the number of completed Steps.
func (e *Engine) Iterations() int { return e.iterations }

// Centroids returns a copy of the current centroids.
// Before initialization every entry is nil.
func (e *Engine) Centroids() [][]float64 {
	out := make([][]float64, e.k)
	for c, v := range e.centroids {
		out[c] = slices.Clone(v)
	}
	return out
}

// Assignments returns a copy of the current point-to-cluster assignment.
// Before the first Step every point maps to cluster 0.
func (e *Engine) Assignments() []int {
	return slices.Clone(e.assignments)
}

// ClusterSizes returns the number of points currently assigned to each cluster.
func (e *Engine) ClusterSizes() []int {
	sizes := make([]int, e.k)
	for _, c := range e.assignments {
		sizes[c]++
	}
	return sizes
}

// Members returns the indices of the points currently assigned to cluster c.
func (e *Engine) Members(c int) (*roaring.Bitmap, error) {
	if c < 0 || c >= e.k {
		return nil, fmt.Errorf("%w: cluster %d out of range [0, %d)", ErrInvalidArgument, c, e.k)
	}

	bm := roaring.New()
	for i, a := range e.assignments {
		if a == c {
			bm.Add(uint32(i))
		}
	}
	return bm, nil
}

// Initialize runs the named initialization strategy.
func (e *Engine) Initialize(ctx context.Context, s Strategy) error {
	switch s {
	case StrategyRandom:
		return e.InitializeRandom(ctx)
	case StrategyKMeansPlusPlus:
		return e.InitializeSeeded(ctx)
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidArgument, s)
	}
}

// InitializeRandom sets each centroid to an independently, uniformly drawn
// point. Draws are with replacement, so two clusters may start on the same
// point.
func (e *Engine) InitializeRandom(ctx context.Context) error {
	return e.initialize(ctx, StrategyRandom, func() ([][]float64, error) {
		out := make([][]float64, e.k)
		for c := range out {
			row, err := dataset.CheckedRow(e.src, e.sampler.UniformInt(0, e.n-1))
			if err != nil {
				return nil, err
			}
			out[c] = slices.Clone(row)
		}
		return out, nil
	})
}

// InitializeSeeded sets the centroids with k-means++ seeding.
func (e *Engine) InitializeSeeded(ctx context.Context) error {
	return e.initialize(ctx, StrategyKMeansPlusPlus, func() ([][]float64, error) {
		return kmeanspp.Seed(ctx, e.k, e.src, kmeanspp.Config{
			Sampler: e.sampler,
			Workers: e.workers,
		})
	})
}

func (e *Engine) initialize(ctx context.Context, s Strategy, pick func() ([][]float64, error)) (err error) {
	start := time.Now()
	defer func() {
		e.metrics.RecordInitialize(s, time.Since(start), err)
		e.logger.LogInitialize(ctx, s, err)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	if e.initialized {
		return ErrAlreadyInitialized
	}
	if e.n == 0 {
		return ErrEmptyDataSource
	}

	centroids, err := pick()
	if err != nil {
		return translateError(err)
	}

	copy(e.centroids, centroids)
	e.initialized = true
	return nil
}

// Step runs one Lloyd iteration: every point is assigned to its nearest
// centroid (lowest cluster id on ties), then every centroid is recomputed
// as the mean of its points.
//
// The assign phase completes for all points before any centroid is
// recomputed. If ctx is cancelled or a point has the wrong dimension the
// engine state is left unchanged.
func (e *Engine) Step(ctx context.Context) (err error) {
	start := time.Now()
	changed, empty := 0, 0
	defer func() {
		e.metrics.RecordStep(time.Since(start), changed, err)
		e.logger.LogStep(ctx, e.iterations, changed, empty, err)
	}()

	if !e.initialized {
		return ErrNotInitialized
	}

	next, moved, err := e.assign(ctx)
	if err != nil {
		return translateError(err)
	}
	changed = moved

	centroids, err := e.recenter(ctx, next)
	if err != nil {
		return translateError(err)
	}

	for c, v := range centroids {
		if v != nil {
			continue
		}
		empty++
		switch e.emptyPolicy {
		case EmptyClusterReseed:
			centroids[c] = slices.Clone(e.src.Row(e.sampler.UniformInt(0, e.n-1)))
		default:
			centroids[c] = e.centroids[c]
		}
	}

	e.assignments = next
	e.centroids = centroids
	e.iterations++
	return nil
}

// assign computes a fresh assignment array. Each chunk writes only
// next[lo:hi].
func (e *Engine) assign(ctx context.Context) ([]int, int, error) {
	next := make([]int, e.n)
	var moved atomic.Int64

	err := parallel.For(ctx, e.n, e.workers, func(lo, hi int) error {
		dists := make([]float64, e.k)
		local := 0
		for i := lo; i < hi; i++ {
			row, err := dataset.CheckedRow(e.src, i)
			if err != nil {
				return err
			}
			for c, centroid := range e.centroids {
				dists[c] = distance.Euclidean(row, centroid)
			}
			next[i] = sampling.ArgMin(dists)
			if next[i] != e.assignments[i] {
				local++
			}
		}
		moved.Add(int64(local))
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return next, int(moved.Load()), nil
}

// recenter computes the mean of each cluster under assignment. Each task
// writes only out[c]. Clusters without points are left nil.
func (e *Engine) recenter(ctx context.Context, assignment []int) ([][]float64, error) {
	out := make([][]float64, e.k)

	err := parallel.Each(ctx, e.k, e.workers, func(c int) error {
		sum := make([]float64, e.dim)
		count := 0
		for i, a := range assignment {
			if a != c {
				continue
			}
			floats.Add(sum, e.src.Row(i))
			count++
		}
		if count == 0 {
			return nil
		}
		for j := range sum {
			sum[j] /= float64(count)
		}
		out[c] = sum
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Objective returns the sum over all points of the squared Euclidean
// distance to the centroid of the point's current cluster.
//
// Partial sums are reduced in chunk order, so the result is reproducible for
// a fixed worker count.
func (e *Engine) Objective(ctx context.Context) (value float64, err error) {
	start := time.Now()
	defer func() {
		e.metrics.RecordObjective(value, time.Since(start), err)
		e.logger.LogObjective(ctx, value, err)
	}()

	if !e.initialized {
		return 0, ErrNotInitialized
	}

	chunks := parallel.Chunks(e.n, e.workers)
	partial := make([]float64, len(chunks))

	err = parallel.Each(ctx, len(chunks), e.workers, func(ci int) error {
		lo, hi := chunks[ci][0], chunks[ci][1]
		var s float64
		for i := lo; i < hi; i++ {
			row, err := dataset.CheckedRow(e.src, i)
			if err != nil {
				return err
			}
			s += distance.SquaredEuclidean(row, e.centroids[e.assignments[i]])
		}
		partial[ci] = s
		return nil
	})
	if err != nil {
		return 0, translateError(err)
	}

	return floats.Sum(partial), nil
}
