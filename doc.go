// Package lloyd partitions a fixed point set into K clusters with Lloyd's
// algorithm.
//
// The engine exposes the iteration primitives only. The caller picks an
// initialization strategy, then calls Step until its own stopping rule is
// met, optionally reading Objective after each step.
//
// # Quick Start
//
//	src, _ := dataset.FromRows(rows)
//	e, _ := lloyd.New(4, src, lloyd.WithSeed(42))
//	_ = e.InitializeSeeded(ctx) // k-means++
//
//	prev := math.Inf(1)
//	for range 100 {
//	    if err := e.Step(ctx); err != nil {
//	        return err
//	    }
//	    obj, _ := e.Objective(ctx)
//	    if prev-obj < 1e-6 {
//	        break
//	    }
//	    prev = obj
//	}
//	centroids, labels := e.Centroids(), e.Assignments()
//
// # Initialization
//
// InitializeRandom copies K uniformly drawn points (with replacement, so
// duplicate centroids are possible). InitializeSeeded uses k-means++: the
// first centroid is uniform, each further one is drawn proportional to the
// squared distance to the nearest centroid chosen so far. An engine accepts
// exactly one initialization.
//
// # Step
//
// Step runs two phases separated by a barrier. The assign phase maps every
// point to its nearest centroid (lowest cluster id wins ties) in parallel
// over point ranges. The recenter phase then replaces every centroid with the
// mean of its points in parallel over clusters. A cluster that receives no
// points keeps its previous centroid unless WithEmptyClusterPolicy selects
// EmptyClusterReseed.
//
// # Concurrency
//
// An Engine must not be used from multiple goroutines at once. Parallelism is
// internal and bounded by WithWorkers (default GOMAXPROCS). The data source
// is only read.
//
// # Errors
//
// All errors can be matched with errors.Is against ErrInvalidArgument,
// ErrNotInitialized, ErrAlreadyInitialized and ErrEmptyDataSource. A point
// with the wrong width yields a *DimensionMismatchError.
package lloyd
