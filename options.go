package lloyd

import (
	"math/rand"
)

// EmptyClusterPolicy decides what Step does with a cluster that receives no
// points in the assign phase.
type EmptyClusterPolicy int

const (
	// EmptyClusterKeep leaves the cluster's previous centroid in place.
	EmptyClusterKeep EmptyClusterPolicy = iota
	// EmptyClusterReseed replaces the centroid with a uniformly drawn point.
	EmptyClusterReseed
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case EmptyClusterKeep:
		return "keep"
	case EmptyClusterReseed:
		return "reseed"
	default:
		return "unknown"
	}
}

type options struct {
	workers          int
	rand             *rand.Rand
	logger           *Logger
	metricsCollector MetricsCollector
	emptyPolicy      EmptyClusterPolicy
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		emptyPolicy:      EmptyClusterKeep,
	}
}

// Option configures an Engine.
type Option func(*options)

// WithWorkers bounds the number of goroutines used by the parallel phases.
// If n <= 0, GOMAXPROCS is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSeed makes initialization and reseeding reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rand = rand.New(rand.NewSource(seed)) // nolint gosec
	}
}

// WithRand configures the random source used by initialization and
// reseeding. The engine takes ownership of r.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithLogger configures structured logging.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &lloyd.BasicMetricsCollector{}
//	e, _ := lloyd.New(4, src, lloyd.WithMetricsCollector(metrics))
//	// ... run steps ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithEmptyClusterPolicy configures how Step treats clusters without points.
// Defaults to EmptyClusterKeep.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyPolicy = p
	}
}
