package lloyd

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    steps         prometheus.Counter
//	    stepHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordStep(duration time.Duration, changed int, err error) {
//	    p.steps.Inc()
//	    p.stepHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordInitialize is called after each initializer.
	RecordInitialize(strategy Strategy, duration time.Duration, err error)

	// RecordStep is called after each Step. changed is the number of points
	// that moved to a different cluster.
	RecordStep(duration time.Duration, changed int, err error)

	// RecordObjective is called after each Objective evaluation.
	RecordObjective(value float64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInitialize(Strategy, time.Duration, error) {}
func (NoopMetricsCollector) RecordStep(time.Duration, int, error)            {}
func (NoopMetricsCollector) RecordObjective(float64, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InitializeCount  atomic.Int64
	InitializeErrors atomic.Int64
	StepCount        atomic.Int64
	StepErrors       atomic.Int64
	StepTotalNanos   atomic.Int64
	PointsMoved      atomic.Int64
	ObjectiveCount   atomic.Int64
	ObjectiveErrors  atomic.Int64

	lastObjective atomic.Uint64
}

// RecordInitialize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInitialize(_ Strategy, _ time.Duration, err error) {
	b.InitializeCount.Add(1)
	if err != nil {
		b.InitializeErrors.Add(1)
	}
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(duration time.Duration, changed int, err error) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StepErrors.Add(1)
		return
	}
	b.PointsMoved.Add(int64(changed))
}

// RecordObjective implements MetricsCollector.
func (b *BasicMetricsCollector) RecordObjective(value float64, _ time.Duration, err error) {
	b.ObjectiveCount.Add(1)
	if err != nil {
		b.ObjectiveErrors.Add(1)
		return
	}
	b.lastObjective.Store(math.Float64bits(value))
}

// LastObjective returns the most recently recorded objective value.
func (b *BasicMetricsCollector) LastObjective() float64 {
	return math.Float64frombits(b.lastObjective.Load())
}

// BasicMetricsStats holds a snapshot of metrics.
type BasicMetricsStats struct {
	InitializeCount  int64
	InitializeErrors int64
	StepCount        int64
	StepErrors       int64
	AvgStepNanos     int64
	PointsMoved      int64
	ObjectiveCount   int64
	ObjectiveErrors  int64
	LastObjective    float64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	steps := b.StepCount.Load()
	var avg int64
	if steps > 0 {
		avg = b.StepTotalNanos.Load() / steps
	}
	return BasicMetricsStats{
		InitializeCount:  b.InitializeCount.Load(),
		InitializeErrors: b.InitializeErrors.Load(),
		StepCount:        steps,
		StepErrors:       b.StepErrors.Load(),
		AvgStepNanos:     avg,
		PointsMoved:      b.PointsMoved.Load(),
		ObjectiveCount:   b.ObjectiveCount.Load(),
		ObjectiveErrors:  b.ObjectiveErrors.Load(),
		LastObjective:    b.LastObjective(),
	}
}
