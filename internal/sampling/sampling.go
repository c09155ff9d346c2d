package sampling

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Sampler wraps a random source.
// It is thread-safe.
type Sampler struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// New creates a Sampler drawing from r.
// If r is nil, the source is seeded from the wall clock.
func New(r *rand.Rand) *Sampler {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint gosec
	}
	return &Sampler{rand: r}
}

// NewSeeded creates a Sampler from a fixed seed.
func NewSeeded(seed int64) *Sampler {
	return New(rand.New(rand.NewSource(seed))) // nolint gosec
}

// UniformInt returns an integer drawn uniformly from [low, high].
// Panics if high < low.
func (s *Sampler) UniformInt(low, high int) int {
	if high < low {
		panic("sampling: invalid range")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return low + s.rand.Intn(high-low+1)
}

// Float64 returns a number in [0.0, 1.0).
func (s *Sampler) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Float64()
}

// Weighted returns index i with probability weights[i] / sum(weights).
// Weights must be non-negative and need not be normalized. Returns -1 if
// the weights are empty, all zero, or not finite.
func (s *Sampler) Weighted(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := floats.Sum(weights)
	if !(total > 0) || math.IsInf(total, 1) {
		return -1
	}

	target := s.Float64() * total

	last := -1
	var cum float64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		last = i
		if cum > target {
			return i
		}
	}

	// Rounding can leave cum marginally below target.
	return last
}

// ArgMin returns the index of the smallest value in xs.
// Ties resolve to the lowest index. Returns -1 for an empty slice.
func ArgMin(xs []float64) int {
	if len(xs) == 0 {
		return -1
	}
	return floats.MinIdx(xs)
}
