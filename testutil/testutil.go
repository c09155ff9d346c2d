package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformRows generates num rows of dim values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformRows(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	rows := make([][]float64, num)

	for i := range num {
		row := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range row {
			row[j] = r.rand.Float64()
		}
		rows[i] = row
	}

	return rows
}

// Blobs generates perCluster gaussian points around each of clusters
// centers. Center c sits at c*separation on every axis, so centers are
// well separated when separation is large compared to sigma.
// Rows are ordered cluster by cluster; labels[i] is the center of row i.
func (r *RNG) Blobs(clusters, perCluster, dim int, separation, sigma float64) ([][]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	num := clusters * perCluster
	data := make([]float64, num*dim)
	rows := make([][]float64, num)
	labels := make([]int, num)

	for i := range num {
		c := i / perCluster
		row := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range row {
			row[j] = float64(c)*separation + r.rand.NormFloat64()*sigma
		}
		rows[i] = row
		labels[i] = c
	}

	return rows, labels
}

// BlobRows is Blobs without the labels.
func (r *RNG) BlobRows(clusters, perCluster, dim int, separation, sigma float64) [][]float64 {
	rows, _ := r.Blobs(clusters, perCluster, dim, separation, sigma)
	return rows
}

// SamePartition reports whether a and b group the points identically,
// ignoring how the groups are numbered.
func SamePartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	ab := make(map[int]int)
	ba := make(map[int]int)
	for i := range a {
		if m, ok := ab[a[i]]; ok && m != b[i] {
			return false
		}
		if m, ok := ba[b[i]]; ok && m != a[i] {
			return false
		}
		ab[a[i]] = b[i]
		ba[b[i]] = a[i]
	}

	return true
}
