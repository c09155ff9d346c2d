package distance

import "gonum.org/v1/gonum/floats"

// Euclidean calculates the L2 norm of a-b.
// Panics if the vectors are not the same length.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean calculates the squared L2 distance between two vectors.
// Panics if the vectors are not the same length.
func SquaredEuclidean(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("distance: vector lengths do not match")
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
