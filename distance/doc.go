// Package distance provides the Euclidean metric used by the clustering engine.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	d2 := distance.SquaredEuclidean(a, b)
//
// Both functions panic if the vectors differ in length. Widths are the
// caller's responsibility; see dataset.CheckedRow.
package distance
