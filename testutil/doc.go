// Package testutil provides testing utilities for lloyd.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible point sets and for
// comparing partitions independently of cluster numbering.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.UniformRows(100, 8)           // uniform [0, 1)
//	rows, labels := rng.Blobs(4, 50, 2, 10, 0.5) // gaussian blobs
//
// # Partition Comparison
//
//	ok := testutil.SamePartition(engine.Assignments(), labels)
package testutil
