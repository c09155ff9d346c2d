// Package kmeanspp implements k-means++ seeding.
//
// The first centroid is a uniformly drawn point. Every following centroid is
// drawn with probability proportional to D(x)^2, the squared distance from x
// to the nearest centroid chosen so far.
//
// Ref: https://theory.stanford.edu/~sergei/papers/kMeansPP-soda.pdf
package kmeanspp

import (
	"context"
	"errors"
	"slices"

	"github.com/hupe1980/lloyd/dataset"
	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/internal/parallel"
	"github.com/hupe1980/lloyd/internal/sampling"
)

var (
	// ErrNoPoints is returned when the source is empty.
	ErrNoPoints = errors.New("kmeanspp: no points to seed from")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("kmeanspp: k must be positive")
)

// Config controls a seeding run.
type Config struct {
	// Sampler supplies the random draws. Required.
	Sampler *sampling.Sampler
	// Workers bounds the parallel D^2 update. <= 0 means GOMAXPROCS.
	Workers int
}

// Seed returns k centroids copied from rows of src.
//
// If every remaining point already coincides with a chosen centroid (all
// D^2 are zero, e.g. k exceeds the number of distinct points), the next
// centroid falls back to a uniform draw and may duplicate an earlier one.
func Seed(ctx context.Context, k int, src dataset.Source, cfg Config) ([][]float64, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	n := src.Len()
	if n == 0 {
		return nil, ErrNoPoints
	}

	s := cfg.Sampler
	if s == nil {
		s = sampling.New(nil)
	}

	centroids := make([][]float64, 0, k)

	first, err := dataset.CheckedRow(src, s.UniformInt(0, n-1))
	if err != nil {
		return nil, err
	}
	centroids = append(centroids, slices.Clone(first))

	// minDist[i] caches D(x_i)^2 against the chosen set.
	minDist := make([]float64, n)
	err = parallel.For(ctx, n, cfg.Workers, func(lo, hi int) error {
		c := centroids[0]
		for i := lo; i < hi; i++ {
			row, err := dataset.CheckedRow(src, i)
			if err != nil {
				return err
			}
			minDist[i] = distance.SquaredEuclidean(row, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for len(centroids) < k {
		idx := s.Weighted(minDist)
		if idx < 0 {
			idx = s.UniformInt(0, n-1)
		}

		next := slices.Clone(src.Row(idx))
		centroids = append(centroids, next)

		if len(centroids) == k {
			break
		}

		// Only the newest centroid can lower a cached distance.
		err = parallel.For(ctx, n, cfg.Workers, func(lo, hi int) error {
			for i := lo; i < hi; i++ {
				if d := distance.SquaredEuclidean(src.Row(i), next); d < minDist[i] {
					minDist[i] = d
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return centroids, nil
}
