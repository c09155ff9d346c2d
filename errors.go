package lloyd

import (
	"errors"
	"fmt"

	"github.com/hupe1980/lloyd/dataset"
	"github.com/hupe1980/lloyd/internal/kmeanspp"
)

var (
	// ErrInvalidArgument is returned when an argument is invalid (e.g. k < 1,
	// nil source, wrong point dimension).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotInitialized is returned when Step or Objective is called before
	// any initializer has run.
	ErrNotInitialized = errors.New("centroids not initialized")

	// ErrAlreadyInitialized is returned when a second initializer is called
	// on the same engine.
	ErrAlreadyInitialized = errors.New("centroids already initialized")

	// ErrEmptyDataSource is returned when initialization is attempted on a
	// source without points.
	ErrEmptyDataSource = errors.New("data source has no points")
)

// DimensionMismatchError indicates a point whose width differs from the
// data source's feature count.
//
// It matches both ErrInvalidArgument and dataset.ErrDimensionMismatch via
// errors.Is.
type DimensionMismatchError struct {
	Row      int
	Expected int
	Actual   int
	cause    error
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Row, e.Expected, e.Actual)
}

func (e *DimensionMismatchError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidArgument}
	}
	return []error{ErrInvalidArgument, e.cause}
}

// translateError maps errors from internal packages onto the public taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var de *dataset.DimensionError
	if errors.As(err, &de) {
		return &DimensionMismatchError{Row: de.Row, Expected: de.Expected, Actual: de.Actual, cause: err}
	}
	if errors.Is(err, kmeanspp.ErrNoPoints) {
		return fmt.Errorf("%w: %w", ErrEmptyDataSource, err)
	}
	if errors.Is(err, kmeanspp.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
