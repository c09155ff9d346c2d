package dataset

import (
	"errors"
	"fmt"
)

// ErrRaggedRows is returned by FromRows when rows differ in width.
var ErrRaggedRows = errors.New("dataset: rows differ in width")

// Source is a read-only, row-addressable point set.
type Source interface {
	// Len returns the number of points.
	Len() int
	// Dim returns the number of features per point.
	Dim() int
	// Row returns point i. Callers must not modify the returned slice.
	Row(i int) []float64
}

// Dense is a Source backed by a single row-major slice.
type Dense struct {
	data []float64
	dim  int
	n    int
}

// NewDense wraps data (len(data) must be a multiple of dim) without copying.
func NewDense(data []float64, dim int) (*Dense, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("dataset: invalid dimension %d", dim)
	}
	if len(data)%dim != 0 {
		return nil, fmt.Errorf("dataset: data length %d is not a multiple of dimension %d", len(data), dim)
	}
	return &Dense{data: data, dim: dim, n: len(data) / dim}, nil
}

// FromRows copies rows into a Dense source.
// An empty input yields an empty source of dimension 0.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}

	dim := len(rows[0])
	data := make([]float64, 0, len(rows)*dim)
	for i, r := range rows {
		if len(r) != dim {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, i, len(r), dim)
		}
		data = append(data, r...)
	}

	return &Dense{data: data, dim: dim, n: len(rows)}, nil
}

// Len implements Source.
func (d *Dense) Len() int { return d.n }

// Dim implements Source.
func (d *Dense) Dim() int { return d.dim }

// Row implements Source. The returned slice aliases the backing array.
func (d *Dense) Row(i int) []float64 {
	return d.data[i*d.dim : (i+1)*d.dim : (i+1)*d.dim]
}

// ErrDimensionMismatch is the sentinel wrapped by DimensionError.
var ErrDimensionMismatch = errors.New("dataset: dimension mismatch")

// DimensionError reports a row whose width differs from the source's Dim.
type DimensionError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dataset: row %d has dimension %d, expected %d", e.Row, e.Actual, e.Expected)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// CheckedRow returns src.Row(i), or a *DimensionError if its width is not src.Dim().
func CheckedRow(src Source, i int) ([]float64, error) {
	row := src.Row(i)
	if len(row) != src.Dim() {
		return nil, &DimensionError{Row: i, Expected: src.Dim(), Actual: len(row)}
	}
	return row, nil
}
