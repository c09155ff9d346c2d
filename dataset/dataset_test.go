package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	d, err := FromRows([][]float64{{0, 0}, {0, 1}, {10, 0}})
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 2, d.Dim())
	assert.Equal(t, []float64{0, 1}, d.Row(1))
	assert.Equal(t, []float64{10, 0}, d.Row(2))
}

func TestFromRows_Empty(t *testing.T) {
	d, err := FromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, d.Dim())
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := FromRows([][]float64{{0, 0}, {1}})
	assert.ErrorIs(t, err, ErrRaggedRows)
}

func TestNewDense(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}

	d, err := NewDense(data, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []float64{4, 5, 6}, d.Row(1))

	// Row must not let appends bleed into the next row.
	r := d.Row(0)
	assert.Equal(t, 3, cap(r))

	_, err = NewDense(data, 4)
	assert.Error(t, err)

	_, err = NewDense(data, 0)
	assert.Error(t, err)
}

type raggedSource struct{}

func (raggedSource) Len() int { return 2 }
func (raggedSource) Dim() int { return 2 }
func (raggedSource) Row(i int) []float64 {
	if i == 1 {
		return []float64{1, 2, 3}
	}
	return []float64{1, 2}
}

func TestCheckedRow(t *testing.T) {
	row, err := CheckedRow(raggedSource{}, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, row)

	_, err = CheckedRow(raggedSource{}, 1)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 1, dimErr.Row)
	assert.Equal(t, 2, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Actual)
}
