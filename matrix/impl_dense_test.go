// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroFilled verifies the allocation guarantee decompositions rely on.
func TestNewDenseZeroFilled(t *testing.T) {
	m := MustDense(t, 3, 4)
	rows, cols := m.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 4, cols)
	m.Do(func(i, j int, v float64) bool {
		require.Zero(t, v, "cell (%d,%d)", i, j)
		return true
	})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	_, err = m.RawRow(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetNaNPolicy checks the finite-only guard and its opt-out.
func TestSetNaNPolicy(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()

	require.NoError(t, m.Set(0, 0, 9))
	v, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestRawRowAliasesStorage verifies that RawRow writes are visible through At.
func TestRawRowAliasesStorage(t *testing.T) {
	m := MustDense(t, 2, 3)
	row, err := m.RawRow(1)
	require.NoError(t, err)
	require.Len(t, row, 3)
	require.Equal(t, 3, cap(row), "row slice must not reach into the next row")

	row[2] = 5
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

// TestZero clears every cell in place.
func TestZero(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	m.Zero()
	m.Do(func(i, j int, v float64) bool {
		require.Zero(t, v)
		return true
	})
}

// TestApplyAndDo covers the visitor and in-place map, including early stop.
func TestApplyAndDo(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Apply(func(i, j int, _ float64) float64 { return float64(10*i + j) }))

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{0, 1, 10}, seen)

	err := m.Apply(func(_, _ int, _ float64) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestString checks the diagnostic dump format.
func TestString(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2.5}, {0, -3}})
	require.Equal(t, "[1, 2.5]\n[0, -3]\n", m.String())
}
