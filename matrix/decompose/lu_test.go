// SPDX-License-Identifier: MIT
package decompose_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/matrix/decompose"
	"github.com/stretchr/testify/require"
)

// TestLU_KnownFactors checks a hand-computed 2×2 factorization.
func TestLU_KnownFactors(t *testing.T) {
	lu := decompose.NewLU()
	require.NoError(t, lu.Decompose(fromRows(t, [][]float64{{4, 3}, {6, 3}})))

	l, err := lu.Lower(nil)
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[1.5, 1]\n", l.String())

	u, err := lu.Upper(nil)
	require.NoError(t, err)
	require.Equal(t, "[4, 3]\n[0, -1.5]\n", u.String())

	det, err := lu.Determinant()
	require.NoError(t, err)
	require.InDelta(t, -6.0, det, 1e-12)
}

// TestLU_Errors covers the input guards.
func TestLU_Errors(t *testing.T) {
	lu := decompose.NewLU()

	err := lu.Decompose(fromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	err = lu.Decompose(fromRows(t, [][]float64{{0, 1}, {1, 0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	// A failed Decompose discards the previous factors.
	require.NoError(t, lu.Decompose(fromRows(t, [][]float64{{2}})))
	require.Error(t, lu.Decompose(fromRows(t, [][]float64{{1, 2}, {2, 4}})))
	_, err = lu.Determinant()
	require.ErrorIs(t, err, decompose.ErrNotDecomposed)
}

// TestLU_PivotTolerance: WithEpsilon widens the singularity guard.
func TestLU_PivotTolerance(t *testing.T) {
	a := fromRows(t, [][]float64{{1e-6, 1}, {1, 1}})
	require.NoError(t, decompose.NewLU().Decompose(a))
	require.ErrorIs(t, decompose.NewLU(matrix.WithEpsilon(1e-3)).Decompose(a), matrix.ErrSingular)
}
