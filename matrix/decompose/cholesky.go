// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

const opCholesky = "Cholesky"

// Cholesky computes A = L*Lᵀ for a symmetric positive definite matrix.
// L is kept in the lower triangle of the workspace; the upper triangle holds
// stale input and is never exposed.
//
// A Cholesky value may be reused across Decompose calls; it is not safe for
// concurrent use.
type Cholesky struct {
	l   *matrix.Dense // nil until a successful Decompose
	ws  *matrix.Dense
	eps float64 // symmetry tolerance
}

// NewCholesky returns a Cholesky decomposition. matrix.WithEpsilon sets the
// symmetry tolerance.
func NewCholesky(opts ...matrix.Option) *Cholesky {
	return &Cholesky{eps: matrix.NewOptions(opts...).Epsilon()}
}

// InputModified reports false: Decompose works on a private copy.
func (d *Cholesky) InputModified() bool { return false }

// Decompose factors a.
// Implementation:
//   - Stage 1: validate a (non-nil, square, symmetric within eps); copy.
//   - Stage 2: column-by-column: L[j][j] = sqrt(a[j][j] - Σ L[j][k]²), then
//     L[i][j] for i > j.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry,
//     ErrNotPositiveDefinite.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (d *Cholesky) Decompose(a matrix.Matrix) error {
	d.l = nil
	if err := matrix.ValidateSymmetric(a, d.eps); err != nil {
		return decomposeErrorf(opCholesky, err)
	}
	ws, err := loadWorkspace(d.ws, a)
	if err != nil {
		return decomposeErrorf(opCholesky, err)
	}
	d.ws = ws

	n := ws.Rows()
	m := rowsOf(ws)
	var i, j, k int
	var sum, diag float64
	for j = 0; j < n; j++ {
		sum = m[j][j]
		for k = 0; k < j; k++ {
			sum -= m[j][k] * m[j][k]
		}
		if !(sum > 0) { // also rejects NaN
			return decomposeErrorf(opCholesky, fmt.Errorf("column %d: %w", j, ErrNotPositiveDefinite))
		}
		diag = math.Sqrt(sum)
		m[j][j] = diag
		for i = j + 1; i < n; i++ {
			sum = m[i][j]
			for k = 0; k < j; k++ {
				sum -= m[i][k] * m[j][k]
			}
			m[i][j] = sum / diag
		}
	}
	d.l = ws
	matrix.Logger().Debug("decompose: Cholesky complete", "n", n)

	return nil
}

// Lower writes L into dst (nil allocates). dst must be n×n.
func (d *Cholesky) Lower(dst *matrix.Dense) (*matrix.Dense, error) {
	if d.l == nil {
		return nil, decomposeErrorf(opCholesky, ErrNotDecomposed)
	}
	n := d.l.Rows()
	out, err := Prepare(dst, n, n, ZeroUpperTriangle)
	if err != nil {
		return nil, decomposeErrorf(opCholesky, err)
	}
	src := rowsOf(d.l)
	var row []float64
	for i := 0; i < n; i++ {
		row, _ = out.RawRow(i)
		copy(row[:i+1], src[i][:i+1])
	}

	return out, nil
}

// Upper writes Lᵀ into dst (nil allocates). dst must be n×n.
func (d *Cholesky) Upper(dst *matrix.Dense) (*matrix.Dense, error) {
	if d.l == nil {
		return nil, decomposeErrorf(opCholesky, ErrNotDecomposed)
	}
	n := d.l.Rows()
	out, err := Prepare(dst, n, n, ZeroLowerTriangle)
	if err != nil {
		return nil, decomposeErrorf(opCholesky, err)
	}
	src := rowsOf(d.l)
	var row []float64
	for i := 0; i < n; i++ {
		row, _ = out.RawRow(i)
		for j := i; j < n; j++ {
			row[j] = src[j][i]
		}
	}

	return out, nil
}
