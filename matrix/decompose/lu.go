// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

const opLU = "LU"

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// and no pivoting. Factors are kept in compact form (L strictly below the
// diagonal, U on and above it) until extracted with Lower and Upper.
//
// An LU value may be reused across Decompose calls; its workspace is only
// reallocated when the input shape changes. It is not safe for concurrent use.
type LU struct {
	lu  *matrix.Dense // compact factors; nil until a successful Decompose
	ws  *matrix.Dense // workspace kept across calls
	eps float64       // |pivot| <= eps is treated as singular
}

// NewLU returns an LU decomposition. matrix.WithEpsilon sets the pivot guard.
func NewLU(opts ...matrix.Option) *LU {
	return &LU{eps: matrix.NewOptions(opts...).Epsilon()}
}

// InputModified reports false: Decompose works on a private copy.
func (d *LU) InputModified() bool { return false }

// Decompose factors the square matrix a.
// Implementation:
//   - Stage 1: validate a (non-nil, square); copy into the workspace.
//   - Stage 2: for k=0..n-1 build row k of U, guard the pivot, then column k of L.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Without pivoting, inputs need non-zero leading principal minors.
func (d *LU) Decompose(a matrix.Matrix) error {
	d.lu = nil
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return decomposeErrorf(opLU, err)
	}
	ws, err := loadWorkspace(d.ws, a)
	if err != nil {
		return decomposeErrorf(opLU, err)
	}
	d.ws = ws

	n := ws.Rows()
	m := rowsOf(ws)
	var i, j, k, p int
	var sum, pivot float64
	for k = 0; k < n; k++ {
		// Row k of U.
		for j = k; j < n; j++ {
			sum = matrix.ZeroSum
			for p = 0; p < k; p++ {
				sum += m[k][p] * m[p][j]
			}
			m[k][j] -= sum
		}
		pivot = m[k][k]
		if math.Abs(pivot) <= d.eps {
			return decomposeErrorf(opLU, fmt.Errorf("pivot %d: %w", k, matrix.ErrSingular))
		}
		// Column k of L.
		for i = k + 1; i < n; i++ {
			sum = matrix.ZeroSum
			for p = 0; p < k; p++ {
				sum += m[i][p] * m[p][k]
			}
			m[i][k] = (m[i][k] - sum) / pivot
		}
	}
	d.lu = ws
	matrix.Logger().Debug("decompose: LU complete", "n", n)

	return nil
}

// Lower writes the unit lower triangular factor into dst (nil allocates).
// dst must be n×n; its strictly upper part is cleared by Prepare.
func (d *LU) Lower(dst *matrix.Dense) (*matrix.Dense, error) {
	if d.lu == nil {
		return nil, decomposeErrorf(opLU, ErrNotDecomposed)
	}
	n := d.lu.Rows()
	out, err := Prepare(dst, n, n, ZeroUpperTriangle)
	if err != nil {
		return nil, decomposeErrorf(opLU, err)
	}
	src := rowsOf(d.lu)
	var row []float64
	for i := 0; i < n; i++ {
		row, _ = out.RawRow(i)
		copy(row[:i], src[i][:i])
		row[i] = 1
	}

	return out, nil
}

// Upper writes the upper triangular factor into dst (nil allocates).
// dst must be n×n; its strictly lower part is cleared by Prepare.
func (d *LU) Upper(dst *matrix.Dense) (*matrix.Dense, error) {
	if d.lu == nil {
		return nil, decomposeErrorf(opLU, ErrNotDecomposed)
	}
	n := d.lu.Rows()
	out, err := Prepare(dst, n, n, ZeroLowerTriangle)
	if err != nil {
		return nil, decomposeErrorf(opLU, err)
	}
	src := rowsOf(d.lu)
	var row []float64
	for i := 0; i < n; i++ {
		row, _ = out.RawRow(i)
		copy(row[i:], src[i][i:])
	}

	return out, nil
}

// Determinant returns det(A) as the product of U's diagonal.
func (d *LU) Determinant() (float64, error) {
	if d.lu == nil {
		return 0, decomposeErrorf(opLU, ErrNotDecomposed)
	}
	src := rowsOf(d.lu)
	det := 1.0
	for i := range src {
		det *= src[i][i]
	}

	return det, nil
}
