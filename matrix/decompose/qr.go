// SPDX-License-Identifier: MIT

package decompose

import (
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

const opQR = "QR"

// QR computes a Householder factorization A = Q*R of an m×n matrix.
// Q is m×m orthogonal and R is m×n upper trapezoidal. In compact form Q is
// m×min(m,n) and R is min(m,n)×n.
//
// A QR value may be reused across Decompose calls; it is not safe for
// concurrent use.
type QR struct {
	qr   *matrix.Dense // R in the upper trapezoid; nil until a successful Decompose
	ws   *matrix.Dense // workspace kept across calls
	vs   [][]float64   // Householder vectors, one per reflector (len m, zero above k)
	taus []float64     // 2/(vᵀv) per reflector; 0 marks an identity reflector
}

// NewQR returns a QR decomposition.
func NewQR() *QR { return &QR{} }

// InputModified reports false: Decompose works on a private copy.
func (d *QR) InputModified() bool { return false }

// Decompose factors a.
// Implementation:
//   - Stage 1: validate a (non-nil); copy into the workspace.
//   - Stage 2: for k=0..min(m,n)-1 build reflector H_k = I - tau*v*vᵀ from
//     column k and apply it to columns k..n-1.
//
// Behavior highlights:
//   - Zero columns produce an identity reflector (tau = 0), so rank-deficient
//     inputs factor without error.
//
// Errors:
//   - matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(m*n*min(m,n)), Space O(m*n + m*min(m,n)).
func (d *QR) Decompose(a matrix.Matrix) error {
	d.qr = nil
	if err := matrix.ValidateNotNil(a); err != nil {
		return decomposeErrorf(opQR, err)
	}
	ws, err := loadWorkspace(d.ws, a)
	if err != nil {
		return decomposeErrorf(opQR, err)
	}
	d.ws = ws

	rows, cols := ws.Shape()
	p := min(rows, cols)
	d.reserve(rows, p)
	m := rowsOf(ws)

	var i, j, k int
	var norm, alpha, beta, tau, sum float64
	var v []float64
	for k = 0; k < p; k++ {
		v = d.vs[k]
		clear(v)
		d.taus[k] = 0

		norm = matrix.NormZero
		for i = k; i < rows; i++ {
			norm += m[i][k] * m[i][k]
		}
		norm = math.Sqrt(norm)
		if norm == matrix.NormZero {
			continue
		}
		alpha = -math.Copysign(norm, m[k][k])
		for i = k; i < rows; i++ {
			v[i] = m[i][k]
		}
		v[k] -= alpha

		beta = matrix.NormZero
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		if beta == matrix.NormZero {
			continue
		}
		tau = 2.0 / beta
		d.taus[k] = tau

		// Columns right of k; column k is set exactly below.
		for j = k + 1; j < cols; j++ {
			sum = matrix.ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * m[i][j]
			}
			for i = k; i < rows; i++ {
				m[i][j] -= tau * v[i] * sum
			}
		}
		m[k][k] = alpha
		for i = k + 1; i < rows; i++ {
			m[i][k] = 0
		}
	}
	d.qr = ws
	matrix.Logger().Debug("decompose: QR complete", "rows", rows, "cols", cols)

	return nil
}

// reserve sizes the reflector storage for p vectors of length rows.
func (d *QR) reserve(rows, p int) {
	if cap(d.taus) < p {
		d.taus = make([]float64, p)
	}
	d.taus = d.taus[:p]
	if len(d.vs) > 0 && len(d.vs[0]) != rows {
		d.vs = nil
	}
	for len(d.vs) < p {
		d.vs = append(d.vs, make([]float64, rows))
	}
	d.vs = d.vs[:p]
}

// Q writes the orthogonal factor into dst (nil allocates).
// dst must be m×m, or m×min(m,n) when compact is true. Prepare resets it to
// the identity, then the reflectors are applied in reverse order.
func (d *QR) Q(dst *matrix.Dense, compact bool) (*matrix.Dense, error) {
	if d.qr == nil {
		return nil, decomposeErrorf(opQR, ErrNotDecomposed)
	}
	rows, cols := d.qr.Shape()
	qCols := rows
	if compact {
		qCols = min(rows, cols)
	}
	out, err := Prepare(dst, rows, qCols, Identity)
	if err != nil {
		return nil, decomposeErrorf(opQR, err)
	}
	q := rowsOf(out)

	var i, j, k int
	var sum, tau float64
	var v []float64
	for k = len(d.taus) - 1; k >= 0; k-- {
		tau = d.taus[k]
		if tau == 0 {
			continue
		}
		v = d.vs[k]
		for j = 0; j < qCols; j++ {
			sum = matrix.ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * q[i][j]
			}
			for i = k; i < rows; i++ {
				q[i][j] -= tau * v[i] * sum
			}
		}
	}

	return out, nil
}

// R writes the upper trapezoidal factor into dst (nil allocates).
// dst must be m×n, or min(m,n)×n when compact is true. Prepare clears the
// part left of the diagonal; rows past n are cleared entirely.
func (d *QR) R(dst *matrix.Dense, compact bool) (*matrix.Dense, error) {
	if d.qr == nil {
		return nil, decomposeErrorf(opQR, ErrNotDecomposed)
	}
	rows, cols := d.qr.Shape()
	rRows := rows
	if compact {
		rRows = min(rows, cols)
	}
	out, err := Prepare(dst, rRows, cols, ZeroLowerTriangle)
	if err != nil {
		return nil, decomposeErrorf(opQR, err)
	}
	src := rowsOf(d.qr)
	var row []float64
	for i := 0; i < rRows && i < cols; i++ {
		row, _ = out.RawRow(i)
		copy(row[i:], src[i][i:])
	}

	return out, nil
}
