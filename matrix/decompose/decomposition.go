// SPDX-License-Identifier: MIT

package decompose

import "github.com/katalvlaran/linalg/matrix"

// Decomposition is the surface shared by LU, QR and Cholesky.
type Decomposition interface {
	// Decompose factors a. The input is never modified; on error the
	// previous factorization, if any, is discarded.
	Decompose(a matrix.Matrix) error

	// InputModified reports whether Decompose writes into its argument.
	InputModified() bool
}

var (
	_ Decomposition = (*LU)(nil)
	_ Decomposition = (*QR)(nil)
	_ Decomposition = (*Cholesky)(nil)
)

// loadWorkspace copies a into buf, allocating a new buffer only when buf is
// nil or has a different shape. The internal workspace follows the same
// reuse rule the extractors offer callers.
func loadWorkspace(buf *matrix.Dense, a matrix.Matrix) (*matrix.Dense, error) {
	src, err := matrix.ToDense(a)
	if err != nil {
		return nil, err
	}
	rows, cols := src.Shape()
	if buf != nil {
		if r, c := buf.Shape(); r != rows || c != cols {
			buf = nil
		}
	}
	if buf == nil {
		if buf, err = matrix.NewDense(rows, cols); err != nil {
			return nil, err
		}
	}
	var dst, s []float64
	for i := 0; i < rows; i++ {
		dst, _ = buf.RawRow(i)
		s, _ = src.RawRow(i)
		copy(dst, s)
	}

	return buf, nil
}

// rowsOf returns row slices aliasing m's storage, for a[i][j] style kernels.
func rowsOf(m *matrix.Dense) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i], _ = m.RawRow(i)
	}

	return out
}
