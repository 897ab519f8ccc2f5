// SPDX-License-Identifier: MIT
// Package matrix - public API facades and fill primitives.
//
// Purpose:
//   - Provide the allocate / fillIdentity / fillZero primitives consumed by
//     matrix/decompose when it prepares factor buffers.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Fixed loop orders; a single write per diagonal cell.
//   - Fill primitives write only 0 and 1, so the numeric policy never rejects them.

package matrix

import "fmt"

const (
	opIdentity    = "NewIdentity"
	opSetIdentity = "SetIdentity"
	opZerosLike   = "ZerosLike"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols) zero-init.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns a rows×cols matrix with ones on the cells (i,i) for
// i < min(rows, cols) and zeros elsewhere. Non-square shapes are legal.
// Complexity: O(rows*cols) zeroing + O(min(rows,cols)) diagonal writes.
func NewIdentity(rows, cols int, opts ...Option) (*Dense, error) {
	I, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	setDiagonalOnes(I)

	return I, nil
}

// SetIdentity overwrites m in place with the identity pattern. Every entry is
// reset, not only the diagonal.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Complexity: O(rows*cols).
func SetIdentity(m *Dense) error {
	if m == nil {
		return matrixErrorf(opSetIdentity, ErrNilMatrix)
	}
	m.Zero()
	setDiagonalOnes(m)

	return nil
}

// setDiagonalOnes writes 1 on (i,i) for i < min(r,c). Assumes m is non-nil.
func setDiagonalOnes(m *Dense) {
	n := min(m.r, m.c)
	for i := 0; i < n; i++ {
		m.data[i*m.c+i] = 1.0
	}
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity with the same shape as m.
// Complexity: O(rc).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows(), m.Cols())
}

// ToDense returns m itself when it is already *Dense, else a *Dense copy.
// Decompositions use it to reach the flat fast path for any Matrix input.
// Complexity: O(1) for *Dense, O(rc) otherwise.
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ToDense", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
