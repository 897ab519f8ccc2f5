// SPDX-License-Identifier: MIT

// Package decompose - output buffer preparation.
//
// Purpose:
//   - Give every decomposition one place that turns "maybe a buffer" into a
//     correctly shaped, correctly pre-filled factor matrix.
//   - Validate reused buffers strictly before any write (no partial mutation).
//
// Complexity quicksheet:
//   - Allocation: O(r*c) zero-init. Reuse: O(r*c) for Identity/ZeroFull,
//     O(cells cleared) for the triangular policies.

package decompose

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

const opPrepare = "Prepare"

// Prepare returns a numRows×numCols matrix whose policy-covered cells hold
// the policy value.
// MAIN DESCRIPTION:
//   - existing == nil: allocate a fresh zero matrix (identity for Identity).
//     A zero matrix already satisfies every zero policy.
//   - existing != nil: require an exact shape match, re-fill the covered
//     cells in place and return existing itself.
//
// Inputs:
//   - existing: optional buffer to reuse (nil means allocate).
//   - numRows, numCols: exact shape required by the caller (> 0).
//   - policy: one of Identity, ZeroFull, ZeroLowerTriangle, ZeroUpperTriangle.
//
// Errors:
//   - ErrUnknownPolicy for an undeclared policy value.
//   - *ShapeMismatchError when existing has a different shape; existing is untouched.
//   - matrix.ErrInvalidDimensions when allocating with non-positive dimensions.
//
// Complexity:
//   - Time O(numRows*numCols), Space O(numRows*numCols) only when allocating.
//
// Notes:
//   - Cells outside the policy keep their previous content. The caller must
//     overwrite them before reading.
//   - Not synchronized: concurrent calls on the same existing buffer race.
func Prepare(existing *matrix.Dense, numRows, numCols int, policy FillPolicy) (*matrix.Dense, error) {
	if !policy.valid() {
		return nil, decomposeErrorf(opPrepare, fmt.Errorf("%s: %w", policy, ErrUnknownPolicy))
	}
	log := matrix.Logger()

	if existing == nil {
		out, err := allocate(numRows, numCols, policy)
		if err != nil {
			return nil, decomposeErrorf(opPrepare, err)
		}
		log.Debug("decompose: allocated output",
			"policy", policy.String(), "rows", numRows, "cols", numCols)

		return out, nil
	}

	rows, cols := existing.Shape()
	if rows != numRows || cols != numCols {
		return nil, decomposeErrorf(opPrepare, &ShapeMismatchError{
			WantRows: numRows, WantCols: numCols,
			GotRows: rows, GotCols: cols,
		})
	}

	switch policy {
	case Identity:
		if err := matrix.SetIdentity(existing); err != nil {
			return nil, decomposeErrorf(opPrepare, err)
		}
	case ZeroFull:
		existing.Zero()
	case ZeroLowerTriangle:
		zeroLowerTriangle(existing)
	case ZeroUpperTriangle:
		zeroUpperTriangle(existing)
	}
	log.Debug("decompose: reused output",
		"policy", policy.String(), "rows", numRows, "cols", numCols)

	return existing, nil
}

// allocate builds a fresh buffer for policy. NewDense zero-fills, so only
// Identity needs extra work.
func allocate(numRows, numCols int, policy FillPolicy) (*matrix.Dense, error) {
	if policy == Identity {
		return matrix.NewIdentity(numRows, numCols)
	}

	return matrix.NewDense(numRows, numCols)
}

// zeroLowerTriangle clears row i on columns [0, min(i, cols)).
// The diagonal and everything right of it are left untouched.
func zeroLowerTriangle(m *matrix.Dense) {
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ {
		row, _ := m.RawRow(i) // i is in range
		clear(row[:min(i, cols)])
	}
}

// zeroUpperTriangle clears row i on columns [i+1, cols) for i < min(rows, cols).
// Rows past the last diagonal cell have no anchor and are left untouched.
func zeroUpperTriangle(m *matrix.Dense) {
	rows, cols := m.Shape()
	maxDiag := min(rows, cols)
	for i := 0; i < maxDiag; i++ {
		row, _ := m.RawRow(i)
		clear(row[i+1:])
	}
}

// CheckIdentity is Prepare with the Identity policy.
func CheckIdentity(existing *matrix.Dense, numRows, numCols int) (*matrix.Dense, error) {
	return Prepare(existing, numRows, numCols, Identity)
}

// CheckZeros is Prepare with the ZeroFull policy.
func CheckZeros(existing *matrix.Dense, numRows, numCols int) (*matrix.Dense, error) {
	return Prepare(existing, numRows, numCols, ZeroFull)
}

// CheckZerosLT returns a zero matrix when existing is nil; otherwise it
// clears the strictly lower triangular part of existing.
func CheckZerosLT(existing *matrix.Dense, numRows, numCols int) (*matrix.Dense, error) {
	return Prepare(existing, numRows, numCols, ZeroLowerTriangle)
}

// CheckZerosUT returns a zero matrix when existing is nil; otherwise it
// clears the strictly upper triangular part of existing.
func CheckZerosUT(existing *matrix.Dense, numRows, numCols int) (*matrix.Dense, error) {
	return Prepare(existing, numRows, numCols, ZeroUpperTriangle)
}
