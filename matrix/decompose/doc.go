// SPDX-License-Identifier: MIT

// Package decompose prepares output buffers for dense matrix decompositions
// and provides the LU, QR and Cholesky factorizations that consume them.
//
// Every factor extractor (LU.Lower, QR.Q, Cholesky.Upper, ...) accepts an
// optional destination. A nil destination allocates a fresh matrix; a non-nil
// one is validated against the required shape and re-filled in place, so
// repeated decompositions can run without reallocating:
//
//	lu := decompose.NewLU()
//	var l *matrix.Dense
//	for _, a := range inputs {
//	    if err := lu.Decompose(a); err != nil { ... }
//	    l, err = lu.Lower(l) // reuses l after the first iteration
//	}
//
// Prepare is the shared contract behind the extractors. For a given
// FillPolicy it guarantees which cells are zero (or identity) on return:
//
//	Identity           every cell; 1 on (i,i) for i < min(rows, cols)
//	ZeroFull           every cell is 0
//	ZeroLowerTriangle  row i, columns [0, min(i, cols))
//	ZeroUpperTriangle  row i < min(rows, cols), columns [i+1, cols)
//
// Cells outside the policy keep whatever the buffer held before and must be
// overwritten by the caller. A reused buffer of the wrong shape is rejected
// with *ShapeMismatchError before anything is written.
package decompose
