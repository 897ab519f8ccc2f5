// Package linalg is the root of a small dense linear-algebra toolkit built
// around reusable decomposition outputs.
//
// Under the hood, everything is organized under two packages:
//
//	matrix/           - row-major Dense storage, fill primitives (NewDense,
//	                    NewIdentity, SetIdentity, Zero), validators, sentinel
//	                    errors, numeric-policy options and the package logger
//	matrix/decompose/ - Prepare, the output-buffer contract shared by every
//	                    factorization, plus LU, QR and Cholesky
//
// Every factor extractor takes an optional destination matrix. Pass nil to
// allocate; pass the previous result to refill it in place:
//
//	qr := decompose.NewQR()
//	var q, r *matrix.Dense
//	for _, a := range batches {
//	    _ = qr.Decompose(a)
//	    q, _ = qr.Q(q, true)
//	    r, _ = qr.R(r, true)
//	}
//
// See examples/ for a runnable least-squares program.
//
//	go get github.com/katalvlaran/linalg
package linalg
