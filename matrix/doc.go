// Package matrix provides dense row-major matrices and the primitives that
// decomposition algorithms build on.
//
// The matrix package provides:
//
//   - Dense, a flat []float64 buffer addressed as row*cols + col.
//   - Allocation and fill primitives: NewDense (zero-filled), NewIdentity,
//     SetIdentity and Dense.Zero.
//   - A small reference algebra surface (Mul, Transpose, AllClose) used to
//     reconstruct and compare factorizations.
//   - Central validators and sentinel errors shared with matrix/decompose.
//
// Public methods never panic on user input; they return sentinel errors
// wrapped with operation context. Match them with errors.Is.
//
// See the examples in this package and in matrix/decompose for usage patterns.
package matrix
