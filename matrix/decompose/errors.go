// SPDX-License-Identifier: MIT

package decompose

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

var (
	// ErrShapeMismatch is matched by every *ShapeMismatchError.
	ErrShapeMismatch = errors.New("decompose: output shape mismatch")

	// ErrUnknownPolicy signals a FillPolicy value outside the declared set.
	ErrUnknownPolicy = errors.New("decompose: unknown fill policy")

	// ErrNotDecomposed is returned by factor extractors called before a
	// successful Decompose.
	ErrNotDecomposed = errors.New("decompose: no decomposition computed")

	// ErrNotPositiveDefinite is returned by Cholesky when a non-positive
	// diagonal term appears.
	ErrNotPositiveDefinite = errors.New("decompose: matrix is not positive definite")
)

// ShapeMismatchError reports a caller-supplied output buffer whose shape
// differs from the shape the decomposition needs. It matches both
// ErrShapeMismatch and matrix.ErrDimensionMismatch under errors.Is.
type ShapeMismatchError struct {
	WantRows, WantCols int
	GotRows, GotCols   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("decompose: input is not %d x %d matrix (got %d x %d)",
		e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}

// Unwrap exposes both sentinels to errors.Is.
func (e *ShapeMismatchError) Unwrap() []error {
	return []error{ErrShapeMismatch, matrix.ErrDimensionMismatch}
}

// decomposeErrorf wraps err with an operation tag, preserving it via %w.
func decomposeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
