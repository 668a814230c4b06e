// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with a call-site tag)
// and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON FAMILIES
// ----------------
// Two family roots group the structural failures callers usually branch on:
//
//	ErrShape  ← ErrNonSquare, ErrAsymmetry, ErrDimensionMismatch
//	ErrLabel  ← ErrEmptyLabel, ErrDuplicateLabel, ErrLabelMismatch
//
// errors.Is(err, ErrShape) is true for every member of the shape family, so a
// pipeline stage can fail on "any shape problem" without listing members.

var (
	// ErrShape is the family root for every matrix shape violation.
	ErrShape = errors.New("matrix: shape error")

	// ErrLabel is the family root for missing or inconsistent row/column names.
	ErrLabel = errors.New("matrix: label error")
)

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a mask that does not match the matrix it filters.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrShape)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrShape)

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = fmt.Errorf("%w: matrix is not symmetric within tolerance", ErrShape)

	// ErrEmptyLabel signals an empty row or column name.
	ErrEmptyLabel = fmt.Errorf("%w: empty name", ErrLabel)

	// ErrDuplicateLabel signals a row or column name used twice.
	ErrDuplicateLabel = fmt.Errorf("%w: duplicate name", ErrLabel)

	// ErrLabelMismatch signals that row names and column names differ in
	// count or order, or do not match the matrix dimension.
	ErrLabelMismatch = fmt.Errorf("%w: row and column names differ", ErrLabel)
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf tags err with the public operation that detected it.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
