// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and matrix/ops. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm panics on user-triggered error
// conditions; panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("Op: %w", ErrX)
// at the call site — callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive, or that an edit would leave a matrix with zero rows or
	// columns. Live matrices always satisfy rows >= 1 and cols >= 1.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadWindow indicates that a submatrix window (start + extent) falls
	// outside the source matrix, or has a non-positive extent.
	ErrBadWindow = errors.New("matrix: window out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Add/Sub with different shapes, Mul where a.Cols != b.Rows, non-square
	// input to a square-only operation, or a solve shape mismatch.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when a decomposition, solve or inverse cannot
	// proceed because the input is numerically singular or rank-deficient
	// (a pivot or column norm below the configured epsilon).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (FromRows ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotRectangular indicates that FromRows received rows of differing
	// lengths; every row must have exactly the same number of columns.
	ErrNotRectangular = errors.New("matrix: rows have differing lengths")
)
