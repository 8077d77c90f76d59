// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/window checks here.
//  - Return plain sentinel errors (wrapped with a validator tag) so call sites
//    can add their own operation context uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	// Otherwise accept.
	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two Matrix values.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape ensures a and b are both non-nil and share a shape.
// Fixed sequence: NotNil(a) → NotNil(b) → SameShape(a, b).
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Errors: wrapped ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape ensures a and b are conformable for the standard matrix
// product: a.Cols == b.Rows. Assumes both operands are non-nil.
// Complexity: O(1).
func ValidateMulShape(a, b Matrix) error {
	// Inner dimensions must agree for row·column accumulation.
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowIndex ensures 0 <= i < m.Rows(). Assumes m is non-nil.
// Complexity: O(1).
func ValidateRowIndex(m Matrix, i int) error {
	if i < 0 || i >= m.Rows() {
		return validatorErrorf("ValidateRowIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateColIndex ensures 0 <= j < m.Cols(). Assumes m is non-nil.
// Complexity: O(1).
func ValidateColIndex(m Matrix, j int) error {
	if j < 0 || j >= m.Cols() {
		return validatorErrorf("ValidateColIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateWindow ensures the window (row, col, nrows, ncols) lies fully
// inside m: non-negative start, positive extent, start+extent within bounds.
// Assumes m is non-nil.
// Errors: wrapped ErrBadWindow on any violation.
// Complexity: O(1).
func ValidateWindow(m Matrix, row, col, nrows, ncols int) error {
	// Reject negative starts and non-positive extents up front.
	if row < 0 || col < 0 || nrows <= 0 || ncols <= 0 {
		return validatorErrorf("ValidateWindow", ErrBadWindow)
	}
	// The window must not run past either edge.
	if row+nrows > m.Rows() || col+ncols > m.Cols() {
		return validatorErrorf("ValidateWindow", ErrBadWindow)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf under the strict numeric policy.
// Complexity: O(1).
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}
