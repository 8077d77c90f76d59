// Package ops provides the matrix algebra engine for the lml/matrix package:
// LU decomposition with partial pivoting, modified Gram–Schmidt QR
// decomposition, determinant, linear-system solving and matrix inversion.
//
// Every entry point is a pure function: operands are never mutated, results
// are fresh, exclusively-owned matrices, and all work runs to completion on
// the calling goroutine. Failures are reported through the sentinel errors of
// the matrix package (ErrDimensionMismatch, ErrSingular) wrapped with the
// operation name; match them with errors.Is.
//
// The numeric policy is configured with matrix functional options:
//
//	L, U, err := ops.LU(a, matrix.WithEpsilon(1e-9))
//
// where epsilon is the magnitude below which a pivot or column norm is
// treated as zero.
package ops
