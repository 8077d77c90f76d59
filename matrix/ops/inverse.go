// Package ops: matrix inversion composed from the solver.

package ops

import "github.com/jamesbray03/lml/matrix"

// Inverse returns the inverse of the square matrix m, computed by solving
// A×X = I against the full identity right-hand side in one multi-column
// solve (a single factorization serves every basis vector).
//
// Errors: ErrDimensionMismatch for non-square input; ErrSingular when m has
// no inverse. The input is never mutated.
// Complexity: O(n³) time, O(n²) memory.
func Inverse(m matrix.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	// Stage 1: validate input.
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	// Stage 2: identity right-hand side of matching size.
	I, err := matrix.NewIdentity(m.Rows())
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	// Stage 3: one multi-RHS solve yields the whole inverse.
	inv, err := Solve(m, I, opts...)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	return inv, nil
}
