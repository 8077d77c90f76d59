// Package ops: linear-system solving over the pivoted LU factors.

package ops

import (
	"fmt"

	"github.com/jamesbray03/lml/matrix"
)

// Solve solves A×X = B for X, where a is square n×n and b is n×k (k >= 1;
// several right-hand sides are solved simultaneously, one per column).
//
// Blueprint:
//
//	Stage 1 (Validate): a square, b row-compatible with a.
//	Stage 2 (Decompose): pivoted compact LU of a (ErrSingular propagates).
//	Stage 3 (Execute): per RHS column — permute b, forward-substitute
//	L·y = P·b, back-substitute U·x = y.
//	Stage 4 (Finalize): assemble columns into the fresh n×k result.
//
// Neither a nor b is mutated.
// Errors: ErrDimensionMismatch on shape mismatch; ErrSingular when a is
// (numerically) singular.
// Complexity: O(n³ + k·n²) time, O(n²) memory.
func Solve(a, b matrix.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	// Stage 1: validate shapes.
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	n, k := a.Rows(), b.Cols()
	if b.Rows() != n {
		return nil, opsErrorf(opSolve, fmt.Errorf("rhs has %d rows, want %d: %w", b.Rows(), n, matrix.ErrDimensionMismatch))
	}
	o := matrix.NewOptions(opts...)

	// Stage 2: pivoted compact factorization.
	w, perm, _, err := factorize(a, o.Eps())
	if err != nil {
		return nil, opsErrorf(opSolve, err)
	}

	// Stage 3: prepare the result and scratch vectors.
	x, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	y := make([]float64, n) // forward-substitution scratch

	// Stage 4: solve column by column.
	var (
		col, i, j  int     // loop indices
		sum, v, bw float64 // accumulator and fetched values
	)
	for col = 0; col < k; col++ {
		// Forward substitution: L·y = P·b[:,col] (L has a unit diagonal).
		for i = 0; i < n; i++ {
			bw, _ = b.At(perm[i], col) // permuted right-hand side entry
			sum = 0
			for j = 0; j < i; j++ {
				v, _ = w.At(i, j) // L's stored multiplier
				sum += v * y[j]
			}
			y[i] = bw - sum
		}
		// Back substitution: U·x = y. factorize guarantees nonzero pivots.
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for j = i + 1; j < n; j++ {
				v, _ = w.At(i, j) // U's upper entry
				sum += v * y[j]
			}
			v, _ = w.At(i, i) // pivot
			y[i] = (y[i] - sum) / v
		}
		// Write the solved column into the result.
		for i = 0; i < n; i++ {
			_ = x.Set(i, col, y[i])
		}
	}

	return x, nil
}
