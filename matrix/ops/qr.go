// Package ops: QR decomposition via modified Gram–Schmidt.

package ops

import (
	"fmt"
	"math"

	"github.com/jamesbray03/lml/matrix"
)

// QR factors the m×n matrix a (m >= n) into Q (m×n, orthonormal columns) and
// R (n×n, upper triangular) such that Q×R reconstructs a. The
// orthogonalization is modified Gram–Schmidt: each remaining column has the
// freshly normalized direction projected out immediately, which keeps the
// loss of orthogonality bounded compared to the classical variant.
//
// Stage 1 (Validate): non-nil input with Rows >= Cols.
// Stage 2 (Prepare): deep-copy a into the working column set V; allocate Q, R.
// Stage 3 (Execute): for each column k — normalize, record R[k][k], then
// orthogonalize every later column against it.
// Stage 4 (Fail-fast): a column norm at or below eps signals rank deficiency;
// return ErrSingular.
//
// Errors: ErrDimensionMismatch when Rows < Cols; ErrSingular on a
// (numerically) zero column. The input is never mutated.
// Complexity: O(m·n²) time, O(m·n) memory.
func QR(a matrix.Matrix, opts ...matrix.Option) (*matrix.Dense, *matrix.Dense, error) {
	// Stage 1: validate input.
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if rows < cols {
		return nil, nil, opsErrorf(opQR, fmt.Errorf("need rows >= cols, got %dx%d: %w", rows, cols, matrix.ErrDimensionMismatch))
	}
	o := matrix.NewOptions(opts...)

	// Stage 2: working copy and result containers.
	V := a.Clone() // columns of V are progressively orthogonalized
	Q, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}
	R, err := matrix.NewDense(cols, cols)
	if err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}

	// Stage 3: modified Gram–Schmidt sweep.
	var (
		k, j, i   int     // loop indices
		norm, dot float64 // accumulators
		v, q      float64 // temporary values
	)
	for k = 0; k < cols; k++ {
		// 3.1: column norm ||V[:,k]||.
		norm = 0
		for i = 0; i < rows; i++ {
			v, _ = V.At(i, k)
			norm += v * v
		}
		norm = math.Sqrt(norm)
		// 3.2: fail-fast on rank deficiency.
		if norm <= o.Eps() {
			return nil, nil, opsErrorf(opQR, fmt.Errorf("column %d below eps: %w", k, matrix.ErrSingular))
		}
		// 3.3: R[k][k] = norm; Q[:,k] = V[:,k] / norm.
		_ = R.Set(k, k, norm)
		for i = 0; i < rows; i++ {
			v, _ = V.At(i, k)
			_ = Q.Set(i, k, v/norm)
		}
		// 3.4: project the new direction out of every later column.
		for j = k + 1; j < cols; j++ {
			dot = 0
			for i = 0; i < rows; i++ {
				q, _ = Q.At(i, k)
				v, _ = V.At(i, j)
				dot += q * v
			}
			_ = R.Set(k, j, dot)
			for i = 0; i < rows; i++ {
				q, _ = Q.At(i, k)
				v, _ = V.At(i, j)
				_ = V.Set(i, j, v-dot*q)
			}
		}
	}

	// Stage 4: Q and R are complete.
	return Q, R, nil
}
