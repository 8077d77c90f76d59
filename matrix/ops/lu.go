// Package ops: LU decomposition with partial pivoting.

package ops

import (
	"fmt"
	"math"

	"github.com/jamesbray03/lml/matrix"
)

// opsErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation name constants for unified error wrapping.
const (
	opLU      = "LU"
	opQR      = "QR"
	opDet     = "Det"
	opSolve   = "Solve"
	opInverse = "Inverse"
)

// factorize computes the compact row-pivoted factorization of the square
// matrix m: a working copy w holding L's strict lower triangle (unit diagonal
// implicit) and U on/above the diagonal, the row permutation perm (w's row i
// came from m's row perm[i]), and the permutation sign (+1/-1, one flip per
// row swap).
//
// Stage 1 (Prepare): deep-copy m; perm = identity; sign = +1.
// Stage 2 (Execute): for each column k, pick the largest-magnitude pivot at
// or below the diagonal, swap it up, then eliminate below it, storing the
// multipliers in place.
// Stage 3 (Fail-fast): a pivot magnitude <= eps means m is numerically
// singular; return ErrSingular without dividing by it.
//
// Callers must have validated squareness. The input is never mutated.
// Complexity: O(n³) time, O(n²) memory.
func factorize(m matrix.Matrix, eps float64) (w matrix.Matrix, perm []int, sign float64, err error) {
	n := m.Rows() // square by caller contract

	// Stage 1: working copy and identity permutation.
	w = m.Clone() // all elimination happens on the copy
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1.0

	// Stage 2: eliminate column by column.
	var (
		k, i, j, p    int     // loop indices and pivot row
		maxAbs, v     float64 // pivot search state
		f, wkj, pivot float64 // elimination temporaries
	)
	for k = 0; k < n; k++ {
		// 2.1: partial pivot — largest |w[i][k]| for i >= k.
		p, maxAbs = k, 0.0
		for i = k; i < n; i++ {
			v, _ = w.At(i, k)
			if math.Abs(v) > maxAbs {
				maxAbs = math.Abs(v)
				p = i
			}
		}
		// 2.2: fail-fast on a (numerically) zero pivot column.
		if maxAbs <= eps {
			return nil, nil, 0, fmt.Errorf("pivot column %d below eps: %w", k, matrix.ErrSingular)
		}
		// 2.3: swap rows k and p; each swap flips the permutation sign.
		if p != k {
			for j = 0; j < n; j++ {
				v, _ = w.At(k, j)
				wkj, _ = w.At(p, j)
				_ = w.Set(k, j, wkj)
				_ = w.Set(p, j, v)
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}
		// 2.4: eliminate below the pivot, storing multipliers in place.
		pivot, _ = w.At(k, k)
		for i = k + 1; i < n; i++ {
			v, _ = w.At(i, k)
			f = v / pivot
			_ = w.Set(i, k, f) // L's multiplier lives in the eliminated slot
			if f == 0 {
				continue // nothing to subtract from this row
			}
			for j = k + 1; j < n; j++ {
				v, _ = w.At(i, j)
				wkj, _ = w.At(k, j)
				_ = w.Set(i, j, v-f*wkj)
			}
		}
	}

	// Stage 3: compact factors ready.
	return w, perm, sign, nil
}

// LU factors the square matrix m into a unit lower triangular L and an upper
// triangular U using Gaussian elimination with partial pivoting (largest
// magnitude entry of the current column). The row permutation is tracked
// internally and not exposed: L×U reconstructs m with its rows in pivot
// order, i.e. row i of L×U equals the row of m the pivoter moved there.
//
// Errors: ErrDimensionMismatch for non-square input; ErrSingular when a
// pivot column's magnitude stays at or below the configured epsilon.
// The input is never mutated; L and U are independent fresh matrices.
// Complexity: O(n³) time, O(n²) memory.
func LU(m matrix.Matrix, opts ...matrix.Option) (*matrix.Dense, *matrix.Dense, error) {
	// Stage 1: validate input.
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, opsErrorf(opLU, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, opsErrorf(opLU, err)
	}
	o := matrix.NewOptions(opts...)

	// Stage 2: compact factorization.
	w, _, _, err := factorize(m, o.Eps())
	if err != nil {
		return nil, nil, opsErrorf(opLU, err)
	}

	// Stage 3: split the compact form into explicit L and U.
	n := m.Rows()
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, opsErrorf(opLU, err)
	}
	U, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, opsErrorf(opLU, err)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		_ = L.Set(i, i, 1) // unit diagonal
		for j = 0; j < i; j++ {
			v, _ = w.At(i, j) // stored multiplier
			_ = L.Set(i, j, v)
		}
		for j = i; j < n; j++ {
			v, _ = w.At(i, j) // upper factor
			_ = U.Set(i, j, v)
		}
	}

	return L, U, nil
}
