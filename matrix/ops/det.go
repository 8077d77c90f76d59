// Package ops: determinant via the pivoted LU factors.

package ops

import (
	"errors"

	"github.com/jamesbray03/lml/matrix"
)

// Det returns the determinant of the square matrix m: the product of U's
// diagonal from the pivoted LU factorization, multiplied by the permutation
// sign (each row swap flips it).
//
// A 1×1 matrix returns its sole element directly without decomposing.
// A detected singularity is NOT an error here: zero determinant is itself
// the mathematically correct signal, so Det maps ErrSingular to (0, nil).
//
// Errors: ErrDimensionMismatch for non-square input.
// Complexity: O(n³) time, O(n²) memory.
func Det(m matrix.Matrix, opts ...matrix.Option) (float64, error) {
	// Stage 1: validate input.
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, opsErrorf(opDet, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, opsErrorf(opDet, err)
	}
	o := matrix.NewOptions(opts...)

	// Stage 2: 1×1 base case — the element is the determinant.
	n := m.Rows()
	if n == 1 {
		v, _ := m.At(0, 0) // bounds trivially valid
		return v, nil
	}

	// Stage 3: pivoted factorization; singularity means det == 0.
	w, _, sign, err := factorize(m, o.Eps())
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return 0, nil
		}

		return 0, opsErrorf(opDet, err)
	}

	// Stage 4: sign × product of U's diagonal.
	det := sign
	var v float64
	for i := 0; i < n; i++ {
		v, _ = w.At(i, i)
		det *= v
	}

	return det, nil
}
