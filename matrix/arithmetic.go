// Package matrix — arithmetic kernels.
// Element-wise addition/subtraction, the standard matrix product and
// transpose. All kernels perform strict fail-fast validation via the central
// validators, allocate a single fresh result, and never mutate an operand.
//
// Notes:
//   - Each kernel has a flat fast path for *Dense operands and a
//     deterministic At/Set fallback for any other Matrix implementation.
//   - Accumulation is plain double precision (no Kahan summation); the
//     acceptable floating-point error is part of the contract.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation, allocation,
// and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense — single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Complexity: O(r*c) time, O(r*c) space for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, db := asDense(a), asDense(b); da != nil && db != nil {
		length := rows * cols
		for idx := 0; idx < length; idx++ { // deterministic 0..n-1
			res.data[idx] = da.data[idx] + sign*db.data[idx]
		}

		return res, nil
	}

	// Fallback: interface access with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // shapes already validated
			bv, _ = b.At(i, j)
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs the standard matrix product C = A × B (no aliasing).
//
// Contract: a.Cols() must equal b.Rows(); the result is a.Rows()×b.Cols().
// Each output cell accumulates the dot product of the corresponding row of A
// and column of B in double precision.
//
// Implementation:
//   - Stage 1: validate operands and inner dimensions.
//   - Stage 2: fast path for *Dense×*Dense using the i→k→j loop order
//     (row-major friendly: the innermost loop walks both C's and B's rows).
//   - Stage 3: fallback via At with fixed i→j→k order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b Matrix) (*Dense, error) {
	// Validate operands and shapes.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate the zeroed result.
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path: flat accumulation with row-major friendly loop order.
	if da, db := asDense(a), asDense(b); da != nil && db != nil {
		var i, k, j int
		var av float64
		for i = 0; i < rows; i++ {
			for k = 0; k < inner; k++ {
				av = da.data[i*inner+k]
				if av == 0 {
					continue // skip zero contributions
				}
				for j = 0; j < cols; j++ {
					res.data[i*cols+j] += av * db.data[k*cols+j]
				}
			}
		}

		return res, nil
	}

	// Fallback: dot-product accumulation via the interface.
	var i, j, k int
	var sum, av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				av, _ = a.At(i, k) // shapes already validated
				bv, _ = b.At(k, j)
				sum += av * bv
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with result[j][i] = m[i][j].
// Errors: ErrNilMatrix (wrapped with "Transpose").
// Complexity: O(r*c) time and space.
func Transpose(m Matrix) (*Dense, error) {
	// Validate operand.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate the cols×rows result.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path: flat reads with strided writes.
	if d := asDense(m); d != nil {
		var i, j int
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	// Fallback: interface access with fixed i→j order.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // bounds guaranteed by shape
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}
