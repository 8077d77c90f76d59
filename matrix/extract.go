// Package matrix — structural extraction ("Retrieving Data").
// Row, Col, Submatrix, Lower and Upper each allocate and return a fresh,
// independently-owned *Dense; the source matrix is never mutated and the
// result holds no reference back to it.

package matrix

// Operation name constants for unified error wrapping.
const (
	opRow       = "Row"
	opCol       = "Col"
	opSubmatrix = "Submatrix"
	opLower     = "Lower"
	opUpper     = "Upper"
)

// Row returns row i of m as a new 1×cols matrix.
// Stage 1 (Validate): non-nil m, 0 <= i < m.Rows().
// Stage 2 (Execute): copy the row into a fresh Dense.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(cols).
func Row(m Matrix, i int) (*Dense, error) {
	// Validate operand and index.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matrixErrorf(opRow, err)
	}

	// Allocate the 1×cols result.
	cols := m.Cols()
	res, err := NewDense(1, cols)
	if err != nil {
		return nil, matrixErrorf(opRow, err)
	}

	// Fast path: flat copy of the row slice.
	if d := asDense(m); d != nil {
		copy(res.data, d.data[i*cols:(i+1)*cols])

		return res, nil
	}

	// Fallback: element-wise copy via the interface.
	var v float64
	for j := 0; j < cols; j++ {
		v, _ = m.At(i, j) // bounds already validated
		res.data[j] = v
	}

	return res, nil
}

// Col returns column j of m as a new rows×1 matrix.
// Stage 1 (Validate): non-nil m, 0 <= j < m.Cols().
// Stage 2 (Execute): copy the column into a fresh Dense.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(rows).
func Col(m Matrix, j int) (*Dense, error) {
	// Validate operand and index.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCol, err)
	}
	if err := ValidateColIndex(m, j); err != nil {
		return nil, matrixErrorf(opCol, err)
	}

	// Allocate the rows×1 result.
	rows := m.Rows()
	res, err := NewDense(rows, 1)
	if err != nil {
		return nil, matrixErrorf(opCol, err)
	}

	// Fast path: strided walk over the flat backing slice.
	if d := asDense(m); d != nil {
		for i := 0; i < rows; i++ {
			res.data[i] = d.data[i*d.c+j]
		}

		return res, nil
	}

	// Fallback: element-wise copy via the interface.
	var v float64
	for i := 0; i < rows; i++ {
		v, _ = m.At(i, j) // bounds already validated
		res.data[i] = v
	}

	return res, nil
}

// Submatrix returns the nrows×ncols window of m starting at (row, col) as a
// new matrix.
// Stage 1 (Validate): non-nil m, window fully inside m.
// Stage 2 (Execute): copy the window row by row.
// Errors: ErrNilMatrix, ErrBadWindow.
// Complexity: O(nrows*ncols).
func Submatrix(m Matrix, row, col, nrows, ncols int) (*Dense, error) {
	// Validate operand and window.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateWindow(m, row, col, nrows, ncols); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	// Allocate the result.
	res, err := NewDense(nrows, ncols)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	// Fast path: per-row flat copies.
	if d := asDense(m); d != nil {
		for i := 0; i < nrows; i++ {
			src := (row+i)*d.c + col
			copy(res.data[i*ncols:(i+1)*ncols], d.data[src:src+ncols])
		}

		return res, nil
	}

	// Fallback: element-wise copy via the interface.
	var v float64
	for i := 0; i < nrows; i++ {
		for j := 0; j < ncols; j++ {
			v, _ = m.At(row+i, col+j) // window already validated
			res.data[i*ncols+j] = v
		}
	}

	return res, nil
}

// Lower returns a matrix with m's dimensions holding the on/below-diagonal
// elements of the leading min(rows, cols) square block; every other position
// is zero. Defined for any rectangular input.
// Errors: ErrNilMatrix.
// Complexity: O(rows*cols) for the zeroed allocation + O(bound²) copies.
func Lower(m Matrix) (*Dense, error) {
	return triangular(m, opLower, func(i, j int) bool { return j <= i })
}

// Upper returns a matrix with m's dimensions holding the on/above-diagonal
// elements of the leading min(rows, cols) square block; every other position
// is zero. Defined for any rectangular input.
// Errors: ErrNilMatrix.
// Complexity: O(rows*cols) for the zeroed allocation + O(bound²) copies.
func Upper(m Matrix) (*Dense, error) {
	return triangular(m, opUpper, func(i, j int) bool { return j >= i })
}

// triangular shares validation, allocation and the copy loop for Lower/Upper.
// keep reports whether position (i, j) inside the square block is retained.
func triangular(m Matrix, opTag string, keep func(i, j int) bool) (*Dense, error) {
	// Validate operand.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate a zeroed result with the source's dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// The diagonal bound for rectangular input is min(rows, cols).
	bound := rows
	if cols < bound {
		bound = cols
	}

	// Copy retained positions inside the bound×bound block.
	var i, j int
	var v float64
	for i = 0; i < bound; i++ {
		for j = 0; j < bound; j++ {
			if !keep(i, j) {
				continue
			}
			v, _ = m.At(i, j) // inside validated bounds
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}
