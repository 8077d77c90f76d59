// Package matrix — in-place editing ("Matrix Editing").
// These methods mutate the receiver's storage. Shape-changing edits
// (Insert/Remove/Append) are atomic: new storage is fully built and only then
// swapped in, so a validation failure leaves the receiver untouched. The
// receiver's identity is preserved across edits; its backing slice is not.
//
// Live matrices always keep rows >= 1 and cols >= 1, so removing the last
// row or column fails with ErrInvalidDimensions.

package matrix

// Operation name constants for unified error wrapping.
const (
	opSetRow     = "SetRow"
	opSetCol     = "SetCol"
	opInsertRow  = "InsertRow"
	opInsertCol  = "InsertCol"
	opRemoveRow  = "RemoveRow"
	opRemoveCol  = "RemoveCol"
	opAppendRows = "AppendRows"
	opAppendCols = "AppendCols"
)

// Scale multiplies every element of m by scalar, in place.
// Complexity: O(r*c).
func (m *Dense) Scale(scalar float64) {
	// Single flat pass over the backing slice.
	for i := range m.data {
		m.data[i] *= scalar
	}
}

// Shift adds scalar to every element of m, in place.
// Complexity: O(r*c).
func (m *Dense) Shift(scalar float64) {
	// Single flat pass over the backing slice.
	for i := range m.data {
		m.data[i] += scalar
	}
}

// Apply replaces every element with fn(element), in place.
// fn is any unary float64 transformation, passed as a first-class value.
// Complexity: O(r*c) plus the cost of fn.
func (m *Dense) Apply(fn func(float64) float64) {
	// Single flat pass over the backing slice.
	for i := range m.data {
		m.data[i] = fn(m.data[i])
	}
}

// rowValues validates that vals is a non-nil 1×c or c×1 matrix holding c
// values and copies them into a fresh slice in line order.
func rowValues(opTag string, vals Matrix, c int) ([]float64, error) {
	if err := ValidateNotNil(vals); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	// Accept a row vector (1×c) or a column vector (c×1) of the right length.
	var line []float64
	switch {
	case vals.Rows() == 1 && vals.Cols() == c:
		line = make([]float64, c)
		for j := 0; j < c; j++ {
			line[j], _ = vals.At(0, j) // shape already validated
		}
	case vals.Cols() == 1 && vals.Rows() == c:
		line = make([]float64, c)
		for j := 0; j < c; j++ {
			line[j], _ = vals.At(j, 0) // shape already validated
		}
	default:
		return nil, matrixErrorf(opTag, validatorErrorf("rowValues", ErrDimensionMismatch))
	}

	return line, nil
}

// SetRow overwrites row i with the values of vals (a 1×cols or cols×1 matrix).
// Errors: ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(cols).
func (m *Dense) SetRow(i int, vals Matrix) error {
	// Validate index and gather the line before touching storage.
	if err := ValidateRowIndex(m, i); err != nil {
		return matrixErrorf(opSetRow, err)
	}
	line, err := rowValues(opSetRow, vals, m.c)
	if err != nil {
		return err
	}

	// Overwrite the row in a single flat copy.
	copy(m.data[i*m.c:(i+1)*m.c], line)

	return nil
}

// SetCol overwrites column j with the values of vals (a rows×1 or 1×rows matrix).
// Errors: ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows).
func (m *Dense) SetCol(j int, vals Matrix) error {
	// Validate index and gather the line before touching storage.
	if err := ValidateColIndex(m, j); err != nil {
		return matrixErrorf(opSetCol, err)
	}
	line, err := rowValues(opSetCol, vals, m.r)
	if err != nil {
		return err
	}

	// Write the column with a strided walk.
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = line[i]
	}

	return nil
}

// InsertRow inserts vals (1×cols or cols×1) as a new row at index i, shifting
// rows i..rows-1 down. i == Rows() appends at the bottom.
// Atomicity: storage is rebuilt fully before the swap; on error the receiver
// is unchanged.
// Errors: ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) InsertRow(i int, vals Matrix) error {
	// Validate the insertion point (one past the end is legal).
	if i < 0 || i > m.r {
		return matrixErrorf(opInsertRow, validatorErrorf("ValidateRowIndex", ErrOutOfRange))
	}
	line, err := rowValues(opInsertRow, vals, m.c)
	if err != nil {
		return err
	}

	// Build the new storage: rows above, the new line, rows below.
	next := make([]float64, (m.r+1)*m.c)
	copy(next, m.data[:i*m.c])
	copy(next[i*m.c:], line)
	copy(next[(i+1)*m.c:], m.data[i*m.c:])

	// Swap in atomically.
	m.data = next
	m.r++

	return nil
}

// InsertCol inserts vals (rows×1 or 1×rows) as a new column at index j,
// shifting columns j..cols-1 right. j == Cols() appends at the right edge.
// Atomicity: storage is rebuilt fully before the swap; on error the receiver
// is unchanged.
// Errors: ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) InsertCol(j int, vals Matrix) error {
	// Validate the insertion point (one past the end is legal).
	if j < 0 || j > m.c {
		return matrixErrorf(opInsertCol, validatorErrorf("ValidateColIndex", ErrOutOfRange))
	}
	line, err := rowValues(opInsertCol, vals, m.r)
	if err != nil {
		return err
	}

	// Build the new storage row by row with the extra column spliced in.
	next := make([]float64, m.r*(m.c+1))
	for i := 0; i < m.r; i++ {
		src := m.data[i*m.c : (i+1)*m.c]
		dst := next[i*(m.c+1) : (i+1)*(m.c+1)]
		copy(dst, src[:j])
		dst[j] = line[i]
		copy(dst[j+1:], src[j:])
	}

	// Swap in atomically.
	m.data = next
	m.c++

	return nil
}

// RemoveRow deletes row i, shifting the rows below it up.
// Errors: ErrOutOfRange; ErrInvalidDimensions when m has a single row.
// Complexity: O(r*c).
func (m *Dense) RemoveRow(i int) error {
	// Validate index and the rows >= 1 invariant.
	if err := ValidateRowIndex(m, i); err != nil {
		return matrixErrorf(opRemoveRow, err)
	}
	if m.r == 1 {
		return matrixErrorf(opRemoveRow, ErrInvalidDimensions)
	}

	// Build the new storage without row i.
	next := make([]float64, (m.r-1)*m.c)
	copy(next, m.data[:i*m.c])
	copy(next[i*m.c:], m.data[(i+1)*m.c:])

	// Swap in atomically.
	m.data = next
	m.r--

	return nil
}

// RemoveCol deletes column j, shifting the columns right of it left.
// Errors: ErrOutOfRange; ErrInvalidDimensions when m has a single column.
// Complexity: O(r*c).
func (m *Dense) RemoveCol(j int) error {
	// Validate index and the cols >= 1 invariant.
	if err := ValidateColIndex(m, j); err != nil {
		return matrixErrorf(opRemoveCol, err)
	}
	if m.c == 1 {
		return matrixErrorf(opRemoveCol, ErrInvalidDimensions)
	}

	// Build the new storage row by row without column j.
	next := make([]float64, m.r*(m.c-1))
	for i := 0; i < m.r; i++ {
		src := m.data[i*m.c : (i+1)*m.c]
		dst := next[i*(m.c-1) : (i+1)*(m.c-1)]
		copy(dst, src[:j])
		copy(dst[j:], src[j+1:])
	}

	// Swap in atomically.
	m.data = next
	m.c--

	return nil
}

// AppendRows appends every row of other below m. other must have m's column
// count. Atomic on failure; other is never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O((r1+r2)*c).
func (m *Dense) AppendRows(other Matrix) error {
	// Validate operand and column compatibility.
	if err := ValidateNotNil(other); err != nil {
		return matrixErrorf(opAppendRows, err)
	}
	if other.Cols() != m.c {
		return matrixErrorf(opAppendRows, validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch))
	}

	// Build the new storage: m's rows followed by other's rows.
	extra := other.Rows()
	next := make([]float64, (m.r+extra)*m.c)
	copy(next, m.data)
	var i, j int
	var v float64
	for i = 0; i < extra; i++ {
		for j = 0; j < m.c; j++ {
			v, _ = other.At(i, j) // shape already validated
			next[(m.r+i)*m.c+j] = v
		}
	}

	// Swap in atomically.
	m.data = next
	m.r += extra

	return nil
}

// AppendCols appends every column of other to the right of m. other must
// have m's row count. Atomic on failure; other is never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*(c1+c2)).
func (m *Dense) AppendCols(other Matrix) error {
	// Validate operand and row compatibility.
	if err := ValidateNotNil(other); err != nil {
		return matrixErrorf(opAppendCols, err)
	}
	if other.Rows() != m.r {
		return matrixErrorf(opAppendCols, validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch))
	}

	// Build the new storage row by row: m's row then other's row.
	extra := other.Cols()
	width := m.c + extra
	next := make([]float64, m.r*width)
	var i, j int
	var v float64
	for i = 0; i < m.r; i++ {
		copy(next[i*width:], m.data[i*m.c:(i+1)*m.c])
		for j = 0; j < extra; j++ {
			v, _ = other.At(i, j) // shape already validated
			next[i*width+m.c+j] = v
		}
	}

	// Swap in atomically.
	m.data = next
	m.c = width

	return nil
}
