// Package matrix provides the dense float64 data model and its plumbing.
//
// The matrix package provides:
//
//   - Dense, a row-major, exclusively-owned matrix of float64 values with
//     bounds-checked element access and deep cloning.
//   - Builders (NewZeros, NewOnes, NewIdentity, NewRandom, FromRows) that
//     produce valid matrices under the configured numeric policy.
//   - Slicing helpers (Row, Col, Submatrix, Lower, Upper) returning fresh,
//     independently-owned matrices.
//   - Arithmetic kernels (Add, Sub, Mul, Transpose) with a flat fast path
//     for *Dense operands and an At/Set fallback for any Matrix.
//   - In-place editing (Scale, Shift, SetRow, SetCol, InsertRow, InsertCol,
//     RemoveRow, RemoveCol, AppendRows, AppendCols, Apply). Shape-changing
//     edits are atomic: they fully build new storage before swapping it in.
//
// Every user-triggered failure is reported through the sentinel errors in
// errors.go and matched with errors.Is; no operation panics on bad input.
//
// Decomposition, determinant, solving and inversion live in matrix/ops.
package matrix
