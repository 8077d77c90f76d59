// Package lml is a lightweight dense-matrix library for embedded and
// general-purpose numeric code: construction, slicing, arithmetic,
// decomposition and linear-system solving over float64 matrices.
//
// 🚀 What is lml?
//
//	A small, deterministic library that brings together:
//		• Core primitive: Dense — an owned, mutable, row-major float64 matrix
//		• Builders: zeros, ones, identity, random fill, build-from-rows
//		• Slicing: row, column, submatrix, lower/upper triangular extraction
//		• Arithmetic: elementwise add/sub, matrix product, transpose
//		• Decomposition: LU (partial pivoting), QR (modified Gram–Schmidt)
//		• Solving: determinant, forward/back substitution, matrix inverse
//		• Editing: scale, shift, row/column insert/remove/append, elementwise map
//
// ✨ Why choose lml?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – every contract violation is a sentinel error,
//     matched with errors.Is; no panics on user input
//   - Pure Go – no cgo, scalar double-precision arithmetic only
//   - Deterministic – fixed loop orders, no global state, no hidden randomness
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/     — the Dense data model, builders, slicing, arithmetic, editing
//	matrix/ops/ — LU, QR, Det, Solve, Inverse
//
// Quick example:
//
//	A, _ := matrix.FromRows([][]float64{{4, 3}, {6, 3}})
//	b, _ := matrix.FromRows([][]float64{{1}, {1}})
//	x, _ := ops.Solve(A, b)   // x ≈ [[0], [1/3]]
//	d, _ := ops.Det(A)        // d == -6
//
//	go get github.com/jamesbray03/lml/matrix
package lml
