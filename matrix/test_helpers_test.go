// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for builders
//     and kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy
//     interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/jamesbray03/lml/matrix"
)

// testEps is the tolerance for floating comparisons in this package.
const testEps = 1e-12

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) code paths; the
// wrapper still satisfies Matrix but masks the concrete type, so kernels
// cannot take their flat fast path.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows BUILDS a *Dense from rows or fails the test (fatal on error).
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustAt READS element (i, j) or fails the test (fatal on error).
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES element (i, j) or fails the test (fatal on error).
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// requireAllClose asserts got and want share a shape and agree elementwise
// within eps. Fatal on the first mismatch to keep failure output focused.
func requireAllClose(t testing.TB, got, want matrix.Matrix, eps float64) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	var i, j int
	var g, w float64
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			g = MustAt(t, got, i, j)
			w = MustAt(t, want, i, j)
			if math.Abs(g-w) > eps {
				t.Fatalf("element [%d,%d]: got %g, want %g (eps %g)", i, j, g, w, eps)
			}
		}
	}
}
