// Package ops_test contains shared fixtures and assertion helpers for the
// decomposition, solver and inverse tests. All fixtures are finite and
// deterministic.
package ops_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jamesbray03/lml/matrix"
)

// testEps is the tolerance for floating comparisons in this package.
// Decomposition results accumulate O(n³) rounding, so it is looser than the
// pivot epsilon.
const testEps = 1e-9

// mustFromRows builds a *Dense from rows or aborts the test.
func mustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// mustAt reads element (i, j) or aborts the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// requireAllClose asserts got and want share a shape and agree elementwise
// within eps.
func requireAllClose(t testing.TB, got, want matrix.Matrix, eps float64) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	var i, j int
	var g, w float64
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			g = mustAt(t, got, i, j)
			w = mustAt(t, want, i, j)
			if math.Abs(g-w) > eps {
				t.Fatalf("element [%d,%d]: got %g, want %g (eps %g)", i, j, g, w, eps)
			}
		}
	}
}

// randomWellConditioned returns a deterministic n×n matrix that is strictly
// diagonally dominant (hence invertible): off-diagonal entries in [0, 1),
// diagonal shifted by n.
func randomWellConditioned(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewRandom(n, n, rng)
	if err != nil {
		t.Fatalf("NewRandom: %v", err)
	}
	var i int
	var v float64
	for i = 0; i < n; i++ {
		v = mustAt(t, m, i, i)
		if err = m.Set(i, i, v+float64(n)); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	return m
}

// rowsOf flattens m into a [][]float64 snapshot for mutation checks.
func rowsOf(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		out[i] = make([]float64, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			out[i][j] = mustAt(t, m, i, j)
		}
	}

	return out
}
