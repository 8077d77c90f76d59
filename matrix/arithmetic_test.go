// Package matrix_test contains unit tests for the arithmetic kernels.
package matrix_test

import (
	"testing"

	"github.com/jamesbray03/lml/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireAllClose(t, sum, MustFromRows(t, [][]float64{{11, 22}, {33, 44}}), 0)

	// Operands stay untouched.
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))
	require.Equal(t, 10.0, MustAt(t, b, 0, 0))
}

func TestAddDimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSub(t *testing.T) {
	a := MustFromRows(t, [][]float64{{5, 5}, {5, 5}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	requireAllClose(t, diff, MustFromRows(t, [][]float64{{4, 3}, {2, 1}}), 0)
}

func TestMul(t *testing.T) {
	// Contract: a.Cols == b.Rows; result is a.Rows × b.Cols.
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})   // 2×3
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}) // 3×2

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireAllClose(t, prod, MustFromRows(t, [][]float64{
		{58, 64},
		{139, 154},
	}), testEps)
}

func TestMulIdentityNeutral(t *testing.T) {
	a := MustFromRows(t, [][]float64{{2, -1}, {0, 3}})
	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	left, err := matrix.Mul(I, a)
	require.NoError(t, err)
	requireAllClose(t, left, a, 0)

	right, err := matrix.Mul(a, I)
	require.NoError(t, err)
	requireAllClose(t, right, a, 0)
}

func TestMulDimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3) // inner dimensions disagree (3 vs 2)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	requireAllClose(t, tr, MustFromRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), 0)
}

func TestTransposeInvolution(t *testing.T) {
	// Transpose(Transpose(A)) == A for any shape.
	for _, rows := range [][][]float64{
		{{1}},
		{{1, 2, 3}},
		{{1, 2}, {3, 4}, {5, 6}},
	} {
		a := MustFromRows(t, rows)
		once, err := matrix.Transpose(a)
		require.NoError(t, err)
		twice, err := matrix.Transpose(once)
		require.NoError(t, err)
		requireAllClose(t, twice, a, 0)
	}
}

// TestArithmeticInterfaceFallback ensures hiding the concrete type (which
// forces the At/Set fallback paths) produces the same results as the flat
// fast path, without panicking.
func TestArithmeticInterfaceFallback(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{5, 6}, {7, 8}})
	wrapped := hide{a}

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(wrapped, b)
	require.NoError(t, err)
	requireAllClose(t, fast, slow, 0)

	fastMul, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slowMul, err := matrix.Mul(wrapped, b)
	require.NoError(t, err)
	requireAllClose(t, fastMul, slowMul, testEps)

	fastTr, err := matrix.Transpose(a)
	require.NoError(t, err)
	slowTr, err := matrix.Transpose(wrapped)
	require.NoError(t, err)
	requireAllClose(t, fastTr, slowTr, 0)
}

func TestArithmeticNilOperand(t *testing.T) {
	a := MustDense(t, 2, 2)

	_, err := matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
