// Package matrix_test contains unit tests for the central validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/jamesbray03/lml/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateBinarySameShape(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3)
	c := MustDense(t, 3, 2)

	require.NoError(t, matrix.ValidateBinarySameShape(a, b))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, c), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestValidateMulShape(t *testing.T) {
	require.NoError(t, matrix.ValidateMulShape(MustDense(t, 2, 3), MustDense(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateMulShape(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestValidateWindow(t *testing.T) {
	m := MustDense(t, 3, 4)

	require.NoError(t, matrix.ValidateWindow(m, 0, 0, 3, 4))
	require.NoError(t, matrix.ValidateWindow(m, 2, 3, 1, 1))
	require.ErrorIs(t, matrix.ValidateWindow(m, 0, 0, 4, 1), matrix.ErrBadWindow)
	require.ErrorIs(t, matrix.ValidateWindow(m, 0, 0, 1, 5), matrix.ErrBadWindow)
	require.ErrorIs(t, matrix.ValidateWindow(m, -1, 0, 1, 1), matrix.ErrBadWindow)
	require.ErrorIs(t, matrix.ValidateWindow(m, 0, 0, 0, 1), matrix.ErrBadWindow)
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, matrix.ValidateFinite(0))
	require.NoError(t, matrix.ValidateFinite(-1e300))
	require.ErrorIs(t, matrix.ValidateFinite(math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(math.Inf(-1)), matrix.ErrNaNInf)
}

func TestWithEpsilonPanicsOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Eps())
	require.True(t, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithEpsilon(1e-6), matrix.WithNoValidateNaNInf())
	require.Equal(t, 1e-6, o.Eps())
	require.False(t, o.ValidateNaNInf())
}
