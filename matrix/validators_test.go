// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
	require.NoError(t, matrix.ValidateNotNil(hide{MustDense(t, 1, 1)}))
}

func TestValidateSameShape(t *testing.T) {
	require.NoError(t, matrix.ValidateSameShape(MustDense(t, 2, 3), MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(MustDense(t, 2, 3), MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(MustDense(t, 2, 3), MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 4, 4)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 4, 2)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), nil), matrix.ErrNilMatrix)
}

func TestValidateBinarySameShape_Priority(t *testing.T) {
	// nil is reported before any shape comparison
	err := matrix.ValidateBinarySameShape(nil, MustDense(t, 9, 9))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestValidateNonEmpty(t *testing.T) {
	require.NoError(t, matrix.ValidateNonEmpty(MustDense(t, 1, 1)))
	require.ErrorIs(t, matrix.ValidateNonEmpty(&matrix.Dense{}), matrix.ErrInvalidDimensions)

	require.ErrorIs(t, matrix.ValidateOperand(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateOperand(&matrix.Dense{}), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateOperand(hide{&matrix.Dense{}}), matrix.ErrInvalidDimensions)
}

// errOf drops a kernel's value and keeps its error.
func errOf[T any](_ T, err error) error { return err }

// The zero-value Dense is a 0×0 matrix; every kernel must reject it instead of
// returning an empty result or indexing past it.
func TestKernels_RejectZeroValueDense(t *testing.T) {
	full := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	kernels := []struct {
		name string
		run  func(empty matrix.Matrix) error
	}{
		{"Add", func(e matrix.Matrix) error { return errOf(matrix.Add(e, e)) }},
		{"Sub", func(e matrix.Matrix) error { return errOf(matrix.Sub(full, e)) }},
		{"Mul", func(e matrix.Matrix) error { return errOf(matrix.Mul(e, e)) }},
		{"Scale", func(e matrix.Matrix) error { return errOf(matrix.Scale(e, 2)) }},
		{"Power", func(e matrix.Matrix) error { return errOf(matrix.Power(e, 1)) }},
		{"PowerZero", func(e matrix.Matrix) error { return errOf(matrix.Power(e, 0)) }},
		{"Equal", func(e matrix.Matrix) error { return errOf(matrix.Equal(e, e)) }},
		{"Trace", func(e matrix.Matrix) error { return errOf(matrix.Trace(e)) }},
		{"Determinant", func(e matrix.Matrix) error { return errOf(matrix.Determinant(e)) }},
		{"DeterminantWithLimit", func(e matrix.Matrix) error { return errOf(matrix.DeterminantWithLimit(e, 3)) }},
		{"Minor", func(e matrix.Matrix) error { return errOf(matrix.Minor(e, 0, 0)) }},
		{"ZerosLike", func(e matrix.Matrix) error { return errOf(matrix.ZerosLike(e)) }},
		{"IdentityLike", func(e matrix.Matrix) error { return errOf(matrix.IdentityLike(e)) }},
	}
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				require.ErrorIs(t, k.run(&matrix.Dense{}), matrix.ErrInvalidDimensions)
				require.ErrorIs(t, k.run(hide{&matrix.Dense{}}), matrix.ErrInvalidDimensions)
			})
		})
	}
}
