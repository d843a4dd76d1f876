// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestEqual(t *testing.T) {
	base := [][]float64{{1, 2, 3}, {4, 5, 6}}

	cases := []struct {
		name string
		b    [][]float64
		want bool
	}{
		{"identical", [][]float64{{1, 2, 3}, {4, 5, 6}}, true},
		{"last column differs", [][]float64{{1, 2, 3}, {4, 5, 7}}, false},
		{"first cell differs", [][]float64{{0, 2, 3}, {4, 5, 6}}, false},
		{"transposed shape", [][]float64{{1, 4}, {2, 5}, {3, 6}}, false},
		{"fewer rows", [][]float64{{1, 2, 3}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := MustFrom(t, base)
			b := MustFrom(t, tc.b)

			got, err := matrix.Equal(a, b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			got, err = matrix.Equal(hide{a}, hide{b})
			require.NoError(t, err)
			require.Equal(t, tc.want, got, "fallback path")
		})
	}
}

// A 2×3 pair differing only in column 2 must not compare equal; a rows-bounded
// inner loop would stop at column 1 and miss it.
func TestEqual_WideMatrixComparesEveryColumn(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 1, 1}, {1, 1, 1}})
	b := MustFrom(t, [][]float64{{1, 1, 2}, {1, 1, 1}})

	got, err := matrix.Equal(hide{a}, hide{b})
	require.NoError(t, err)
	require.False(t, got)
}

func TestEqual_NaNNeverEqual(t *testing.T) {
	a := MustFrom(t, [][]float64{{math.NaN()}})
	got, err := matrix.Equal(a, a)
	require.NoError(t, err)
	require.False(t, got)
}

func TestEqual_Nil(t *testing.T) {
	_, err := matrix.Equal(nil, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTrace(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	tr, err := matrix.Trace(a)
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	tr, err = matrix.Tr(hide{a})
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)
}

func TestTrace_NonSquare(t *testing.T) {
	_, err := matrix.Trace(MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
