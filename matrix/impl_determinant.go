// SPDX-License-Identifier: MIT

// Package matrix - determinant engine (minor extraction + cofactor expansion).
//
// Purpose:
//   - Minor: materialize the (r-1)×(c-1) submatrix without one row and one column.
//   - Determinant: Laplace expansion along the first row, recursively.
//
// Design:
//   - The recursion does not copy a minor per level. Since expansion always drops
//     the current first row, the rows alive at depth d are exactly d..n-1 of the
//     original; only the surviving column set varies. Each level therefore keeps
//     a column index list (a cofactor view over the original buffer) in a scratch
//     slice preallocated per depth.
//   - Terms are accumulated in the same order and association as the copying
//     textbook algorithm: det += (coeff*a[0,i]) * det(minor(0,i)), i ascending.
//     Minor + Determinant composed by hand therefore agree bit-for-bit.
//
// Complexity:
//   - Time O(n!) (intentional, no LU fallback), Space O(n²) for the scratch lists.

package matrix

import "fmt"

// Minor returns a fresh copy of m without row excludeRow and column excludeCol.
// Remaining rows/cols keep their original relative order.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions for a 0×0 operand.
//   - ErrOutOfRange when excludeRow/excludeCol is outside m.
//   - ErrInvalidDimensions when m has a single row or column (the minor would be empty).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Minor(m Matrix, excludeRow, excludeCol int) (*Dense, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if excludeRow < 0 || excludeRow >= rows || excludeCol < 0 || excludeCol >= cols {
		return nil, matrixErrorf(opMinor, fmt.Errorf("exclude (%d,%d): %w", excludeRow, excludeCol, ErrOutOfRange))
	}
	if rows == 1 || cols == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}

	src, ok := m.(*Dense)
	if !ok {
		var err error
		if src, err = toDense(m); err != nil {
			return nil, matrixErrorf(opMinor, err)
		}
	}

	res, err := src.Induced(skipIndex(rows, excludeRow), skipIndex(cols, excludeCol))
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// skipIndex returns 0..n-1 without skip.
func skipIndex(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}

// Determinant computes det(m) by cofactor expansion along the first row.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: take the flat buffer (copy only when m is not *Dense).
//   - Stage 3: recurse over a cofactorView; 1×1 is the base case.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (0×0), ErrNonSquare (wrapped with opDeterminant).
//
// Complexity:
//   - Time O(n!), Space O(n²).
func Determinant(m Matrix) (float64, error) {
	return DeterminantWithLimit(m, 0)
}

// DeterminantWithLimit is Determinant with an order guard: when maxOrder > 0 and
// the matrix order exceeds it, ErrOrderTooLarge is returned before any work.
// maxOrder <= 0 means unlimited.
func DeterminantWithLimit(m Matrix, maxOrder int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := m.Rows()
	if maxOrder > 0 && n > maxOrder {
		return 0, matrixErrorf(opDeterminant, fmt.Errorf("order %d > %d: %w", n, maxOrder, ErrOrderTooLarge))
	}

	src, ok := m.(*Dense)
	if !ok {
		var err error
		if src, err = toDense(m); err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
	}

	return newCofactorView(src).det(0), nil
}

// cofactorView is a column-exclusion mask over a square Dense. At depth d the
// live rows are d..n-1 and the live columns are scratch[d].
type cofactorView struct {
	n       int
	data    []float64
	scratch [][]int // scratch[d] holds the column list for depth d
}

func newCofactorView(m *Dense) *cofactorView {
	n := m.r
	v := &cofactorView{n: n, data: m.data, scratch: make([][]int, n)}
	for d := 0; d < n; d++ {
		v.scratch[d] = make([]int, n-d)
	}
	// depth 0 sees every column
	for j := 0; j < n; j++ {
		v.scratch[0][j] = j
	}

	return v
}

// det expands the view at the given depth using the columns in scratch[depth].
func (v *cofactorView) det(depth int) float64 {
	cols := v.scratch[depth]
	row := v.data[depth*v.n : (depth+1)*v.n]
	if len(cols) == 1 {
		return row[cols[0]]
	}

	sub := v.scratch[depth+1]
	det := ZeroSum
	var coeff float64
	for i, c := range cols {
		// sub = cols without position i
		copy(sub, cols[:i])
		copy(sub[i:], cols[i+1:])

		coeff = 1
		if i%2 != 0 {
			coeff = -1
		}
		det += coeff * row[c] * v.det(depth+1)
	}

	return det
}
