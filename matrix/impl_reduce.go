// SPDX-License-Identifier: MIT

// Package matrix - comparative and reductive kernels (Equal, Trace).
//
// Both kernels are read-only: they allocate nothing and never mutate operands.

package matrix

// Equal reports whether a and b have the same shape and bit-for-bit equal cells.
//
// Implementation:
//   - Stage 1: validate both operands non-nil and non-empty.
//   - Stage 2: different shapes → false immediately.
//   - Stage 3: walk every (i,j) over rows×cols; first mismatch short-circuits.
//
// Behavior highlights:
//   - Exact float64 comparison, no epsilon. NaN is never equal to anything,
//     so a matrix holding NaN is not Equal to itself.
//   - The inner bound is Cols(), so non-square shapes are compared in full.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (0×0 operand); a shape mismatch is a (false, nil) answer, not an error.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateOperand(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateOperand(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	// Fast path: compare flat buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false, nil
				}
			}

			return true, nil
		}
	}

	rows, cols := a.Rows(), a.Cols()
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}

// Trace returns Σ m[i,i] for a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare (wrapped with opTrace). A non-square input is
//     rejected instead of summing a truncated diagonal.
//
// Complexity:
//   - Time O(n), Space O(1).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	sum := ZeroSum
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += dm.data[i*n+i] // diagonal stride is n+1
		}

		return sum, nil
	}

	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}
