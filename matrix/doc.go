// Package matrix provides a dense, row-major float64 matrix and the textbook
// linear-algebra kernels built on it.
//
// What & Why:
//
//	Dense stores r×c values in one flat slice (offset = i*c + j). Every kernel
//	accepts the Matrix interface, validates shapes up front, and returns a
//	freshly allocated *Dense. Operands are never mutated or aliased, so a
//	result can outlive, and be released independently of, its inputs.
//
// Kernels:
//
//	Add, Sub        element-wise, equal shapes            O(r*c)
//	Mul             matrix product, A.Cols == B.Rows       O(r*n*c)
//	Scale           scalar multiple                        O(r*c)
//	Power           repeated Mul, square only, A⁰ = I      O(n*k³)
//	Equal           exact shape + cell comparison          O(r*c)
//	Trace           diagonal sum, square only              O(n)
//	Minor           copy without one row and one column    O(r*c)
//	Determinant     first-row cofactor expansion           O(n!)
//
// Errors:
//
//	All failures are sentinels from errors.go (ErrDimensionMismatch,
//	ErrNonSquare, ...) wrapped with the operation name; match them with
//	errors.Is. No kernel panics on user input, and numeric conditions
//	(overflow, NaN) follow IEEE-754 without raising errors.
//
// Determinant is intentionally the naive recursive expansion: no pivoting,
// no LU. It is meant for small matrices; see DeterminantWithLimit for a guard.
package matrix
