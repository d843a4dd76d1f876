package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// ExampleDeterminant evaluates a 2×2 determinant and trace.
func ExampleDeterminant() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})

	det, _ := matrix.Determinant(a)
	tr, _ := matrix.Trace(a)
	fmt.Printf("det: %f\n", det)
	fmt.Printf("trace: %f\n", tr)

	// Output:
	// det: -2.000000
	// trace: 5.000000
}

// ExampleAdd shows the shape check every element-wise kernel performs.
func ExampleAdd() {
	a, _ := matrix.NewIdentity(2)
	b, _ := matrix.NewIdentity(3)

	_, err := matrix.Add(a, b)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	sum, _ := matrix.Add(a, a)
	fmt.Print(sum)

	// Output:
	// true
	// [2, 0]
	// [0, 2]
}

// ExamplePower raises the Fibonacci Q-matrix to the 10th power.
func ExamplePower() {
	q, _ := matrix.NewDenseFrom([][]float64{{1, 1}, {1, 0}})

	p, _ := matrix.Power(q, 10)
	fib, _ := p.At(0, 1)
	fmt.Println(fib)

	// Output:
	// 55
}
