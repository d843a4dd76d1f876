// SPDX-License-Identifier: MIT

// Package command turns argv into a typed calculator command and executes it.
//
// Invocations:
//
//	add      A B OUT
//	subtract A B OUT
//	multiply A B|SCALAR OUT
//	equal    A B
//	trace    A
//	det      A
//	power    A N OUT
//	batch    SCRIPT
//
// OUT may be "-" for standard output.
package command

import (
	"strconv"
)

// Op names a calculator operation.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpScale
	OpEqual
	OpTrace
	OpDet
	OpPower
	OpBatch
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply, OpScale:
		return "multiply"
	case OpEqual:
		return "equal"
	case OpTrace:
		return "trace"
	case OpDet:
		return "det"
	case OpPower:
		return "power"
	case OpBatch:
		return "batch"
	default:
		return "op(" + strconv.Itoa(int(o)) + ")"
	}
}

// Command is one resolved invocation.
type Command interface {
	Op() Op
}

type (
	// AddCmd writes A+B to Out.
	AddCmd struct{ A, B, Out string }
	// SubtractCmd writes A-B to Out.
	SubtractCmd struct{ A, B, Out string }
	// MultiplyCmd writes the matrix product A·B to Out.
	MultiplyCmd struct{ A, B, Out string }
	// ScaleCmd writes Scalar·A to Out.
	ScaleCmd struct {
		A      string
		Scalar float64
		Out    string
	}
	// EqualCmd reports whether A and B match element-wise.
	EqualCmd struct{ A, B string }
	// TraceCmd prints the trace of A.
	TraceCmd struct{ A string }
	// DetCmd prints the determinant of A.
	DetCmd struct{ A string }
	// PowerCmd writes A^N to Out.
	PowerCmd struct {
		A   string
		N   int
		Out string
	}
	// BatchCmd replays every invocation listed in Script.
	BatchCmd struct{ Script string }
)

func (AddCmd) Op() Op      { return OpAdd }
func (SubtractCmd) Op() Op { return OpSubtract }
func (MultiplyCmd) Op() Op { return OpMultiply }
func (ScaleCmd) Op() Op    { return OpScale }
func (EqualCmd) Op() Op    { return OpEqual }
func (TraceCmd) Op() Op    { return OpTrace }
func (DetCmd) Op() Op      { return OpDet }
func (PowerCmd) Op() Op    { return OpPower }
func (BatchCmd) Op() Op    { return OpBatch }

// arity is the number of operands after the operation name.
var arity = map[string]int{
	"add":      3,
	"subtract": 3,
	"multiply": 3,
	"equal":    2,
	"trace":    1,
	"det":      1,
	"power":    3,
	"batch":    1,
}

// Parse resolves args (operation name first, program name excluded).
//
// Errors are *ParseError wrapping ErrWrongArgCount, ErrUnknownOperation or
// ErrInvalidExponent.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &ParseError{Err: ErrWrongArgCount}
	}

	op, rest := args[0], args[1:]
	want, ok := arity[op]
	if !ok {
		return nil, &ParseError{Op: op, Err: ErrUnknownOperation}
	}
	if len(rest) != want {
		return nil, &ParseError{Op: op, Err: ErrWrongArgCount}
	}

	switch op {
	case "add":
		return AddCmd{A: rest[0], B: rest[1], Out: rest[2]}, nil
	case "subtract":
		return SubtractCmd{A: rest[0], B: rest[1], Out: rest[2]}, nil
	case "multiply":
		if s, ok := parseScalar(rest[1]); ok {
			return ScaleCmd{A: rest[0], Scalar: s, Out: rest[2]}, nil
		}
		return MultiplyCmd{A: rest[0], B: rest[1], Out: rest[2]}, nil
	case "equal":
		return EqualCmd{A: rest[0], B: rest[1]}, nil
	case "trace":
		return TraceCmd{A: rest[0]}, nil
	case "det":
		return DetCmd{A: rest[0]}, nil
	case "power":
		n, err := strconv.Atoi(rest[1])
		if err != nil || n < 0 {
			return nil, &ParseError{Op: op, Arg: rest[1], Err: ErrInvalidExponent}
		}
		return PowerCmd{A: rest[0], N: n, Out: rest[2]}, nil
	default: // batch
		return BatchCmd{Script: rest[0]}, nil
	}
}

// parseScalar accepts tokens made only of digits and dots that also parse as
// a float. Anything else, a leading sign included, names a matrix file.
func parseScalar(tok string) (float64, bool) {
	if tok == "" {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if c := tok[i]; c != '.' && (c < '0' || c > '9') {
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
