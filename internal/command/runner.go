// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/textio"
	"github.com/katalvlaran/matcalc/matrix"
)

// Exit codes returned by Runner.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// StdoutPath selects the runner's Out writer as the output destination.
const StdoutPath = "-"

// User-facing reports. They go to Out and do not change the exit code.
const (
	msgWrongArgs      = "Wrong number of arguments.\n"
	msgUnknownOp      = "%s: Unknown operation %s\n"
	msgInvalidExp     = "Invalid exponent: %s\n"
	msgSizeMismatch   = "Matrix sizes do not match.\n"
	msgCannotMultiply = "Cannot multiply these dimensions.\n"
	msgNotSquare      = "Matrix is not square. :( \n"
	msgTooLarge       = "Matrix is too large for cofactor expansion.\n"
	msgEqual          = "Equal.\n"
	msgNotEqual       = "Not equal.\n"
)

// Runner executes commands. Results and reports go to Out, diagnostics to Log.
type Runner struct {
	Out    io.Writer
	Log    *log.Logger
	Config config.Config
}

// NewRunner builds a Runner. A nil logger discards diagnostics.
func NewRunner(out io.Writer, logger *log.Logger, cfg config.Config) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{Out: out, Log: logger, Config: cfg}
}

// Execute parses args and runs the resulting command, returning the exit code.
func (r *Runner) Execute(args []string) int {
	cmd, err := Parse(args)
	if err != nil {
		return r.reportParseError(err)
	}
	return r.Run(cmd)
}

// Run executes an already parsed command and returns the exit code.
func (r *Runner) Run(cmd Command) int {
	if r.Config.Verbose {
		r.Log.Printf("run %s %+v", cmd.Op(), cmd)
	}

	switch c := cmd.(type) {
	case AddCmd:
		return r.elementwise(c.A, c.B, c.Out, matrix.Add)
	case SubtractCmd:
		return r.elementwise(c.A, c.B, c.Out, matrix.Sub)
	case MultiplyCmd:
		return r.multiply(c)
	case ScaleCmd:
		return r.scale(c)
	case EqualCmd:
		return r.equal(c)
	case TraceCmd:
		return r.trace(c)
	case DetCmd:
		return r.det(c)
	case PowerCmd:
		return r.power(c)
	case BatchCmd:
		return r.batch(c)
	default:
		r.Log.Printf("unsupported command %T", cmd)
		return ExitFailure
	}
}

func (r *Runner) reportParseError(err error) int {
	var pe *ParseError
	if !errors.As(err, &pe) {
		r.Log.Print(err)
		return ExitFailure
	}

	switch {
	case errors.Is(err, ErrUnknownOperation):
		r.printf(msgUnknownOp, pe.Op, pe.Op)
	case errors.Is(err, ErrInvalidExponent):
		r.printf(msgInvalidExp, pe.Arg)
	default:
		r.printf(msgWrongArgs)
	}

	return ExitOK
}

func (r *Runner) elementwise(pathA, pathB, out string, fn func(a, b matrix.Matrix) (*matrix.Dense, error)) int {
	a, b, ok := r.loadPair(pathA, pathB)
	if !ok {
		return ExitFailure
	}

	res, err := fn(a, b)
	if errors.Is(err, matrix.ErrDimensionMismatch) {
		r.printf(msgSizeMismatch)
		return ExitOK
	}
	if err != nil {
		r.Log.Print(err)
		return ExitFailure
	}

	return r.store(out, res)
}

func (r *Runner) multiply(c MultiplyCmd) int {
	a, b, ok := r.loadPair(c.A, c.B)
	if !ok {
		return ExitFailure
	}

	res, err := matrix.Mul(a, b)
	if errors.Is(err, matrix.ErrDimensionMismatch) {
		r.printf(msgCannotMultiply)
		return ExitOK
	}
	if err != nil {
		r.Log.Print(err)
		return ExitFailure
	}

	return r.store(c.Out, res)
}

func (r *Runner) scale(c ScaleCmd) int {
	a, ok := r.load(c.A)
	if !ok {
		return ExitFailure
	}

	res, err := matrix.Scale(a, c.Scalar)
	if err != nil {
		r.Log.Print(err)
		return ExitFailure
	}

	return r.store(c.Out, res)
}

func (r *Runner) equal(c EqualCmd) int {
	a, b, ok := r.loadPair(c.A, c.B)
	if !ok {
		return ExitFailure
	}

	eq, err := matrix.Equal(a, b)
	if err != nil {
		r.Log.Print(err)
		return ExitFailure
	}
	if eq {
		r.printf(msgEqual)
	} else {
		r.printf(msgNotEqual)
	}

	return ExitOK
}

func (r *Runner) trace(c TraceCmd) int {
	a, ok := r.load(c.A)
	if !ok {
		return ExitFailure
	}

	tr, err := matrix.Trace(a)
	if errors.Is(err, matrix.ErrNonSquare) {
		r.printf(msgNotSquare)
		return ExitOK
	}
	if err != nil {
		r.Log.Print(err)
		return ExitFailure
	}
	r.printf("Trace = %.*f.\n", r.Config.Precision, tr)

	return ExitOK
}

func (r *Runner) det(c DetCmd) int {
	a, ok := r.load(c.A)
	if !ok {
		return ExitFailure
	}

	d, err := matrix.DeterminantWithLimit(a, r.Config.MaxDetOrder)
	switch {
	case errors.Is(err, matrix.ErrNonSquare):
		r.printf(msgNotSquare)
		return ExitOK
	case errors.Is(err, matrix.ErrOrderTooLarge):
		r.printf(msgTooLarge)
		return ExitOK
	case err != nil:
		r.Log.Print(err)
		return ExitFailure
	}
	r.printf("det: %.*f\n", r.Config.Precision, d)

	return ExitOK
}

func (r *Runner) power(c PowerCmd) int {
	a, ok := r.load(c.A)
	if !ok {
		return ExitFailure
	}

	res, err := matrix.Power(a, c.N)
	switch {
	case errors.Is(err, matrix.ErrNonSquare):
		r.printf(msgNotSquare)
		return ExitOK
	case errors.Is(err, matrix.ErrNegativeExponent):
		r.printf(msgInvalidExp, fmt.Sprint(c.N))
		return ExitOK
	case err != nil:
		r.Log.Print(err)
		return ExitFailure
	}

	return r.store(c.Out, res)
}

// loadPair reads both inputs so that every unreadable file gets logged.
func (r *Runner) loadPair(pathA, pathB string) (*matrix.Dense, *matrix.Dense, bool) {
	a, okA := r.load(pathA)
	b, okB := r.load(pathB)

	return a, b, okA && okB
}

func (r *Runner) load(path string) (*matrix.Dense, bool) {
	m, rep, err := textio.ReadFile(path)
	if err != nil {
		r.Log.Printf("could not read matrix: %v", err)
		return nil, false
	}
	if rep.PaddedCells > 0 {
		r.Log.Printf("warning: %s: %d cell(s) zero-filled in row(s) %v", path, rep.PaddedCells, rep.PaddedRows)
	}
	if rep.Truncated {
		r.Log.Printf("warning: %s: read stopped after %d row(s)", path, rep.Rows)
	}
	if r.Config.Verbose {
		r.Log.Printf("loaded %s: %dx%d", path, m.Rows(), m.Cols())
	}

	return m, true
}

func (r *Runner) store(path string, m *matrix.Dense) int {
	var err error
	if path == StdoutPath {
		err = textio.Encode(r.Out, m, r.Config.Precision)
	} else {
		err = textio.WriteFile(path, m, r.Config.Precision)
	}
	if err != nil {
		r.Log.Printf("could not write matrix: %v", err)
		return ExitFailure
	}
	if r.Config.Verbose {
		r.Log.Printf("wrote %s: %dx%d", path, m.Rows(), m.Cols())
	}

	return ExitOK
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.Out, format, args...)
}
