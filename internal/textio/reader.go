// SPDX-License-Identifier: MIT

// Package textio reads and writes matrices in the whitespace-delimited text
// format: one row per line, cells separated by spaces or tabs.
//
// Reading rules:
//   - The column count is the number of leading parseable numbers on the first
//     non-blank line; a first line with none is a total failure.
//   - Every later line contributes one row. Cells are parsed left to right up to
//     the column count; the first unparseable token ends the row and the
//     remaining cells are zero. Extra tokens are ignored.
//   - Whitespace-only lines are skipped.
//   - A token is a number only if it parses in full: "1.5abc" ends the row
//     rather than contributing 1.5. Out-of-range literals such as 1e400
//     read as ±Inf.
//
// Writing emits each cell as fixed-point with a configurable number of decimals
// (6 by default), one space between cells, one row per line.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// maxLineBytes bounds a single input line. Longer lines fail the scan.
const maxLineBytes = 16 << 20

// Report describes how faithfully the source was parsed. A non-empty report is
// the "partial parse" case: the matrix is usable but some cells were zero-filled
// or trailing input was lost.
type Report struct {
	Rows        int   // rows in the returned matrix
	Cols        int   // columns fixed by the first row
	PaddedRows  []int // zero-based indices of rows that were zero-filled
	PaddedCells int   // total zero-filled cells
	Truncated   bool  // a read error stopped parsing after at least one row
}

// Partial reports whether any recovery took place.
func (r Report) Partial() bool {
	return r.PaddedCells > 0 || r.Truncated
}

// ReadFile opens path and decodes a matrix from it.
//
// Errors:
//   - ErrUnreadable (wrapping the os error) when the file cannot be opened.
//   - Anything Decode returns.
func ReadFile(path string) (*matrix.Dense, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	m, rep, err := Decode(f)
	if err != nil {
		return nil, rep, fmt.Errorf("read %s: %w", path, err)
	}

	return m, rep, nil
}

// Decode parses a matrix from r following the package reading rules.
//
// Errors:
//   - ErrFirstRowUnreadable when the column count cannot be established.
//   - ErrUnreadable when the reader fails before the first row was parsed.
func Decode(r io.Reader) (*matrix.Dense, Report, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rep  Report
		rows [][]float64
	)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if rows == nil {
			first := leadingNumbers(fields)
			if len(first) == 0 {
				return nil, rep, ErrFirstRowUnreadable
			}
			rep.Cols = len(first)
			rows = append(rows, first)
			continue
		}

		row, parsed := parseRow(fields, rep.Cols)
		if padded := rep.Cols - parsed; padded > 0 {
			rep.PaddedRows = append(rep.PaddedRows, len(rows))
			rep.PaddedCells += padded
		}
		rows = append(rows, row)
	}

	if err := sc.Err(); err != nil {
		if rows == nil {
			return nil, rep, fmt.Errorf("%w: %w", ErrUnreadable, err)
		}
		rep.Truncated = true
	}
	if rows == nil {
		return nil, rep, ErrFirstRowUnreadable
	}

	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, rep, err
	}
	rep.Rows = len(rows)

	return m, rep, nil
}

// leadingNumbers parses tokens until the first one that is not a number.
func leadingNumbers(fields []string) []float64 {
	out := make([]float64, 0, len(fields))
	for _, tok := range fields {
		v, ok := parseCell(tok)
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

// parseRow fills a row of exactly cols cells and returns how many were parsed.
func parseRow(fields []string, cols int) ([]float64, int) {
	row := make([]float64, cols)
	parsed := 0
	for parsed < cols && parsed < len(fields) {
		v, ok := parseCell(fields[parsed])
		if !ok {
			break
		}
		row[parsed] = v
		parsed++
	}

	return row, parsed
}

// parseCell parses one token. Literals beyond float64 range are kept as the
// ±Inf (or ±0 on underflow) that ParseFloat returns alongside ErrRange.
func parseCell(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return v, true
}
