// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/matcalc/matrix"
)

// DefaultPrecision is the number of decimals written per cell.
const DefaultPrecision = 6

// Encode writes m to w, one row per line, cells as fixed-point with precision
// decimals separated by a single space. A negative precision selects
// DefaultPrecision.
func Encode(w io.Writer, m matrix.Matrix, precision int) error {
	if err := matrix.ValidateOperand(m); err != nil {
		return err
	}
	if precision < 0 {
		precision = DefaultPrecision
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			buf = strconv.AppendFloat(buf[:0], v, 'f', precision, 64)
			_, _ = bw.Write(buf)
		}
		_ = bw.WriteByte('\n')
	}

	// bufio.Writer keeps the first error and reports it here
	return bw.Flush()
}

// WriteFile creates (or truncates) path and encodes m into it.
// Every failure, including the final Close, is reported as ErrWriteFailed.
func WriteFile(path string, m matrix.Matrix, precision int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWriteFailed, cerr)
		}
	}()

	if err = Encode(f, m, precision); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}

	return nil
}

