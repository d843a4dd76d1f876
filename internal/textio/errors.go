// SPDX-License-Identifier: MIT

package textio

import "errors"

var (
	// ErrUnreadable is returned when the source cannot be opened or read before
	// a single row was parsed. The underlying os/io error is wrapped alongside.
	ErrUnreadable = errors.New("textio: matrix source unreadable")

	// ErrFirstRowUnreadable is returned when the first non-blank line holds no
	// parseable number (or there is no non-blank line at all), so the column
	// count cannot be fixed.
	ErrFirstRowUnreadable = errors.New("textio: first row has no parseable numbers")

	// ErrWriteFailed wraps any failure to create, write or close an output file.
	ErrWriteFailed = errors.New("textio: matrix write failed")
)
