// SPDX-License-Identifier: MIT
// Package csvio: sentinel error set.
// Every message is prefixed with "csvio: ..."; call sites wrap these with the
// path or the cell position, and callers match with errors.Is.

package csvio

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that a matrix file does not exist.
	ErrNotFound = errors.New("csvio: matrix file not found")

	// ErrEmpty indicates a file or stream without a single row.
	ErrEmpty = errors.New("csvio: no rows")

	// ErrRaggedRows indicates rows with different cell counts.
	ErrRaggedRows = errors.New("csvio: rows have unequal length")

	// ErrMalformedCell indicates a cell that does not parse as the element type.
	// Returned only in strict mode (the default).
	ErrMalformedCell = errors.New("csvio: malformed cell")
)

// csvErrorf wraps err with an operation tag and a subject (usually a path).
func csvErrorf(op, subject string, err error) error {
	return fmt.Errorf("%s %s: %w", op, subject, err)
}
