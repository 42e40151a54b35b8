// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers and WithX
// option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation
// tag via matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/dimension mismatch -> structural (square, power of two)
// -> configuration (leaf size, padding).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub on different shapes, or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotPowerOfTwo signals that the Strassen engine received a side length
	// that is not a power of two.
	ErrNotPowerOfTwo = errors.New("matrix: side length is not a power of two")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows signals row slices of unequal length at construction.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrInvalidLeafSize signals a recursion cutover below 1.
	ErrInvalidLeafSize = errors.New("matrix: leaf size must be >= 1")

	// ErrBadPad signals a requested padding side that is smaller than the
	// operands or not a power of two.
	ErrBadPad = errors.New("matrix: invalid padding size")
)
