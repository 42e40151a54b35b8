// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense buffer, the Strassen engine
// and the multiply orchestrator. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Element is the constraint for values a Dense can hold.
// Signed integers multiply exactly; floats follow IEEE-754 rounding.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Matrix is the read-only view consumed by printers and writers.
// *Dense[T] is the only implementation in this module; the interface keeps
// csv writers and renderers independent of storage layout.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Element] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)
}

// LeafSizer yields the recursion cutover for one multiplication.
// Implementations decide where the value comes from (an explicit integer,
// a persisted calibration file, ...). Multiply calls LeafSize exactly once,
// before the first Strassen invocation.
type LeafSizer interface {
	LeafSize() (int, error)
}

// fixedLeaf is the LeafSizer behind WithLeafSize.
type fixedLeaf int

// LeafSize returns the stored value unchanged.
func (f fixedLeaf) LeafSize() (int, error) { return int(f), nil }
