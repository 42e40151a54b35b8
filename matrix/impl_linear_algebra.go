// SPDX-License-Identifier: MIT
// Package matrix provides the dense kernels around the Strassen engine:
// element-wise addition and subtraction, the cubic reference product,
// transpose and a tolerance comparison. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMulNaive  = "MulNaive"
	opTranspose = "Transpose"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b (sub=false) or a − b (sub=true).
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: single flat loop 0..n-1 over the backing slices.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - A bool switch instead of a sign multiplier keeps integer types exact
//     and avoids a multiply in the hot loop.
func addSub[T Element](a, b *Dense[T], sub bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense[T](a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if sub {
		for idx := range res.data { // deterministic 0..n-1
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := range res.data {
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Bandwidth-bound.
func Add[T Element](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Bandwidth-bound.
func Sub[T Element](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// MulNaive performs the direct cubic product C = A × B (no aliasing).
// It is the reference every Strassen result is checked against.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides; zero A[i,k] entries are skipped.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulNaive[T Element](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}

	var i, j, k int
	var av T
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is never mutated; Transpose(Transpose(m)) equals m.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose[T Element](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res, err := NewDense[T](cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// AllClose checks element-wise |a−b| ≤ atol + rtol·|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close. Integer types compare exactly when both tolerances are 0.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose[T Element](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var x, y float64
	for idx := range a.data {
		x, y = float64(a.data[idx]), float64(b.data[idx])
		if x == y { // covers equal infinities
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) {
			return false, nil
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
