// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
func NewZeros[T Element](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c). Handy to preallocate staging buffers.
func ZerosLike[T Element](m Matrix[T]) (*Dense[T], error) {
	return NewDense[T](m.Rows(), m.Cols())
}

// MulWithLeafSize is Multiply with a fixed cutover and no other options.
// The calibrator times exactly this call for every candidate leaf size.
//
// Errors: as Multiply.
// Complexity: as Multiply.
func MulWithLeafSize[T Element](a, b *Dense[T], leaf int) (*Dense[T], error) {
	if err := ValidateLeafSize(leaf); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return Multiply(a, b, WithLeafSize(leaf))
}

// Square returns m·m for a square m via Multiply.
// Errors: ErrNilMatrix, ErrNonSquare (wrapped with "Multiply").
func Square[T Element](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return Multiply(m, m, opts...)
}
