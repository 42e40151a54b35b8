// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/structure checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Element](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels.
func ValidateSameShape[T Element](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[T Element](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// The mismatch message carries both shapes so operators can see which file
// was wrong without re-reading them.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Element](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("inner dimensions differ (A is %dx%d, B is %dx%d): %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateStrassenOperands checks the engine precondition: both operands
// square, of equal side, and the side a power of two.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNotPowerOfTwo.
// Complexity: O(1).
func ValidateStrassenOperands[T Element](a, b *Dense[T]) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateStrassenOperands", err)
	}
	if err := ValidateSquare(b); err != nil {
		return validatorErrorf("ValidateStrassenOperands", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateStrassenOperands", ErrDimensionMismatch)
	}
	if !IsPowerOfTwo(a.r) {
		return validatorErrorf("ValidateStrassenOperands", ErrNotPowerOfTwo)
	}

	return nil
}

// ValidateLeafSize rejects cutovers below 1.
// Complexity: O(1).
func ValidateLeafSize(leaf int) error {
	if leaf < 1 {
		return validatorErrorf("ValidateLeafSize", fmt.Errorf("got %d: %w", leaf, ErrInvalidLeafSize))
	}

	return nil
}
