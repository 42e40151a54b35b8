// SPDX-License-Identifier: MIT

// Package matrix - Multiply orchestrator.
//
// Purpose:
//   - Accept two arbitrarily shaped operands, pad them to a common power-of-two
//     square, run the Strassen engine and cut the m1×n2 product back out.
//
// Padding invariant:
//   - Extra zero rows/columns never perturb the product over the original
//     index range, so the extracted block is independent of the padded side.

package matrix

import "fmt"

// Multiply computes C = A × B for A (m1×n1) and B (m2×n2), n1 == m2.
// MAIN DESCRIPTION:
//   - General entry point. The leaf size comes from the options (WithLeafSize,
//     WithLeafSizer, or DefaultLeafSize) and is resolved exactly once.
//
// Implementation:
//   - Stage 1: validate non-nil operands and inner dimensions before any allocation.
//   - Stage 2: resolve options and the leaf size.
//   - Stage 3: dim = NextPowerOfTwo(max(m1, n1, n2)), or the WithPadTo side.
//   - Stage 4: pad A and B into dim×dim zero buffers and run the engine.
//   - Stage 5: extract the top-left m1×n2 block; padded buffers are dropped.
//   - Stage 6: optional echo of A, B and the result to the configured printer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (message names both shapes),
//     ErrInvalidLeafSize, ErrBadPad, LeafSizer errors, printer write errors.
//     All wrapped with "Multiply".
//
// Complexity:
//   - Time O(dim^2.807) above the cutover, Space O(dim^2).
//
// AI-Hints:
//   - Compare against MulNaive with AllClose for floats, Equal for integers.
func Multiply[T Element](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	o := gatherOptions(opts...)
	leaf, err := o.leafSize()
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	m1, n1, n2 := a.r, a.c, b.c
	dim := NextPowerOfTwo(max(m1, n1, n2))
	if o.padTo != DefaultPadTo {
		if o.padTo < dim {
			return nil, matrixErrorf(opMultiply,
				fmt.Errorf("pad side %d is below the minimum %d: %w", o.padTo, dim, ErrBadPad))
		}
		dim = o.padTo
	}

	pa, err := padSquare(a, dim)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	pb, err := padSquare(b, dim)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	pc, err := NewSquare[T](dim)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	e := engine[T]{leaf: leaf}
	e.mul(pc.block(), pa.block(), pb.block(), 0)

	res := extract(pc, m1, n2)

	if o.printer != nil {
		if err = echo(o.printer, a, b, res); err != nil {
			return nil, matrixErrorf(opMultiply, err)
		}
	}

	return res, nil
}

// NextPowerOfTwo returns the smallest power of two ≥ n. Values ≤ 1 yield 1.
// Complexity: O(log n).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// IsPowerOfTwo reports whether n is a positive power of two.
// Complexity: O(1).
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// padSquare copies m into the top-left corner of a zero-filled dim×dim buffer.
// dim ≥ max(m.r, m.c) is guaranteed by the caller.
func padSquare[T Element](m *Dense[T], dim int) (*Dense[T], error) {
	p, err := NewSquare[T](dim)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		copy(p.data[i*dim:i*dim+m.c], m.data[i*m.c:(i+1)*m.c])
	}

	return p, nil
}

// extract copies the top-left rows×cols block of the square buffer p.
func extract[T Element](p *Dense[T], rows, cols int) *Dense[T] {
	out := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], p.data[i*p.c:i*p.c+cols])
	}

	return out
}
