// SPDX-License-Identifier: MIT

// Package matrix - Strassen engine.
//
// Purpose:
//   - Multiply two n×n blocks (n a power of two) with Strassen's seven-product
//     recursion above the leaf size and the cubic kernel at or below it.
//
// Determinism:
//   - Fixed product order P1..P7 and fixed combination order, so float results
//     are reproducible run to run for a given leaf size.
//
// Complexity:
//   - O(n^log2(7)) ≈ O(n^2.807) above the cutover, O(n^3) at or below it.

package matrix

// Operation name constants for unified error wrapping.
const (
	opStrassen = "Strassen"
	opMultiply = "Multiply"
)

// Strassen multiplies two n×n operands, n a power of two, switching to the
// cubic kernel once a block side is ≤ leaf.
// MAIN DESCRIPTION:
//   - Public entry to the engine for callers that already hold padded
//     square operands. Multiply is the general entry point.
//
// Implementation:
//   - Stage 1: validate square/equal/power-of-two operands and leaf ≥ 1.
//   - Stage 2: allocate the n×n result (the only buffer handed to the caller).
//   - Stage 3: recurse with a fresh arena; scratch is released level by level.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNotPowerOfTwo,
//     ErrInvalidLeafSize (all wrapped with "Strassen").
//
// Complexity:
//   - Time O(n^2.807), Space O(n^2) scratch plus the result.
func Strassen[T Element](a, b *Dense[T], leaf int) (*Dense[T], error) {
	if err := ValidateStrassenOperands(a, b); err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	if err := ValidateLeafSize(leaf); err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	c, err := NewSquare[T](a.r)
	if err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	e := engine[T]{leaf: leaf}
	e.mul(c.block(), a.block(), b.block(), 0)

	return c, nil
}

// engine carries the per-call cutover and scratch arena.
// One engine serves exactly one top-level multiplication.
type engine[T Element] struct {
	leaf  int
	arena arena[T]
}

// mul writes a·b into dst. dst is owned by the caller (the parent frame, or
// the result buffer at depth 0) and is fully overwritten.
func (e *engine[T]) mul(dst, a, b block[T], depth int) {
	if a.n <= e.leaf {
		mulBlockNaive(dst, a, b)
		return
	}

	k := a.n / 2
	f := e.arena.frame(depth, k)
	defer f.release() // every temporary below dies with this frame

	a11, a12, a21, a22 := a.quad(0, 0), a.quad(0, 1), a.quad(1, 0), a.quad(1, 1)
	b11, b12, b21, b22 := b.quad(0, 0), b.quad(0, 1), b.quad(1, 0), b.quad(1, 1)

	// l and r hold the left and right operand sums; each product overwrites
	// them completely before use.
	l, r := f.alloc(), f.alloc()
	p1, p2, p3, p4 := f.alloc(), f.alloc(), f.alloc(), f.alloc()
	p5, p6, p7 := f.alloc(), f.alloc(), f.alloc()

	next := depth + 1

	// P1 = A11·(B12 − B22)
	subInto(r, b12, b22)
	e.mul(p1, a11, r, next)
	// P2 = (A11 + A12)·B22
	addInto(l, a11, a12)
	e.mul(p2, l, b22, next)
	// P3 = (A21 + A22)·B11
	addInto(l, a21, a22)
	e.mul(p3, l, b11, next)
	// P4 = A22·(B21 − B11)
	subInto(r, b21, b11)
	e.mul(p4, a22, r, next)
	// P5 = (A11 + A22)·(B11 + B22)
	addInto(l, a11, a22)
	addInto(r, b11, b22)
	e.mul(p5, l, r, next)
	// P6 = (A12 − A22)·(B21 + B22)
	subInto(l, a12, a22)
	addInto(r, b21, b22)
	e.mul(p6, l, r, next)
	// P7 = (A11 − A21)·(B11 + B12)
	subInto(l, a11, a21)
	addInto(r, b11, b12)
	e.mul(p7, l, r, next)

	combine(dst, p1, p2, p3, p4, p5, p6, p7)
}

// combine assembles the four quadrants of dst:
//
//	C11 = P5 + P4 + P6 − P2
//	C12 = P1 + P2
//	C21 = P3 + P4
//	C22 = P5 + P1 − P3 − P7
//
// Products are contiguous k×k slots (stride k); dst may be a strided view.
func combine[T Element](dst, p1, p2, p3, p4, p5, p6, p7 block[T]) {
	k := p1.n
	c11, c12, c21, c22 := dst.quad(0, 0), dst.quad(0, 1), dst.quad(1, 0), dst.quad(1, 1)

	var i, j, src, out int
	for i = 0; i < k; i++ {
		src = i * k
		out = i * dst.stride
		for j = 0; j < k; j++ {
			c11.data[out+j] = p5.data[src+j] + p4.data[src+j] + p6.data[src+j] - p2.data[src+j]
			c12.data[out+j] = p1.data[src+j] + p2.data[src+j]
			c21.data[out+j] = p3.data[src+j] + p4.data[src+j]
			c22.data[out+j] = p5.data[src+j] + p1.data[src+j] - p3.data[src+j] - p7.data[src+j]
		}
	}
}

// mulBlockNaive is the cubic base case: dst = a·b.
// Loop order i→k→j walks a's row and b's rows contiguously; zero a[i,k]
// entries are skipped, which pays off on padded operands.
func mulBlockNaive[T Element](dst, a, b block[T]) {
	n := a.n
	var i, j, k, rowA, rowB, rowC int
	var av T
	for i = 0; i < n; i++ {
		rowC = i * dst.stride
		clear(dst.data[rowC : rowC+n])
	}
	for i = 0; i < n; i++ {
		rowA = i * a.stride
		rowC = i * dst.stride
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * b.stride
			for j = 0; j < n; j++ {
				dst.data[rowC+j] += av * b.data[rowB+j]
			}
		}
	}
}

// addInto writes x + y into dst (all side n). Operands are not mutated.
func addInto[T Element](dst, x, y block[T]) {
	var i, j, rx, ry, rd int
	for i = 0; i < dst.n; i++ {
		rx, ry, rd = i*x.stride, i*y.stride, i*dst.stride
		for j = 0; j < dst.n; j++ {
			dst.data[rd+j] = x.data[rx+j] + y.data[ry+j]
		}
	}
}

// subInto writes x − y into dst (all side n). Operands are not mutated.
func subInto[T Element](dst, x, y block[T]) {
	var i, j, rx, ry, rd int
	for i = 0; i < dst.n; i++ {
		rx, ry, rd = i*x.stride, i*y.stride, i*dst.stride
		for j = 0; j < dst.n; j++ {
			dst.data[rd+j] = x.data[rx+j] - y.data[ry+j]
		}
	}
}
