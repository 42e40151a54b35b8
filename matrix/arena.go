// SPDX-License-Identifier: MIT

// Package matrix - per-recursion-level scratch arena for the Strassen engine.
//
// Purpose:
//   - Give every recursion frame its own slab of k×k buffers (k = half the
//     frame's side) for operand sums and the seven products.
//   - Release the whole slab in one step when the frame returns, so no
//     temporary outlives the frame that allocated it.
//
// Memory profile:
//   - Depth d owns slotsPerFrame·(n/2^(d+1))² elements. Sibling calls at the
//     same depth run sequentially and reuse the same slab, so peak scratch is
//     O(n²) overall and O(k²) per level, with no per-call garbage.

package matrix

// slotsPerFrame is the number of k×k buffers one frame needs:
// two operand temporaries (left sum, right sum) and the products P1..P7.
const slotsPerFrame = 9

const panicArenaExhausted = "matrix: arena frame exhausted"

// block is a square window of side n over a row-major slice.
// Row i occupies data[i*stride : i*stride+n]. Quadrants are views that share
// the parent's storage; they own nothing.
type block[T Element] struct {
	n      int // side length
	stride int // distance between the starts of consecutive rows
	data   []T // backing storage, shared with the parent block
}

// quad returns the (r, c) quadrant view, r,c ∈ {0,1}.
// (0,0) is top-left, (0,1) top-right, (1,0) bottom-left, (1,1) bottom-right.
func (b block[T]) quad(r, c int) block[T] {
	k := b.n / 2
	off := r*k*b.stride + c*k

	return block[T]{n: k, stride: b.stride, data: b.data[off:]}
}

// frame is the scratch slab for one recursion depth.
type frame[T Element] struct {
	side int // side of every buffer handed out
	slab []T // slotsPerFrame*side*side elements
	next int // next free slot
}

// alloc hands out the next zero-filled side×side buffer of the slab.
// Running past slotsPerFrame is a programmer error in the engine.
func (f *frame[T]) alloc() block[T] {
	if f.next >= slotsPerFrame {
		panic(panicArenaExhausted)
	}
	sz := f.side * f.side
	buf := f.slab[f.next*sz : (f.next+1)*sz]
	clear(buf)
	f.next++

	return block[T]{n: f.side, stride: f.side, data: buf}
}

// release returns every slot of the frame at once.
func (f *frame[T]) release() { f.next = 0 }

// arena owns one frame per recursion depth, created lazily on first use.
type arena[T Element] struct {
	frames []*frame[T]
}

// frame returns the slab for depth, sized for buffers of the given side.
// The side at a given depth never changes within one multiplication.
func (a *arena[T]) frame(depth, side int) *frame[T] {
	for len(a.frames) <= depth {
		a.frames = append(a.frames, nil)
	}
	f := a.frames[depth]
	if f == nil || f.side != side {
		f = &frame[T]{side: side, slab: make([]T, slotsPerFrame*side*side)}
		a.frames[depth] = f
	}

	return f
}
