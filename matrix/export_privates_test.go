// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private engine pieces and the options snapshot.
//
// Purpose:
//   - Expose unexported helpers to matrix_test ONLY; the file is compiled with
//     the package's tests and is invisible to production builds.
//
// Provided Surface:
//   - Panic message constants, so tests do not repeat magic strings.
//   - OptionsSnapshot / GatherOptionsSnapshot_TestOnly: read-only view of Options.
//   - EngineDepth_TestOnly: runs the engine and reports its arena frame count

import "io"

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicLeafSizeInvalid_TestOnly  = panicLeafSizeInvalid
	PanicLeafSizerNil_TestOnly     = panicLeafSizerNil
	PanicPadToInvalid_TestOnly     = panicPadToInvalid
	PanicPrinterWriterNil_TestOnly = panicPrinterWriterNil
)

// OptionsSnapshot is a stable copy of the resolved Options.
type OptionsSnapshot struct {
	LeafSize int
	LeafErr  error
	PadTo    int
	Printer  io.Writer
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as Multiply does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	leaf, err := o.leafSize()

	return OptionsSnapshot{LeafSize: leaf, LeafErr: err, PadTo: o.padTo, Printer: o.printer}
}

// EngineDepth_TestOnly multiplies two power-of-two squares with the given
// leaf and returns the product plus the number of arena frames used.
// Every frame must be fully released (no slot in use) when the call returns.
func EngineDepth_TestOnly[T Element](a, b *Dense[T], leaf int) (*Dense[T], int, bool) {
	c := &Dense[T]{r: a.r, c: a.r, data: make([]T, a.r*a.r)}
	e := engine[T]{leaf: leaf}
	e.mul(c.block(), a.block(), b.block(), 0)
	released := true
	for _, f := range e.arena.frames {
		if f != nil && f.next != 0 {
			released = false
		}
	}

	return c, len(e.arena.frames), released
}

// FrameAllocPastEnd_TestOnly allocates one slot beyond a frame's capacity.
// It panics with panicArenaExhausted.
func FrameAllocPastEnd_TestOnly() {
	var a arena[int]
	f := a.frame(0, 1)
	for i := 0; i <= slotsPerFrame; i++ {
		f.alloc()
	}
}

// PanicArenaExhausted_TestOnly is the arena overflow panic message.
const PanicArenaExhausted_TestOnly = panicArenaExhausted
