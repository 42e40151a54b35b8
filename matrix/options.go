// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiply orchestrator.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state. The leaf size is threaded
//     through every Multiply call instead of living in a package variable.
//   - One runtime switch for the leaf-size source: an explicit value
//     (WithLeafSize) or any LeafSizer (WithLeafSizer), last writer wins.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "io"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLeafSize is the cutover used when the caller supplies neither
	// WithLeafSize nor WithLeafSizer. Calibrated values usually land between
	// 32 and 256 on current hardware.
	DefaultLeafSize = 64

	// DefaultPadTo means "smallest power of two that fits the operands".
	DefaultPadTo = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLeafSizeInvalid  = "matrix: WithLeafSize: leaf size must be >= 1"
	panicLeafSizerNil     = "matrix: WithLeafSizer: source must be non-nil"
	panicPadToInvalid     = "matrix: WithPadTo: side must be a positive power of two"
	panicPrinterWriterNil = "matrix: WithPrinter: writer must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	leaf    LeafSizer // DefaultLeafSize when unset
	padTo   int       // DefaultPadTo (0 = minimal power of two)
	printer io.Writer // nil = no echo of operands/result
}

// ---------- Constructors (WithX) ----------

// WithLeafSize fixes the recursion cutover for this call.
// Implementation:
//   - Stage 1: validate n ≥ 1 (panic otherwise).
//   - Stage 2: install a constant LeafSizer.
//
// Notes:
//   - Overrides any earlier WithLeafSizer (last writer wins).
//
// AI-Hints:
//   - Calibration passes every candidate through this option.
func WithLeafSize(n int) Option {
	if n < 1 {
		panic(panicLeafSizeInvalid)
	}

	return func(o *Options) { o.leaf = fixedLeaf(n) }
}

// WithLeafSizer delegates the cutover to src, queried once per Multiply call.
// Errors returned by src abort the call before any arithmetic.
//
// AI-Hints:
//   - config.Persisted reads a calibrated value from disk; config.Explicit wraps an operator flag.
func WithLeafSizer(src LeafSizer) Option {
	if src == nil {
		panic(panicLeafSizerNil)
	}

	return func(o *Options) { o.leaf = src }
}

// WithPadTo forces the padded working side to n instead of the minimal
// power of two. n must still cover the operands; Multiply reports ErrBadPad
// otherwise. Padding with extra zero rows and columns never changes the
// extracted result.
func WithPadTo(n int) Option {
	if n < 1 || !IsPowerOfTwo(n) {
		panic(panicPadToInvalid)
	}

	return func(o *Options) { o.padTo = n }
}

// WithPrinter echoes A, B and the product to w after extraction.
// Display only; write errors are returned from Multiply.
func WithPrinter(w io.Writer) Option {
	if w == nil {
		panic(panicPrinterWriterNil)
	}

	return func(o *Options) { o.printer = w }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Stable for a given sequence of setters; last writer wins.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		leaf:  fixedLeaf(DefaultLeafSize),
		padTo: DefaultPadTo,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order
		}
	}

	return o
}

// leafSize resolves and validates the configured cutover.
func (o Options) leafSize() (int, error) {
	n, err := o.leaf.LeafSize()
	if err != nil {
		return 0, err
	}
	if err = ValidateLeafSize(n); err != nil {
		return 0, err
	}

	return n, nil
}
