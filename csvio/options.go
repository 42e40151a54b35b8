// SPDX-License-Identifier: MIT

// Package csvio: functional options for the readers and writers.
package csvio

// ---------- Defaults ----------

const (
	// DefaultLenientCells keeps parsing strict: a malformed cell is an error.
	DefaultLenientCells = false

	// DefaultComma is the cell separator.
	DefaultComma = ','
)

const panicCommaInvalid = "csvio: WithComma: separator must not be a quote, CR, LF or space"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	lenient bool
	comma   rune
}

// WithLenientCells turns malformed cells into the element's zero value
// instead of failing the read.
func WithLenientCells() Option {
	return func(o *Options) { o.lenient = true }
}

// WithComma changes the cell separator for both reading and writing.
// Panics on separators the CSV grammar cannot express.
func WithComma(r rune) Option {
	if r == '"' || r == '\r' || r == '\n' || r == ' ' || r == 0xFFFD {
		panic(panicCommaInvalid)
	}

	return func(o *Options) { o.comma = r }
}

// gatherOptions applies setters on top of defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{lenient: DefaultLenientCells, comma: DefaultComma}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
