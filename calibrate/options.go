// SPDX-License-Identifier: MIT

// Package calibrate: functional options for New.
// Bounds come from operators and are validated by New (errors, not panics);
// the remaining options are programmer-supplied and panic on nonsense.
package calibrate

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults ----------

const (
	// DefaultLowerBound is the first candidate leaf size.
	DefaultLowerBound = 8

	// DefaultPatience stops the monotonic search at the first candidate that
	// does not improve on the best mean.
	DefaultPatience = 1

	// MaxLeafSize caps doubling in the monotonic search.
	MaxLeafSize = 1 << 16
)

const (
	panicPatienceInvalid = "calibrate: WithPatience: patience must be >= 1"
	panicLoggerNil       = "calibrate: WithLogger: logger must be non-nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	lower, upper int
	bounded      bool // false selects the monotonic search
	patience     int
	log          logrus.FieldLogger
}

// WithBounds selects the bounded search over [lower, upper], doubling from lower.
// Values are checked by New.
func WithBounds(lower, upper int) Option {
	return func(o *Options) { o.lower, o.upper, o.bounded = lower, upper, true }
}

// WithPatience lets the monotonic search tolerate p−1 consecutive
// non-improving candidates before stopping. Timing noise on a busy host can
// otherwise end the search one step early.
func WithPatience(p int) Option {
	if p < 1 {
		panic(panicPatienceInvalid)
	}

	return func(o *Options) { o.patience = p }
}

// WithLogger routes per-candidate progress to l.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.log = l }
}

// discardLogger is the default: calibration is silent unless asked.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func gatherOptions(user ...Option) Options {
	o := Options{lower: DefaultLowerBound, patience: DefaultPatience}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.log == nil {
		o.log = discardLogger()
	}

	return o
}
