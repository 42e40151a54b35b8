// SPDX-License-Identifier: MIT
// Package calibrate: sentinel error set.

package calibrate

import "errors"

var (
	// ErrInvalidEpochs indicates an epoch count below 1.
	ErrInvalidEpochs = errors.New("calibrate: epochs must be >= 1")

	// ErrInvalidBounds indicates a lower bound below 1, an upper bound below
	// the lower one, or a bound above MaxLeafSize.
	ErrInvalidBounds = errors.New("calibrate: invalid leaf size bounds")

	// ErrNilProbe indicates Run was called without a probe.
	ErrNilProbe = errors.New("calibrate: nil probe")
)
