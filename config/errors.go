// SPDX-License-Identifier: MIT
// Package config: sentinel error set.

package config

import "errors"

var (
	// ErrNotCalibrated indicates that no persisted leaf size exists yet.
	// Run the calibrator (matops configure) first.
	ErrNotCalibrated = errors.New("config: leaf size not calibrated")

	// ErrBadConfig indicates a persisted value or setting that cannot be used:
	// not an integer, below 1, or an unknown enumeration value.
	ErrBadConfig = errors.New("config: invalid configuration")
)
