// SPDX-License-Identifier: MIT

// Package config - persisted leaf size and leaf-size sources.
//
// File format:
//   - A single base-10 integer followed by a newline. Surrounding whitespace
//     is ignored on read.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/matops/matrix"
)

// DefaultConfigFile is the file the calibrator writes and Persisted reads
// when no other path is configured.
const DefaultConfigFile = "configure.txt"

// Compile-time checks that both sources plug into matrix.WithLeafSizer.
var (
	_ matrix.LeafSizer = Explicit(1)
	_ matrix.LeafSizer = (*PersistedLeaf)(nil)
)

// StoreLeafSize writes n to path as a single line, replacing any previous value.
//
// Errors:
//   - ErrBadConfig for n < 1 (nothing is written).
//   - *fs.PathError from the filesystem.
func StoreLeafSize(path string, n int) error {
	if n < 1 {
		return fmt.Errorf("StoreLeafSize %s: leaf size %d: %w", path, n, ErrBadConfig)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(n)+"\n"), 0o644); err != nil {
		return fmt.Errorf("StoreLeafSize: %w", err)
	}

	return nil
}

// LoadLeafSize reads the leaf size stored at path.
//
// Errors:
//   - ErrNotCalibrated when path does not exist.
//   - ErrBadConfig when the content is not a single integer ≥ 1.
func LoadLeafSize(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("LoadLeafSize %s: %w", path, ErrNotCalibrated)
		}
		return 0, fmt.Errorf("LoadLeafSize: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("LoadLeafSize %s: %q: %w", path, strings.TrimSpace(string(raw)), ErrBadConfig)
	}
	if n < 1 {
		return 0, fmt.Errorf("LoadLeafSize %s: leaf size %d: %w", path, n, ErrBadConfig)
	}

	return n, nil
}

// Explicit is a LeafSizer for an operator-chosen value.
type Explicit int

// LeafSize returns the value, or ErrBadConfig when it is below 1.
func (e Explicit) LeafSize() (int, error) {
	if e < 1 {
		return 0, fmt.Errorf("Explicit: leaf size %d: %w", int(e), ErrBadConfig)
	}

	return int(e), nil
}

// PersistedLeaf is a LeafSizer backed by a calibration file.
// The file is read on the first LeafSize call; the value (or the error) is
// cached for every later call.
type PersistedLeaf struct {
	path string
	once sync.Once
	n    int
	err  error
}

// Persisted returns a LeafSizer reading path lazily.
// An empty path means DefaultConfigFile.
func Persisted(path string) *PersistedLeaf {
	if path == "" {
		path = DefaultConfigFile
	}

	return &PersistedLeaf{path: path}
}

// Path reports the file this source reads.
func (p *PersistedLeaf) Path() string { return p.path }

// LeafSize loads and caches the persisted value.
func (p *PersistedLeaf) LeafSize() (int, error) {
	p.once.Do(func() { p.n, p.err = LoadLeafSize(p.path) })

	return p.n, p.err
}
