// SPDX-License-Identifier: MIT

package calibrate

import (
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/matops/csvio"
	"github.com/katalvlaran/matops/matrix"
)

// BenchmarkProbe times matrix.Multiply(a, b, WithLeafSize(leaf)) with the
// wall clock. Operands are shared across runs and never mutated.
func BenchmarkProbe[T matrix.Element](a, b *matrix.Dense[T]) Probe {
	return func(leaf int) (time.Duration, error) {
		start := time.Now()
		_, err := matrix.MulWithLeafSize(a, b, leaf)

		return time.Since(start), err
	}
}

// FileProbe loads the benchmark pair at pathA and pathB once and returns a
// probe that times their product. When out is non-empty every product is
// also stored there, outside the timed region.
//
// Errors:
//   - csvio.ErrNotFound naming the missing benchmark file.
//   - csvio load errors and matrix.ErrDimensionMismatch for an incompatible pair.
func FileProbe[T matrix.Element](pathA, pathB, out string) (Probe, error) {
	for _, p := range []string{pathA, pathB} {
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("FileProbe: benchmark file %s: %w", p, csvio.ErrNotFound)
			}
			return nil, fmt.Errorf("FileProbe: %w", err)
		}
	}
	a, err := csvio.Load[T](pathA)
	if err != nil {
		return nil, fmt.Errorf("FileProbe: %w", err)
	}
	b, err := csvio.Load[T](pathB)
	if err != nil {
		return nil, fmt.Errorf("FileProbe: %w", err)
	}
	if err = matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("FileProbe: %w", err)
	}

	return func(leaf int) (time.Duration, error) {
		start := time.Now()
		c, err := matrix.MulWithLeafSize(a, b, leaf)
		elapsed := time.Since(start)
		if err != nil {
			return elapsed, err
		}
		if out != "" {
			if err = csvio.Store[T](out, c); err != nil {
				return elapsed, err
			}
		}

		return elapsed, nil
	}, nil
}
