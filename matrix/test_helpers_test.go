// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense buffer and the engine.
//   • Bridge to gonum so float products can be checked against an independent oracle.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matops/matrix"
)

// Tolerances for float64 comparisons against the cubic reference or gonum.
const (
	rtol = 1e-9
	atol = 1e-9
)

// mustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
// Complexity: Time O(r*c), Space O(r*c).
func mustDense[T matrix.Element](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustRows builds a Dense from a row literal or fails the test.
func mustRows[T matrix.Element](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// randFloat returns an r×c matrix with values uniform in [-1,1) from seed.
// Deterministic for a fixed seed.
func randFloat(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustDense[float64](tb, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// randInt returns an r×c matrix with values in [-9, 9] from seed.
func randInt(tb testing.TB, r, c int, seed int64) *matrix.Dense[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustDense[int](tb, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, rng.Intn(19)-9))
		}
	}

	return m
}

// toGonum copies m into a gonum dense matrix.
func toGonum(tb testing.TB, m *matrix.Dense[float64]) *mat.Dense {
	tb.Helper()
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		row, err := m.Row(i)
		require.NoError(tb, err)
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}

// requireMatchesGonum asserts got ≈ a·b as computed by gonum.
func requireMatchesGonum(tb testing.TB, a, b, got *matrix.Dense[float64]) {
	tb.Helper()
	var want mat.Dense
	want.Mul(toGonum(tb, a), toGonum(tb, b))
	wr, wc := want.Dims()
	gr, gc := got.Shape()
	require.Equal(tb, wr, gr, "rows")
	require.Equal(tb, wc, gc, "cols")
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			v, err := got.At(i, j)
			require.NoError(tb, err)
			require.InDelta(tb, want.At(i, j), v, atol+rtol*abs(want.At(i, j)), "cell (%d,%d)", i, j)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
