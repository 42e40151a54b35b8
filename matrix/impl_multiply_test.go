// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/matops/matrix"
)

// MultiplySuite exercises the orchestrator: padding, extraction and options.
type MultiplySuite struct {
	suite.Suite
}

// TestKnownProduct verifies the textbook 2×2 product for leaf 1 and 2.
func (s *MultiplySuite) TestKnownProduct() {
	a := mustRows(s.T(), [][]int{{1, 2}, {3, 4}})
	b := mustRows(s.T(), [][]int{{5, 6}, {7, 8}})
	want := mustRows(s.T(), [][]int{{19, 22}, {43, 50}})
	for _, leaf := range []int{1, 2} {
		c, err := matrix.Multiply(a, b, matrix.WithLeafSize(leaf))
		require.NoError(s.T(), err)
		require.True(s.T(), c.Equal(want), "leaf=%d", leaf)
	}
}

// TestIdentityLeft verifies I₃·B == B exactly (3 pads to 4).
func (s *MultiplySuite) TestIdentityLeft() {
	If, err := matrix.NewIdentity[float64](3)
	require.NoError(s.T(), err)
	bf := randFloat(s.T(), 3, 5, 99)
	c, err := matrix.Multiply(If, bf)
	require.NoError(s.T(), err)
	require.True(s.T(), c.Equal(bf))

	Ii, err := matrix.NewIdentity[int](3)
	require.NoError(s.T(), err)
	bi := randInt(s.T(), 3, 5, 98)
	for _, leaf := range []int{1, 2, 4} {
		ci, err := matrix.Multiply(Ii, bi, matrix.WithLeafSize(leaf))
		require.NoError(s.T(), err)
		require.True(s.T(), ci.Equal(bi), "leaf=%d", leaf)
	}
}

// TestShapeMismatchFailsFast verifies 2×3·4×2 is rejected before the leaf source is consulted.
func (s *MultiplySuite) TestShapeMismatchFailsFast() {
	called := false
	src := leafFunc(func() (int, error) { called = true; return 1, nil })
	_, err := matrix.Multiply(mustDense[int](s.T(), 2, 3), mustDense[int](s.T(), 4, 2), matrix.WithLeafSizer(src))
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
	require.Contains(s.T(), err.Error(), "A is 2x3, B is 4x2")
	require.False(s.T(), called)

	_, err = matrix.Multiply(nil, mustDense[int](s.T(), 2, 2))
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
}

// TestRectangularMatchesGonum covers non-square operands that need padding.
func (s *MultiplySuite) TestRectangularMatchesGonum() {
	shapes := []struct{ m, k, n int }{{1, 1, 1}, {3, 5, 2}, {7, 1, 9}, {17, 33, 5}, {64, 64, 64}, {65, 3, 10}}
	for i, sh := range shapes {
		a := randFloat(s.T(), sh.m, sh.k, int64(i))
		b := randFloat(s.T(), sh.k, sh.n, int64(100+i))
		for _, leaf := range []int{1, 8, matrix.DefaultLeafSize} {
			c, err := matrix.Multiply(a, b, matrix.WithLeafSize(leaf))
			require.NoError(s.T(), err, "%v leaf=%d", sh, leaf)
			requireMatchesGonum(s.T(), a, b, c)
		}
	}
}

// TestLeafSizesAgree checks leaf 1, an intermediate leaf and leaf ≥ dim give the same ints.
func (s *MultiplySuite) TestLeafSizesAgree() {
	a := randInt(s.T(), 20, 13, 1)
	b := randInt(s.T(), 13, 27, 2)
	want, err := matrix.MulNaive(a, b)
	require.NoError(s.T(), err)
	for _, leaf := range []int{1, 4, 32, 1000} {
		got, err := matrix.Multiply(a, b, matrix.WithLeafSize(leaf))
		require.NoError(s.T(), err)
		require.True(s.T(), got.Equal(want), "leaf=%d", leaf)
	}
}

// TestPaddingIndependence checks the result does not depend on the padded side.
func (s *MultiplySuite) TestPaddingIndependence() {
	a := randInt(s.T(), 5, 6, 3)
	b := randInt(s.T(), 6, 7, 4)
	base, err := matrix.Multiply(a, b, matrix.WithLeafSize(2))
	require.NoError(s.T(), err)
	for _, pad := range []int{8, 16, 64} {
		got, err := matrix.Multiply(a, b, matrix.WithLeafSize(2), matrix.WithPadTo(pad))
		require.NoError(s.T(), err)
		require.True(s.T(), got.Equal(base), "pad=%d", pad)
	}

	_, err = matrix.Multiply(a, b, matrix.WithPadTo(4))
	require.ErrorIs(s.T(), err, matrix.ErrBadPad)
}

// TestLeafSizerError verifies source errors abort the call.
func (s *MultiplySuite) TestLeafSizerError() {
	boom := errors.New("not calibrated")
	_, err := matrix.Multiply(mustDense[int](s.T(), 2, 2), mustDense[int](s.T(), 2, 2),
		matrix.WithLeafSizer(leafFunc(func() (int, error) { return 0, boom })))
	require.ErrorIs(s.T(), err, boom)
}

// TestPrinter checks the console layout of WithPrinter.
func (s *MultiplySuite) TestPrinter() {
	var buf bytes.Buffer
	a := mustRows(s.T(), [][]int{{1, 2}, {3, 4}})
	b := mustRows(s.T(), [][]int{{5, 6}, {7, 8}})
	_, err := matrix.Multiply(a, b, matrix.WithPrinter(&buf))
	require.NoError(s.T(), err)
	want := "A: \n1 2 \n3 4 \n\nB: \n5 6 \n7 8 \n\nANSWER: \n19 22 \n43 50 \n"
	require.Equal(s.T(), want, buf.String())
}

// TestSmallIntTypes runs the engine for every element type on a tiny case.
func (s *MultiplySuite) TestSmallIntTypes() {
	require.Equal(s.T(), "[19, 22]\n[43, 50]\n", productString[int8](s.T()))
	require.Equal(s.T(), "[19, 22]\n[43, 50]\n", productString[int16](s.T()))
	require.Equal(s.T(), "[19, 22]\n[43, 50]\n", productString[int32](s.T()))
	require.Equal(s.T(), "[19, 22]\n[43, 50]\n", productString[int64](s.T()))
	require.Equal(s.T(), "[19, 22]\n[43, 50]\n", productString[float32](s.T()))
}

func productString[T matrix.Element](t *testing.T) string {
	a := mustRows(t, [][]T{{1, 2}, {3, 4}})
	b := mustRows(t, [][]T{{5, 6}, {7, 8}})
	c, err := matrix.Multiply(a, b, matrix.WithLeafSize(1))
	require.NoError(t, err)

	return c.String()
}

func TestMultiplySuite(t *testing.T) {
	suite.Run(t, new(MultiplySuite))
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{-3: 1, 0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 64: 64, 65: 128}
	for in, want := range cases {
		require.Equal(t, want, matrix.NextPowerOfTwo(in), fmt.Sprint(in))
	}
	require.True(t, matrix.IsPowerOfTwo(1))
	require.True(t, matrix.IsPowerOfTwo(1024))
	require.False(t, matrix.IsPowerOfTwo(0))
	require.False(t, matrix.IsPowerOfTwo(12))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint[float64](&buf, mustRows(t, [][]float64{{1.5, -2}})))
	require.Equal(t, "1.5 -2 \n", buf.String())
}
