// SPDX-License-Identifier: MIT

package csvio

import (
	"os"
	"path/filepath"

	"github.com/katalvlaran/matops/matrix"
)

const (
	opTransposeFile    = "TransposeFile"
	opTransposeInPlace = "TransposeInPlace"
	opMultiplyFiles    = "MultiplyFiles"
)

// TransposeFile writes the transpose of the matrix at in to out.
// in and out may name the same file only through TransposeInPlace.
func TransposeFile[T matrix.Element](in, out string, opts ...Option) error {
	m, err := Load[T](in, opts...)
	if err != nil {
		return csvErrorf(opTransposeFile, in, err)
	}
	t, err := matrix.Transpose(m)
	if err != nil {
		return csvErrorf(opTransposeFile, in, err)
	}
	if err = Store[T](out, t, opts...); err != nil {
		return csvErrorf(opTransposeFile, out, err)
	}

	return nil
}

// TransposeInPlace replaces the matrix at path with its transpose.
// The new content goes to a temporary file in the same directory which is
// then renamed over path, so a failed write leaves the original intact.
func TransposeInPlace[T matrix.Element](path string, opts ...Option) error {
	m, err := Load[T](path, opts...)
	if err != nil {
		return csvErrorf(opTransposeInPlace, path, err)
	}
	t, err := matrix.Transpose(m)
	if err != nil {
		return csvErrorf(opTransposeInPlace, path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return csvErrorf(opTransposeInPlace, path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err = Write[T](tmp, t, opts...); err != nil {
		_ = tmp.Close()
		return csvErrorf(opTransposeInPlace, path, err)
	}
	if err = tmp.Close(); err != nil {
		return csvErrorf(opTransposeInPlace, path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return csvErrorf(opTransposeInPlace, path, err)
	}
	committed = true

	return nil
}

// MultiplyFiles loads A and B, multiplies them with matrix.Multiply and
// stores the product at out. The product is also returned.
//
// Errors:
//   - Load errors for either operand (ErrNotFound, ErrMalformedCell, ...).
//   - matrix.ErrDimensionMismatch before any arithmetic, naming both shapes.
//   - Store errors for out.
func MultiplyFiles[T matrix.Element](pathA, pathB, out string, opts ...matrix.Option) (*matrix.Dense[T], error) {
	a, err := Load[T](pathA)
	if err != nil {
		return nil, csvErrorf(opMultiplyFiles, pathA, err)
	}
	b, err := Load[T](pathB)
	if err != nil {
		return nil, csvErrorf(opMultiplyFiles, pathB, err)
	}
	c, err := matrix.Multiply(a, b, opts...)
	if err != nil {
		return nil, csvErrorf(opMultiplyFiles, pathA+" x "+pathB, err)
	}
	if err = Store[T](out, c); err != nil {
		return nil, csvErrorf(opMultiplyFiles, out, err)
	}

	return c, nil
}
