// SPDX-License-Identifier: MIT

// Package csvio - matrix codec.
//
// Purpose:
//   - Decode comma-separated rows into a matrix.Dense[T] for any element type.
//   - Encode a matrix back in a form that decodes to identical values.
//
// Cell policy:
//   - Cells are whitespace-trimmed; blank lines are skipped.
//   - Strict by default (ErrMalformedCell with row/column); WithLenientCells
//     maps malformed cells to the zero value.

package csvio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/matops/matrix"
)

// Operation tags for error wrapping.
const (
	opLoad  = "Load"
	opRead  = "Read"
	opStore = "Store"
	opWrite = "Write"
)

// codec parses and formats one element type. Kind and bit size are resolved
// once per call so the per-cell path is a plain switch.
type codec[T matrix.Element] struct {
	float bool
	bits  int
}

func newCodec[T matrix.Element]() codec[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	k := t.Kind()

	return codec[T]{float: k == reflect.Float32 || k == reflect.Float64, bits: t.Bits()}
}

func (c codec[T]) parse(s string) (T, error) {
	if c.float {
		f, err := strconv.ParseFloat(s, c.bits)
		return T(f), err
	}
	i, err := strconv.ParseInt(s, 10, c.bits)

	return T(i), err
}

func (c codec[T]) format(v T) string {
	if c.float {
		return strconv.FormatFloat(float64(v), 'g', -1, c.bits)
	}

	return strconv.FormatInt(int64(v), 10)
}

// Load reads the matrix stored at path.
//
// Errors:
//   - ErrNotFound (wrapped with the path) when the file does not exist;
//     any other open error is returned wrapped as is.
//   - Everything Read reports.
func Load[T matrix.Element](path string, opts ...Option) (*matrix.Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, csvErrorf(opLoad, path, fmt.Errorf("%w: %w", ErrNotFound, err))
		}
		return nil, csvErrorf(opLoad, path, err)
	}
	defer f.Close()

	m, err := Read[T](f, opts...)
	if err != nil {
		return nil, csvErrorf(opLoad, path, err)
	}

	return m, nil
}

// Read decodes a matrix from r.
// MAIN DESCRIPTION:
//   - Stage 1: read records with encoding/csv (variable field count allowed
//     so raggedness can be reported with a row number).
//   - Stage 2: parse every trimmed cell with the element codec.
//   - Stage 3: copy rows into a matrix.Dense.
//
// Errors:
//   - ErrEmpty, ErrRaggedRows, ErrMalformedCell (strict mode), csv syntax errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Read[T matrix.Element](r io.Reader, opts ...Option) (*matrix.Dense[T], error) {
	o := gatherOptions(opts...)
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	c := newCodec[T]()
	var rows [][]T
	width := -1
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opRead, err)
		}
		if width < 0 {
			width = len(rec)
		} else if len(rec) != width {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", opRead, line, len(rec), width, ErrRaggedRows)
		}
		row := make([]T, len(rec))
		for j, cell := range rec {
			v, perr := c.parse(strings.TrimSpace(cell))
			if perr != nil {
				if !o.lenient {
					return nil, fmt.Errorf("%s: row %d column %d (%q): %w", opRead, line, j, cell, ErrMalformedCell)
				}
				var zero T
				v = zero
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", opRead, ErrEmpty)
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRead, err)
	}

	return m, nil
}

// Store writes m to path, creating or truncating the file.
func Store[T matrix.Element](path string, m matrix.Matrix[T], opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return csvErrorf(opStore, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = csvErrorf(opStore, path, cerr)
		}
	}()

	if err = Write(f, m, opts...); err != nil {
		return csvErrorf(opStore, path, err)
	}

	return nil
}

// Write encodes m to w, one row per line with a trailing newline.
// Complexity: O(r*c).
func Write[T matrix.Element](w io.Writer, m matrix.Matrix[T], opts ...Option) error {
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)
	cw.Comma = o.comma

	c := newCodec[T]()
	rows, cols := m.Rows(), m.Cols()
	rec := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("%s: %w", opWrite, err)
			}
			rec[j] = c.format(v)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("%s: %w", opWrite, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", opWrite, err)
	}

	return bw.Flush()
}
