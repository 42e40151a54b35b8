// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
)

// Section headers written by the Multiply printer.
const (
	headerA      = "A: \n"
	headerB      = "\nB: \n"
	headerAnswer = "\nANSWER: \n"
)

// Fprint writes m to w one row per line, each value followed by a single space.
// This is the console layout used by the CLI "print" command and WithPrinter.
//
// Complexity: O(r*c).
func Fprint[T Element](w io.Writer, m Matrix[T]) error {
	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if _, err = fmt.Fprintf(bw, "%v ", v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// echo renders the operands and the extracted product under their headers.
func echo[T Element](w io.Writer, a, b, c *Dense[T]) error {
	sections := []struct {
		header string
		m      *Dense[T]
	}{
		{headerA, a},
		{headerB, b},
		{headerAnswer, c},
	}
	for _, s := range sections {
		if _, err := io.WriteString(w, s.header); err != nil {
			return err
		}
		if err := Fprint[T](w, s.m); err != nil {
			return err
		}
	}

	return nil
}
