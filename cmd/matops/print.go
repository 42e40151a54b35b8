// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matops/csvio"
	"github.com/katalvlaran/matops/matrix"
)

// printMatrix echoes the matrix at path.
func printMatrix[T matrix.Element](w io.Writer, path string) error {
	m, err := csvio.Load[T](path)
	if err != nil {
		return err
	}

	return matrix.Fprint[T](w, m)
}

func (a *app) printCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print PATH",
		Short: "Print the matrix stored at PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			return a.byType(
				func() error { return printMatrix[int](w, args[0]) },
				func() error { return printMatrix[float32](w, args[0]) },
				func() error { return printMatrix[float64](w, args[0]) },
			)
		},
	}
}
