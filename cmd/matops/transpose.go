// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matops/csvio"
	"github.com/katalvlaran/matops/matrix"
)

func (a *app) transposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose IN [OUT]",
		Short: "Transpose the matrix in IN, writing OUT or replacing IN",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.byType(
				func() error { return transpose[int](args) },
				func() error { return transpose[float32](args) },
				func() error { return transpose[float64](args) },
			)
			if err != nil {
				return err
			}
			a.log.WithField("path", args[len(args)-1]).Info("transpose written")

			return nil
		},
	}
}

func transpose[T matrix.Element](args []string) error {
	if len(args) == 1 {
		return csvio.TransposeInPlace[T](args[0])
	}

	return csvio.TransposeFile[T](args[0], args[1])
}
