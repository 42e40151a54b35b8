// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matops/config"
	"github.com/katalvlaran/matops/csvio"
	"github.com/katalvlaran/matops/matrix"
)

func (a *app) multiplyCmd() *cobra.Command {
	var (
		echo bool
		leaf int
	)
	cmd := &cobra.Command{
		Use:   "multiply A B OUT",
		Short: "Multiply the matrices in files A and B and write the product to OUT",
		Long: `Multiply loads A and B, multiplies them with Strassen's algorithm and
writes the product to OUT in the same CSV format.

The leaf size comes from --leaf-size when given, otherwise from the file
written by "matops configure"; multiplication fails if neither exists.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src matrix.LeafSizer = config.Persisted(a.settings.ConfigFile)
			if cmd.Flags().Changed("leaf-size") {
				src = config.Explicit(leaf)
			}
			opts := []matrix.Option{matrix.WithLeafSizer(src)}
			if echo {
				opts = append(opts, matrix.WithPrinter(cmd.OutOrStdout()))
			}

			return a.byType(
				func() error { return multiplyFiles[int](a.log, args, opts) },
				func() error { return multiplyFiles[float32](a.log, args, opts) },
				func() error { return multiplyFiles[float64](a.log, args, opts) },
			)
		},
	}
	cmd.Flags().BoolVar(&echo, "print", false, "echo A, B and the product to stdout")
	cmd.Flags().IntVar(&leaf, "leaf-size", 0, "leaf size to use instead of the calibrated one")

	return cmd
}

func multiplyFiles[T matrix.Element](log logrus.FieldLogger, args []string, opts []matrix.Option) error {
	start := time.Now()
	c, err := csvio.MultiplyFiles[T](args[0], args[1], args[2], opts...)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rows":    c.Rows(),
		"cols":    c.Cols(),
		"out":     args[2],
		"elapsed": time.Since(start),
	}).Info("product written")

	return nil
}
