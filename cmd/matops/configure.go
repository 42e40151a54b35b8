// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matops/calibrate"
	"github.com/katalvlaran/matops/config"
)

// configureArgs accepts EPOCHS or EPOCHS LOWER UPPER.
func configureArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 && len(args) != 3 {
		return fmt.Errorf("expected EPOCHS or EPOCHS LOWER UPPER, got %d arguments: %w", len(args), calibrate.ErrInvalidEpochs)
	}

	return nil
}

func (a *app) configureCmd() *cobra.Command {
	var (
		interactive bool
		reportPath  string
	)
	cmd := &cobra.Command{
		Use:   "configure EPOCHS [LOWER UPPER]",
		Short: "Find the fastest leaf size on this machine and persist it",
		Long: `Configure times the multiplication of a benchmark pair at leaf sizes
8, 16, 32, ... running every candidate EPOCHS times and keeping the fastest
mean. Without bounds the search stops at the first candidate that is slower
than the best so far; with LOWER and UPPER every power-of-two multiple of
LOWER up to UPPER is measured.

The benchmark pair is <data-dir>/large_A.csv and <data-dir>/large_B.csv with
the product written to <data-dir>/Ans.csv, unless --interactive asks for the
three paths.`,
		Args: configureArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			epochs, opts, err := parseCalibrationArgs(args)
			if err != nil {
				return err
			}
			cal, err := calibrate.New(epochs, append(opts, calibrate.WithLogger(a.log))...)
			if err != nil {
				return err
			}

			pathA, pathB, out := a.settings.BenchmarkPaths()
			if interactive {
				if pathA, pathB, out, err = promptPaths(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			probe, err := a.fileProbe(pathA, pathB, out)
			if err != nil {
				return err
			}

			return a.runCalibration(cal, probe, reportPath)
		},
	}
	cmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for the benchmark and output paths")
	cmd.Flags().StringVar(&reportPath, "report", "", "also write a YAML calibration report to this file")

	return cmd
}

// parseCalibrationArgs validates EPOCHS [LOWER UPPER] as integers.
// Range checks are left to calibrate.New.
func parseCalibrationArgs(args []string) (int, []calibrate.Option, error) {
	epochs, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, fmt.Errorf("epochs %q: %w", args[0], calibrate.ErrInvalidEpochs)
	}
	if len(args) == 1 {
		return epochs, nil, nil
	}
	lower, errL := strconv.Atoi(args[1])
	upper, errU := strconv.Atoi(args[2])
	if errL != nil || errU != nil {
		return 0, nil, fmt.Errorf("bounds %q %q: %w", args[1], args[2], calibrate.ErrInvalidBounds)
	}

	return epochs, []calibrate.Option{calibrate.WithBounds(lower, upper)}, nil
}

// promptPaths reads the two benchmark paths and the output path, one per line.
func promptPaths(in io.Reader, out io.Writer) (a, b, ans string, err error) {
	sc := bufio.NewScanner(in)
	ask := func(label string) (string, error) {
		fmt.Fprintf(out, "Enter the path of %s: ", label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("no path given for %s: %w", label, io.ErrUnexpectedEOF)
		}

		return strings.TrimSpace(sc.Text()), nil
	}
	if a, err = ask("matrix A"); err != nil {
		return
	}
	if b, err = ask("matrix B"); err != nil {
		return
	}
	ans, err = ask("the output matrix")

	return
}

// fileProbe builds the benchmark probe for the configured element type.
func (a *app) fileProbe(pathA, pathB, out string) (calibrate.Probe, error) {
	switch a.settings.Type {
	case config.TypeInt:
		return calibrate.FileProbe[int](pathA, pathB, out)
	case config.TypeFloat32:
		return calibrate.FileProbe[float32](pathA, pathB, out)
	default:
		return calibrate.FileProbe[float64](pathA, pathB, out)
	}
}

// runCalibration runs the search, persists the winner and optionally the report.
func (a *app) runCalibration(cal *calibrate.Calibrator, probe calibrate.Probe, reportPath string) error {
	a.log.WithFields(logrus.Fields{
		"epochs":  cal.Epochs(),
		"bounded": cal.Bounded(),
	}).Info("configuring")

	res, err := cal.Run(probe)
	if err != nil {
		return err
	}
	if err = config.StoreLeafSize(a.settings.ConfigFile, res.LeafSize); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"leaf_size": res.LeafSize,
		"file":      a.settings.ConfigFile,
	}).Info("configuration file generated")

	if reportPath != "" {
		if err = calibrate.SaveReport(reportPath, cal.NewReport(res)); err != nil {
			return err
		}
		a.log.WithField("file", reportPath).Info("calibration report written")
	}

	return nil
}
