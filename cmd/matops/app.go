// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matops/config"
)

// app carries what every subcommand needs once the root flags are parsed.
type app struct {
	settings config.Settings
	log      *logrus.Logger
}

func newApp() *app { return &app{} }

// rootCmd builds the command tree. Errors are returned to main, which logs
// them and exits with status 1.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "matops",
		Short: "Strassen matrix multiplication for CSV matrix files",
		Long: `matops multiplies dense matrices stored as CSV files with Strassen's
algorithm. The recursion cutover (leaf size) is calibrated once per machine
with "matops configure" and persisted for later multiplications.

Settings may also come from MATOPS_* environment variables or a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.multiplyCmd(),
		a.transposeCmd(),
		a.configureCmd(),
		a.printCmd(),
	)

	return root
}

// init resolves settings and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	s, err := config.LoadSettings(cmd.Root().PersistentFlags(), wd)
	if err != nil {
		return err
	}
	log, err := newLogger(s.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.settings, a.log = s, log
	a.log.WithFields(logrus.Fields{
		"type":        s.Type,
		"config_file": s.ConfigFile,
	}).Debug("settings resolved")

	return nil
}

// logger returns the configured logger, or a default one when settings
// never resolved (bad flags, bad environment).
func (a *app) logger() *logrus.Logger {
	if a.log != nil {
		return a.log
	}
	log, _ := newLogger(config.DefaultLogLevel, os.Stderr)

	return log
}

// byType runs the variant matching the configured element type.
func (a *app) byType(asInt, asFloat32, asFloat64 func() error) error {
	switch a.settings.Type {
	case config.TypeInt:
		return asInt()
	case config.TypeFloat32:
		return asFloat32()
	case config.TypeFloat64:
		return asFloat64()
	default:
		return fmt.Errorf("element type %q: %w", a.settings.Type, config.ErrBadConfig)
	}
}
