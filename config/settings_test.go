// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matops/config"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	return fs
}

// unsetEnv removes key for the test and restores the previous state after.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func TestLoadSettings_Defaults(t *testing.T) {
	for _, k := range []string{"MATOPS_CONFIG_FILE", "MATOPS_LOG_LEVEL", "MATOPS_TYPE", "MATOPS_DATA_DIR"} {
		unsetEnv(t, k)
	}
	s, err := config.LoadSettings(newFlags(t), t.TempDir())
	require.NoError(t, err)
	require.Equal(t, config.Settings{
		ConfigFile: config.DefaultConfigFile,
		LogLevel:   config.DefaultLogLevel,
		Type:       config.DefaultType,
		DataDir:    config.DefaultDataDir,
	}, s)

	a, b, out := s.BenchmarkPaths()
	require.Equal(t, filepath.Join("Configure_Data", "large_A.csv"), a)
	require.Equal(t, filepath.Join("Configure_Data", "large_B.csv"), b)
	require.Equal(t, filepath.Join("Configure_Data", "Ans.csv"), out)
}

func TestLoadSettings_Precedence(t *testing.T) {
	t.Setenv("MATOPS_TYPE", "int")
	t.Setenv("MATOPS_LOG_LEVEL", "debug")

	s, err := config.LoadSettings(newFlags(t), t.TempDir())
	require.NoError(t, err)
	require.Equal(t, config.TypeInt, s.Type, "environment beats flag default")
	require.Equal(t, "debug", s.LogLevel)

	s, err = config.LoadSettings(newFlags(t, "--type", "float32"), t.TempDir())
	require.NoError(t, err)
	require.Equal(t, config.TypeFloat32, s.Type, "explicit flag beats environment")
}

func TestLoadSettings_DotEnvFromParent(t *testing.T) {
	unsetEnv(t, "MATOPS_DATA_DIR")
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("MATOPS_DATA_DIR=bench\n"), 0o644))
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))

	path, err := config.LoadDotEnv(child)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, ".env"), path)

	s, err := config.LoadSettings(newFlags(t), child)
	require.NoError(t, err)
	require.Equal(t, "bench", s.DataDir)
}

func TestLoadSettings_Invalid(t *testing.T) {
	_, err := config.LoadSettings(newFlags(t, "--type", "complex128"), t.TempDir())
	require.ErrorIs(t, err, config.ErrBadConfig)

	_, err = config.LoadSettings(newFlags(t, "--log-level", "loud"), t.TempDir())
	require.ErrorIs(t, err, config.ErrBadConfig)
}
