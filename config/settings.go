// SPDX-License-Identifier: MIT

// Package config - operator settings.
//
// Resolution order (highest first):
//   - a flag set explicitly on the command line,
//   - MATOPS_<KEY> from the environment (dashes become underscores),
//   - the same variable from a .env file (never overrides the real environment),
//   - the flag default.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable read by LoadSettings.
const EnvPrefix = "MATOPS"

// Setting keys; each is also the flag name.
const (
	KeyConfigFile = "config-file"
	KeyLogLevel   = "log-level"
	KeyType       = "type"
	KeyDataDir    = "data-dir"
)

// Element type names accepted by KeyType.
const (
	TypeInt     = "int"
	TypeFloat32 = "float32"
	TypeFloat64 = "float64"
)

// Defaults for every setting.
const (
	DefaultLogLevel = "info"
	DefaultType     = TypeFloat64
	DefaultDataDir  = "Configure_Data"
)

// dotEnvSearchDepth bounds the upward .env lookup.
const dotEnvSearchDepth = 5

var (
	validTypes     = []string{TypeInt, TypeFloat32, TypeFloat64}
	validLogLevels = []string{"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"}
)

// Settings is the resolved operator configuration.
type Settings struct {
	ConfigFile string // persisted leaf size file
	LogLevel   string // logrus level name
	Type       string // element type: int, float32 or float64
	DataDir    string // directory holding the calibration benchmark files
}

// RegisterFlags adds one flag per setting to fs with its default.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfigFile, DefaultConfigFile, "file holding the calibrated leaf size")
	fs.String(KeyLogLevel, DefaultLogLevel, "log level: "+strings.Join(validLogLevels, ", "))
	fs.String(KeyType, DefaultType, "element type: "+strings.Join(validTypes, ", "))
	fs.String(KeyDataDir, DefaultDataDir, "directory with the calibration benchmark matrices")
}

// LoadSettings resolves Settings from fs, the environment and the first .env
// found in dir or one of its parents. fs must carry the flags from RegisterFlags.
//
// Errors:
//   - ErrBadConfig for an unknown type or log level.
//   - .env parse errors and flag binding errors.
func LoadSettings(fs *pflag.FlagSet, dir string) (Settings, error) {
	if _, err := LoadDotEnv(dir); err != nil {
		return Settings{}, fmt.Errorf("LoadSettings: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Settings{}, fmt.Errorf("LoadSettings: %w", err)
	}

	s := Settings{
		ConfigFile: v.GetString(KeyConfigFile),
		LogLevel:   strings.ToLower(v.GetString(KeyLogLevel)),
		Type:       strings.ToLower(v.GetString(KeyType)),
		DataDir:    v.GetString(KeyDataDir),
	}
	if !slices.Contains(validTypes, s.Type) {
		return Settings{}, fmt.Errorf("LoadSettings: %s %q: %w", KeyType, s.Type, ErrBadConfig)
	}
	if !slices.Contains(validLogLevels, s.LogLevel) {
		return Settings{}, fmt.Errorf("LoadSettings: %s %q: %w", KeyLogLevel, s.LogLevel, ErrBadConfig)
	}

	return s, nil
}

// LoadDotEnv looks for a .env file in dir and up to a few parents and loads
// the first one found. Variables already present in the environment win.
// It returns the loaded path, or "" when no file exists.
func LoadDotEnv(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for i := 0; i < dotEnvSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return envPath, godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

// BenchmarkPaths returns the default calibration inputs and output inside
// the data directory: large_A.csv, large_B.csv and Ans.csv.
func (s Settings) BenchmarkPaths() (a, b, out string) {
	return filepath.Join(s.DataDir, "large_A.csv"),
		filepath.Join(s.DataDir, "large_B.csv"),
		filepath.Join(s.DataDir, "Ans.csv")
}
