// Package config persists the calibrated leaf size and resolves operator
// settings for the matops CLI.
//
// The leaf size lives in a one-line text file (DefaultConfigFile) written by
// the calibrator. Multiply callers pick their source at runtime: Explicit for
// a fixed value, Persisted for the calibrated file. Both satisfy
// matrix.LeafSizer.
//
// Settings combine command-line flags, MATOPS_* environment variables and an
// optional .env file found in the working directory or one of its parents.
package config
