// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matops/config"
	"github.com/katalvlaran/matops/matrix"
)

func TestStoreLoadLeafSize_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
	require.NoError(t, config.StoreLeafSize(path, 128))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "128\n", string(raw))

	n, err := config.LoadLeafSize(path)
	require.NoError(t, err)
	require.Equal(t, 128, n)

	// overwrite, not append
	require.NoError(t, config.StoreLeafSize(path, 16))
	n, err = config.LoadLeafSize(path)
	require.NoError(t, err)
	require.Equal(t, 16, n)
}

func TestLoadLeafSize_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := config.LoadLeafSize(filepath.Join(dir, "absent.txt"))
	require.ErrorIs(t, err, config.ErrNotCalibrated)

	for name, body := range map[string]string{
		"text.txt":  "fast\n",
		"zero.txt":  "0\n",
		"neg.txt":   "-4",
		"two.txt":   "8\n16\n",
		"empty.txt": "",
	} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		_, err = config.LoadLeafSize(p)
		require.ErrorIs(t, err, config.ErrBadConfig, name)
	}

	p := filepath.Join(dir, "spaces.txt")
	require.NoError(t, os.WriteFile(p, []byte("  32 \n\n"), 0o644))
	n, err := config.LoadLeafSize(p)
	require.NoError(t, err)
	require.Equal(t, 32, n)
}

func TestStoreLeafSize_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.txt")
	require.ErrorIs(t, config.StoreLeafSize(path, 0), config.ErrBadConfig)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestExplicit(t *testing.T) {
	n, err := config.Explicit(8).LeafSize()
	require.NoError(t, err)
	require.Equal(t, 8, n)
	_, err = config.Explicit(0).LeafSize()
	require.ErrorIs(t, err, config.ErrBadConfig)
}

func TestPersisted_ReadsOnceAndCaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.txt")
	require.NoError(t, config.StoreLeafSize(path, 2))

	src := config.Persisted(path)
	require.Equal(t, path, src.Path())
	n, err := src.LeafSize()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.NoError(t, config.StoreLeafSize(path, 64))
	n, err = src.LeafSize()
	require.NoError(t, err)
	require.Equal(t, 2, n, "value is cached after the first read")

	require.Equal(t, config.DefaultConfigFile, config.Persisted("").Path())
}

func TestPersisted_DrivesMultiply(t *testing.T) {
	dir := t.TempDir()
	a, err := matrix.NewDenseFromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = matrix.Multiply(a, a, matrix.WithLeafSizer(config.Persisted(filepath.Join(dir, "none.txt"))))
	require.ErrorIs(t, err, config.ErrNotCalibrated)

	path := filepath.Join(dir, "c.txt")
	require.NoError(t, config.StoreLeafSize(path, 1))
	c, err := matrix.Multiply(a, a, matrix.WithLeafSizer(config.Persisted(path)))
	require.NoError(t, err)
	require.Equal(t, "[7, 10]\n[15, 22]\n", c.String())
}
