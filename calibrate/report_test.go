// SPDX-License-Identifier: MIT

package calibrate_test

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matops/calibrate"
)

func TestCurrentHost(t *testing.T) {
	h := calibrate.CurrentHost()
	require.Equal(t, runtime.GOOS, h.GOOS)
	require.Equal(t, runtime.GOARCH, h.GOARCH)
	require.Equal(t, runtime.NumCPU(), h.NumCPU)
	require.NotEmpty(t, h.GoVersion)
}

func TestReport_SaveLoad(t *testing.T) {
	c := &curve{times: map[int]time.Duration{8: ms(9), 16: ms(4), 32: ms(6)}}
	cal, err := calibrate.New(2, calibrate.WithBounds(8, 32))
	require.NoError(t, err)
	res, err := cal.Run(c.probe)
	require.NoError(t, err)

	rep := cal.NewReport(res)
	require.Equal(t, calibrate.ModeBounded, rep.Mode)
	require.Equal(t, 2, rep.Epochs)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteYAML(&buf))
	require.Contains(t, buf.String(), "mode: bounded")
	require.Contains(t, buf.String(), "leaf_size: 16")
	require.Contains(t, buf.String(), "mean: 4ms")
	require.Contains(t, buf.String(), "state: done")

	path := filepath.Join(t.TempDir(), "calibration.yaml")
	require.NoError(t, calibrate.SaveReport(path, rep))
	got, err := calibrate.LoadReport(path)
	require.NoError(t, err)
	require.Equal(t, rep.LeafSize, got.LeafSize)
	require.Equal(t, rep.Mean, got.Mean)
	require.Equal(t, calibrate.Done, got.State)
	require.Equal(t, rep.Trials, got.Trials)
	require.True(t, rep.CreatedAt.Equal(got.CreatedAt))
}
