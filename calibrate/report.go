// SPDX-License-Identifier: MIT

// Package calibrate - calibration report.
//
// A Report is the YAML record of one calibration: the host it ran on, the
// search parameters, every trial and the chosen leaf size. It is written
// next to the persisted leaf size so a calibration can be audited later.

package calibrate

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"golang.org/x/sys/cpu"
	"gopkg.in/yaml.v3"
)

// Search mode names used in reports.
const (
	ModeMonotonic = "monotonic"
	ModeBounded   = "bounded"
)

// Host identifies the machine a calibration belongs to.
type Host struct {
	GOOS      string   `yaml:"goos"`
	GOARCH    string   `yaml:"goarch"`
	NumCPU    int      `yaml:"num_cpu"`
	GoVersion string   `yaml:"go_version"`
	Features  []string `yaml:"cpu_features,omitempty"`
}

// Report is the persisted record of one calibration run.
type Report struct {
	CreatedAt time.Time     `yaml:"created_at"`
	Host      Host          `yaml:"host"`
	Mode      string        `yaml:"mode"`
	Epochs    int           `yaml:"epochs"`
	LeafSize  int           `yaml:"leaf_size"`
	Mean      time.Duration `yaml:"mean"`
	State     State         `yaml:"state"`
	Trials    []Trial       `yaml:"trials"`
}

// CurrentHost fingerprints the running machine. Feature flags are the vector
// extensions golang.org/x/sys/cpu reports; they explain why a leaf size
// calibrated on one machine may be wrong on another.
func CurrentHost() Host {
	return Host{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
		Features:  cpuFeatures(),
	}
}

// featureFlag is one named CPU capability.
type featureFlag struct {
	name string
	has  bool
}

func cpuFeatures() []string {
	var flags []featureFlag
	switch runtime.GOARCH {
	case "amd64", "386":
		flags = []featureFlag{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"sse42", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		flags = []featureFlag{
			{"asimd", cpu.ARM64.HasASIMD},
			{"fp", cpu.ARM64.HasFP},
			{"asimdhp", cpu.ARM64.HasASIMDHP},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}
	var out []string
	for _, f := range flags {
		if f.has {
			out = append(out, f.name)
		}
	}

	return out
}

// NewReport assembles the report for res as produced by c.
func (c *Calibrator) NewReport(res Result) Report {
	mode := ModeMonotonic
	if c.opts.bounded {
		mode = ModeBounded
	}

	return Report{
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Host:      CurrentHost(),
		Mode:      mode,
		Epochs:    c.epochs,
		LeafSize:  res.LeafSize,
		Mean:      res.Mean,
		State:     res.State,
		Trials:    res.Trials,
	}
}

// WriteYAML encodes r to w with two-space indentation.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}

// SaveReport writes r as YAML to path.
func SaveReport(path string, r Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveReport: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("SaveReport: %w", cerr)
		}
	}()

	return r.WriteYAML(f)
}

// LoadReport reads a report written by SaveReport.
func LoadReport(path string) (Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("LoadReport: %w", err)
	}
	var r Report
	if err = yaml.Unmarshal(raw, &r); err != nil {
		return Report{}, fmt.Errorf("LoadReport: %w", err)
	}

	return r, nil
}
