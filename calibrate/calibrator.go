// SPDX-License-Identifier: MIT

// Package calibrate - leaf-size search.
//
// Monotonic search (default):
//   - L starts at the lower bound. While the mean time at L beats the best
//     mean so far, L is recorded and doubled. The first non-improving L
//     (or the patience-th in a row) ends the search; the recorded best wins.
//   - Assumes time(L) falls then rises. MaxLeafSize stops runaway doubling.
//
// Bounded search (WithBounds):
//   - Every L in lower, 2·lower, ... ≤ upper is measured; the global minimum
//     wins and ties keep the smaller L.
//
// No retries: the first probe error aborts the search and is returned.

package calibrate

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Probe measures one multiplication at the given leaf size.
type Probe func(leaf int) (time.Duration, error)

// Trial is the measurement of one candidate leaf size.
type Trial struct {
	LeafSize int           `yaml:"leaf_size"`
	Mean     time.Duration `yaml:"mean"`
	Runs     int           `yaml:"runs"`
}

// Result is the outcome of one search.
type Result struct {
	LeafSize int           // chosen leaf size
	Mean     time.Duration // its mean time
	Trials   []Trial       // every measured candidate, in probe order
	State    State         // Done after a completed search
}

// Calibrator runs one leaf-size search. It is not safe for concurrent use.
type Calibrator struct {
	epochs int
	opts   Options
	state  State
}

// New validates the epoch count and options.
//
// Errors:
//   - ErrInvalidEpochs for epochs < 1.
//   - ErrInvalidBounds for lower < 1, lower > MaxLeafSize, or (bounded)
//     upper < lower or upper > MaxLeafSize.
func New(epochs int, opts ...Option) (*Calibrator, error) {
	if epochs < 1 {
		return nil, fmt.Errorf("New: got %d: %w", epochs, ErrInvalidEpochs)
	}
	o := gatherOptions(opts...)
	if o.lower < 1 || o.lower > MaxLeafSize {
		return nil, fmt.Errorf("New: lower bound %d: %w", o.lower, ErrInvalidBounds)
	}
	if o.bounded && (o.upper < o.lower || o.upper > MaxLeafSize) {
		return nil, fmt.Errorf("New: bounds [%d, %d]: %w", o.lower, o.upper, ErrInvalidBounds)
	}

	return &Calibrator{epochs: epochs, opts: o, state: Probing}, nil
}

// Epochs reports the number of probe runs per candidate.
func (c *Calibrator) Epochs() int { return c.epochs }

// Bounded reports whether the bounded search is selected.
func (c *Calibrator) Bounded() bool { return c.opts.bounded }

// State reports the current search phase.
func (c *Calibrator) State() State { return c.state }

// Run executes the search with probe and returns the chosen leaf size.
// A Calibrator may be run again; every Run starts from Probing.
func (c *Calibrator) Run(probe Probe) (Result, error) {
	if probe == nil {
		return Result{}, fmt.Errorf("Run: %w", ErrNilProbe)
	}
	c.state = Probing

	var res Result
	var err error
	if c.opts.bounded {
		res, err = c.runBounded(probe)
	} else {
		res, err = c.runMonotonic(probe)
	}
	if err != nil {
		return Result{}, err
	}
	c.state = Done
	res.State = Done
	c.opts.log.WithFields(logrus.Fields{
		"leaf_size": res.LeafSize,
		"mean":      res.Mean,
		"trials":    len(res.Trials),
	}).Info("calibration finished")

	return res, nil
}

func (c *Calibrator) runMonotonic(probe Probe) (Result, error) {
	var res Result
	misses := 0
	for leaf := c.opts.lower; leaf <= MaxLeafSize; leaf *= 2 {
		t, err := c.measure(probe, leaf)
		if err != nil {
			return Result{}, err
		}
		res.Trials = append(res.Trials, t)

		if len(res.Trials) == 1 || t.Mean < res.Mean {
			res.LeafSize, res.Mean = t.LeafSize, t.Mean
			c.state = Improving
			misses = 0
			c.logTrial(t, true)
			continue
		}
		c.logTrial(t, false)
		misses++
		if misses >= c.opts.patience {
			break
		}
	}

	return res, nil
}

func (c *Calibrator) runBounded(probe Probe) (Result, error) {
	var res Result
	for leaf := c.opts.lower; leaf <= c.opts.upper; leaf *= 2 {
		t, err := c.measure(probe, leaf)
		if err != nil {
			return Result{}, err
		}
		res.Trials = append(res.Trials, t)

		best := len(res.Trials) == 1 || t.Mean < res.Mean
		if best {
			res.LeafSize, res.Mean = t.LeafSize, t.Mean
			c.state = Improving
		}
		c.logTrial(t, best)
	}

	return res, nil
}

// measure runs probe epochs times at leaf and averages the durations.
func (c *Calibrator) measure(probe Probe, leaf int) (Trial, error) {
	var total time.Duration
	for i := 0; i < c.epochs; i++ {
		d, err := probe(leaf)
		if err != nil {
			return Trial{}, fmt.Errorf("Run: leaf size %d, run %d: %w", leaf, i+1, err)
		}
		total += d
	}

	return Trial{LeafSize: leaf, Mean: total / time.Duration(c.epochs), Runs: c.epochs}, nil
}

func (c *Calibrator) logTrial(t Trial, best bool) {
	c.opts.log.WithFields(logrus.Fields{
		"leaf_size": t.LeafSize,
		"mean":      t.Mean,
		"best":      best,
		"state":     c.state,
	}).Info("testing library with leaf size")
}
