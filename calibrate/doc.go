// Package calibrate finds the Strassen leaf size that multiplies fastest on
// the host machine.
//
// A Calibrator times a Probe (usually BenchmarkProbe or FileProbe) at leaf
// sizes 8, 16, 32, ... and keeps the candidate with the lowest mean time.
// Without bounds it stops at the first candidate that fails to improve
// (Probing → Improving → Done); with WithBounds it sweeps the whole range and
// reports the global minimum. The winner is meant to be persisted with
// config.StoreLeafSize so production multiplications skip calibration.
//
// Progress is logged per candidate through a logrus.FieldLogger. A Report
// captures every trial together with a host fingerprint and can be saved as
// YAML next to the calibrated value.
package calibrate
