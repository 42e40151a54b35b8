// Package matops multiplies large, disk-resident dense matrices with
// Strassen's algorithm and tunes the recursion cutover for the host machine.
//
// 🚀 What is matops?
//
//	A small library plus CLI that brings together:
//		• Strassen engine: seven-product recursion with a cubic base case
//		• Orchestrator: power-of-two padding and extraction for any shapes
//		• Calibration: timed search for the fastest leaf size, persisted once
//		• CSV files: exact round-trip storage for ints and floats
//
// ✨ Why choose matops?
//
//   - Generic – one engine for int, int8…int64, float32 and float64
//   - Predictable – no package-level state; the leaf size is a per-call value
//   - Bounded memory – one scratch slab per recursion depth, reused by siblings
//
// Packages:
//
//	matrix/    : Dense[T], Strassen, Multiply, MulNaive, Transpose
//	csvio/     : Load/Store of matrix files, TransposeFile, MultiplyFiles
//	config/    : persisted leaf size, leaf-size sources, CLI settings
//	calibrate/ : leaf-size search (monotonic or bounded) and YAML reports
//	cmd/matops : the operator CLI (multiply, transpose, configure, print)
//
// Quick start:
//
//	matops configure 5                 # once per machine
//	matops multiply A.csv B.csv C.csv  # reuses configure.txt
//
//	go install github.com/katalvlaran/matops/cmd/matops@latest
package matops
