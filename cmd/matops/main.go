// SPDX-License-Identifier: MIT

// Command matops multiplies and transposes matrix files and calibrates the
// Strassen leaf size for the host machine.
//
//	matops configure 5                 # monotonic search, 5 runs per candidate
//	matops configure 5 8 512           # bounded search over 8..512
//	matops multiply A.csv B.csv C.csv  # uses the calibrated leaf size
//	matops transpose M.csv             # in place
//	matops print C.csv
package main

import "os"

func main() {
	a := newApp()
	if err := a.rootCmd().Execute(); err != nil {
		a.logger().WithError(err).Error("matops failed")
		os.Exit(1)
	}
}
