// SPDX-License-Identifier: MIT

// Command glkernel checks and times the 4×4 matrix product kernels.
//
//	glkernel verify [--pairs N] [--seed S] [--workers W] [--backend gonum|lu]
//	glkernel bench  [--iterations N]
//	glkernel info
//
// Settings come from an optional YAML file (--config) and are overridden
// by flags.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
