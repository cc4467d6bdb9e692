// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/glmath/dense"
	"github.com/katalvlaran/glmath/mat"
)

func newInfoCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print host CPU features and the selected kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeInfo(cmd.OutOrStdout())
		},
	}
}

// cpuFeatures lists the vector extensions relevant to float32 kernels.
func cpuFeatures() []string {
	var fs []string
	add := func(ok bool, name string) {
		if ok {
			fs = append(fs, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasFPHP, "fphp")
		add(cpu.ARM64.HasSVE, "sve")
		add(cpu.ARM64.HasSVE2, "sve2")
	}
	return fs
}

func writeInfo(w io.Writer) error {
	env := os.Getenv(mat.KernelEnv)
	if env == "" {
		env = "(unset)"
	}
	_, err := fmt.Fprintf(w,
		"go:       %s %s/%s\ncpu:      %v\n%s: %s\nkernel:   %s\nsolver:   %s\n",
		runtime.Version(), runtime.GOOS, runtime.GOARCH,
		cpuFeatures(),
		mat.KernelEnv, env,
		mat.DefaultKernel(),
		dense.DefaultBackend,
	)
	return err
}
