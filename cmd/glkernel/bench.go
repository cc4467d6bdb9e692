// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glmath/mat"
)

// BenchResult is the timing of one kernel.
type BenchResult struct {
	Kernel     mat.Kernel
	Iterations int
	Elapsed    time.Duration
}

// NsPerOp returns the mean time per product in nanoseconds.
func (r BenchResult) NsPerOp() float64 {
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}

var benchSink mat.Mat4

func newBenchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every kernel on the same operands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := runBench(cmd.Context(), a.cfg.Bench.Iterations, a.log)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KERNEL\tITERATIONS\tNS/OP\tDEFAULT")
			for _, r := range results {
				def := ""
				if r.Kernel == mat.DefaultKernel() {
					def = "*"
				}
				fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s\n", r.Kernel, r.Iterations, r.NsPerOp(), def)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Int(flagIterations, DefaultIterations, "products per kernel")
	return cmd
}

func runBench(ctx context.Context, iterations int, log *Logger) ([]BenchResult, error) {
	r := rand.New(rand.NewSource(DefaultSeed))
	x, y := randMat4(r, 1), randMat4(r, 1)

	out := make([]BenchResult, 0, len(mat.Kernels()))
	for _, k := range mat.Kernels() {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		start := time.Now()
		for i := 0; i < iterations; i++ {
			benchSink = k.Mul(x, y)
		}
		res := BenchResult{Kernel: k, Iterations: iterations, Elapsed: time.Since(start)}
		log.WithKernel(k).Debug("bench done", "ns_per_op", res.NsPerOp())
		out = append(out, res)
	}
	return out, nil
}
