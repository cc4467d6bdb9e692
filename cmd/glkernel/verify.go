// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/glmath/dense"
	"github.com/katalvlaran/glmath/mat"
)

// ErrKernelMismatch is returned by verify when any kernel disagrees with
// MulUnrolled on at least one pair.
var ErrKernelMismatch = errors.New("glkernel: kernel results differ")

// inverseTolerance bounds |M·M⁻¹ - I| for the diagonally dominant samples.
const inverseTolerance = 1e-3

// VerifyReport summarises one verify run.
type VerifyReport struct {
	Pairs         int
	Mismatches    int
	Backend       dense.Backend
	MaxInverseErr float64
}

type chunkResult struct {
	mismatches    int
	maxInverseErr float64
}

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every kernel matches MulUnrolled bit for bit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := runVerify(cmd.Context(), a.cfg.Verify, a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d pairs, %d kernels, backend %s, max |M·M⁻¹-I| %.3g\n",
				rep.Pairs, len(mat.Kernels()), rep.Backend, rep.MaxInverseErr)
			return nil
		},
	}

	f := cmd.Flags()
	f.Int(flagPairs, DefaultPairs, "number of random matrix pairs")
	f.Int64(flagSeed, DefaultSeed, "random seed; worker w uses seed+w")
	f.Int(flagWorkers, DefaultWorkers, "parallel workers")
	f.Float32(flagRange, DefaultRange, "elements are drawn from [-range, range)")
	f.String(flagBackend, DefaultBackend, "dense solver backend for the inverse check (gonum, lu)")
	return cmd
}

// runVerify spreads cfg.Pairs random pairs over cfg.Workers goroutines. For
// each pair every kernel is compared bitwise with MulUnrolled, and the
// inverse of a diagonally dominant matrix built from the first operand is
// checked against the identity.
func runVerify(ctx context.Context, cfg VerifyConfig, log *Logger) (VerifyReport, error) {
	backend, err := dense.ParseBackend(cfg.Backend)
	if err != nil {
		return VerifyReport{}, err
	}
	solver := mat.NewSolver(dense.WithBackend(backend))
	rep := VerifyReport{Pairs: cfg.Pairs, Backend: backend}

	chunks := splitWork(cfg.Pairs, cfg.Workers)
	results := make([]chunkResult, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for w, n := range chunks {
		w, n := w, n
		g.Go(func() error {
			wl := log.WithWorker(w)
			r := rand.New(rand.NewSource(cfg.Seed + int64(w)))
			res := &results[w]

			for i := 0; i < n; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				x, y := randMat4(r, cfg.Range), randMat4(r, cfg.Range)
				want := mat.MulUnrolled(x, y)
				for _, k := range mat.Kernels() {
					if got := k.Mul(x, y); !sameBits(want, got) {
						res.mismatches++
						wl.WithKernel(k).Warn("kernel mismatch", "pair", i, "want", want, "got", got)
					}
				}

				m := x.Add(mat.Diag4(4 * cfg.Range))
				e := maxAbsDiff(m.MatMul(m.InverseWith(solver)), mat.Identity4())
				if e > res.maxInverseErr {
					res.maxInverseErr = e
				}
			}
			wl.Debug("worker done", "pairs", n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rep, err
	}

	for _, res := range results {
		rep.Mismatches += res.mismatches
		rep.MaxInverseErr = math.Max(rep.MaxInverseErr, res.maxInverseErr)
	}
	log.Info("verify finished",
		"pairs", rep.Pairs, "mismatches", rep.Mismatches,
		"backend", rep.Backend.String(), "max_inverse_err", rep.MaxInverseErr)

	if rep.Mismatches > 0 {
		return rep, fmt.Errorf("%w: %d mismatches over %d pairs", ErrKernelMismatch, rep.Mismatches, rep.Pairs)
	}
	if rep.MaxInverseErr > inverseTolerance {
		return rep, fmt.Errorf("glkernel: inverse check failed: error %g > %g", rep.MaxInverseErr, inverseTolerance)
	}
	return rep, nil
}

// splitWork divides total into at most workers near-equal positive parts.
func splitWork(total, workers int) []int {
	if workers > total {
		workers = total
	}
	if workers <= 0 {
		return nil
	}
	parts := make([]int, workers)
	for i := range parts {
		parts[i] = total / workers
		if i < total%workers {
			parts[i]++
		}
	}
	return parts
}

func randMat4(r *rand.Rand, span float32) mat.Mat4 {
	var a [16]float32
	for i := range a {
		a[i] = (r.Float32()*2 - 1) * span
	}
	return mat.FromArray4(a)
}

func sameBits(a, b mat.Mat4) bool {
	x, y := a.Array(), b.Array()
	for i := range x {
		if math.Float32bits(x[i]) != math.Float32bits(y[i]) {
			return false
		}
	}
	return true
}

// maxAbsDiff returns max |a-b| over all elements; NaN counts as +Inf.
func maxAbsDiff(a, b mat.Mat4) float64 {
	x, y := a.Array(), b.Array()
	var m float64
	for i := range x {
		d := math.Abs(float64(x[i]) - float64(y[i]))
		if math.IsNaN(d) {
			return math.Inf(1)
		}
		m = math.Max(m, d)
	}
	return m
}
