// SPDX-License-Identifier: MIT

package dense

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Solver computes determinants and inverses of square float64 buffers.
// a has length n*n; it is read, never written.
type Solver interface {
	Det(n int, a []float64) (float64, error)
	Inverse(n int, a []float64) ([]float64, error)
}

// Backend selects a Solver implementation.
type Backend int

const (
	// BackendGonum factorizes with gonum.org/v1/gonum/mat.
	BackendGonum Backend = iota
	// BackendLU uses the in-package pivoted LU.
	BackendLU
)

var backendNames = [...]string{
	BackendGonum: "gonum",
	BackendLU:    "lu",
}

// String returns the backend name accepted by ParseBackend.
func (b Backend) String() string {
	if b < 0 || int(b) >= len(backendNames) {
		return fmt.Sprintf("Backend(%d)", int(b))
	}
	return backendNames[b]
}

// ParseBackend maps a case-insensitive name to a Backend.
func ParseBackend(s string) (Backend, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for b, n := range backendNames {
		if n == name {
			return Backend(b), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// New returns a Solver configured by opts.
func New(opts ...Option) Solver {
	o := gatherOptions(opts...)
	if o.backend == BackendLU {
		return &luSolver{opts: o}
	}
	return &gonumSolver{opts: o}
}

var defaultSolver = New()

// Default returns the process-wide solver built from the package defaults.
// It is safe for concurrent use.
func Default() Solver { return defaultSolver }

// ---------- in-package LU backend ----------

type luSolver struct {
	opts Options
}

func (s *luSolver) factorize(tag string, n int, a []float64) (*Dense, *LU, error) {
	if err := validateInput(n, a, s.opts); err != nil {
		return nil, nil, denseErrorf(tag, err)
	}
	d, err := FromData(n, a)
	if err != nil {
		return nil, nil, denseErrorf(tag, err)
	}
	f, err := Factorize(d, s.opts.pivotTol)
	if err != nil {
		return nil, nil, denseErrorf(tag, err)
	}

	return d, f, nil
}

// Det returns 0 for a matrix whose condition number exceeds the limit.
func (s *luSolver) Det(n int, a []float64) (float64, error) {
	d, f, err := s.factorize(opDet, n, a)
	if err != nil {
		return 0, err
	}
	if s.opts.limited() {
		inv, _ := f.Inverse()
		if Condition(d, inv) > s.opts.condLimit {
			return 0, nil
		}
	}

	return f.Det(), nil
}

func (s *luSolver) Inverse(n int, a []float64) ([]float64, error) {
	d, f, err := s.factorize(opInverse, n, a)
	if err != nil {
		return nil, err
	}
	inv, err := f.Inverse()
	if err != nil {
		return nil, err
	}
	if s.opts.limited() {
		if c := Condition(d, inv); c > s.opts.condLimit {
			return nil, singularErrorf(c)
		}
	}

	return inv.data, nil
}

// ---------- gonum backend ----------

type gonumSolver struct {
	opts Options
}

func (s *gonumSolver) Det(n int, a []float64) (float64, error) {
	if err := validateInput(n, a, s.opts); err != nil {
		return 0, denseErrorf(opDet, err)
	}

	src := mat.NewDense(n, n, a)
	if s.opts.limited() && mat.Cond(src, 1) > s.opts.condLimit {
		return 0, nil
	}

	return mat.Det(src), nil
}

// Inverse delegates to (*mat.Dense).Inverse. gonum reports an exactly
// singular matrix as mat.Condition(+Inf) and one above mat.ConditionTolerance
// as a finite Condition while still producing the result; the latter is
// accepted. A finite WithConditionLimit is checked separately with mat.Cond.
func (s *gonumSolver) Inverse(n int, a []float64) ([]float64, error) {
	if err := validateInput(n, a, s.opts); err != nil {
		return nil, denseErrorf(opInverse, err)
	}

	src := mat.NewDense(n, n, a)
	var inv mat.Dense
	if err := inv.Inverse(src); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, denseErrorf(opInverse, err)
		}
		if c := float64(cond); math.IsInf(c, 1) || c > s.opts.condLimit {
			return nil, singularErrorf(c)
		}
	} else if s.opts.limited() {
		if c := mat.Cond(src, 1); c > s.opts.condLimit {
			return nil, singularErrorf(c)
		}
	}

	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = inv.At(i, j)
		}
	}

	return out, nil
}

func singularErrorf(cond float64) error {
	return denseErrorf(opInverse, fmt.Errorf("%w (condition %g)", ErrSingular, cond))
}
