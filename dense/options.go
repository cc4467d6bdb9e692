// SPDX-License-Identifier: MIT

// Package dense: functional configuration for solver construction.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic only on nonsensical values,
//   - gatherOptions, the single place defaults are applied.

package dense

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBackend is the solver used when no WithBackend option is given.
	DefaultBackend = BackendGonum

	// DefaultPivotTolerance is the largest |pivot| the LU backend still
	// treats as zero. 0 means only exact zeros are singular.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf rejects non-finite input with ErrNaNInf when true.
	// Off by default: NaN/Inf propagate through the arithmetic instead,
	// which is what the float32 matrix types expect.
	DefaultValidateNaNInf = false
)

// DefaultConditionLimit is the largest 1-norm condition number a Solver
// accepts before Inverse reports ErrSingular and Det reports 0. +Inf accepts
// every matrix that factorizes without a zero pivot.
var DefaultConditionLimit = math.Inf(1)

// Float32ConditionLimit is 1/ε for float32 (2^23). Past it a float32 input
// carries no correct digits in its inverse, so the matrix is treated as
// singular at that precision.
const Float32ConditionLimit = 1 << 23

// ---------- Internal panic messages ----------

const (
	panicPivotTolInvalid  = "dense: WithPivotTolerance: tol must be finite, non-negative"
	panicCondLimitInvalid = "dense: WithConditionLimit: limit must be >= 1 and not NaN"
	panicBackendInvalid   = "dense: WithBackend: unknown backend"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	backend        Backend
	pivotTol       float64
	condLimit      float64
	validateNaNInf bool
}

// Backend reports the configured backend.
func (o Options) Backend() Backend { return o.backend }

// WithBackend selects the factorization backend.
// Panics on a value outside the declared Backend constants.
func WithBackend(b Backend) Option {
	if b != BackendGonum && b != BackendLU {
		panic(panicBackendInvalid)
	}
	return func(o *Options) { o.backend = b }
}

// WithPivotTolerance sets the LU backend's zero-pivot threshold.
// Pivots with |p| <= tol are treated as zero; Inverse then reports ErrSingular.
// Panics if tol is negative, NaN or infinite.
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotTolInvalid)
	}
	return func(o *Options) { o.pivotTol = tol }
}

// WithConditionLimit makes both backends treat a matrix whose 1-norm
// condition number exceeds limit as singular: Inverse returns ErrSingular
// and Det returns 0. Panics if limit < 1 or NaN.
func WithConditionLimit(limit float64) Option {
	if limit < 1 || math.IsNaN(limit) {
		panic(panicCondLimitInvalid)
	}
	return func(o *Options) { o.condLimit = limit }
}

func (o Options) limited() bool { return !math.IsInf(o.condLimit, 1) }

// WithValidateNaNInf rejects non-finite input buffers with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN/Inf flow through the arithmetic.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func defaultOptions() Options {
	return Options{
		backend:        DefaultBackend,
		pivotTol:       DefaultPivotTolerance,
		condLimit:      DefaultConditionLimit,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options in order; nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
