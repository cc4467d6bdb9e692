// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with an op tag) and
// tests check them via errors.Is. Panics are reserved for programmer errors
// in option constructors.

package dense

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "dense: ..." for consistency and grep-ability.
var (
	// ErrInvalidDimensions indicates a non-positive matrix order.
	ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")

	// ErrDimensionMismatch indicates a buffer whose length is not n*n.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (see WithValidateNaNInf).
	ErrNaNInf = errors.New("dense: NaN or Inf encountered")

	// ErrSingular is returned when no inverse exists: a zero (or
	// below-tolerance) pivot, or a condition number above the configured limit.
	ErrSingular = errors.New("dense: singular matrix")

	// ErrUnknownBackend is returned by ParseBackend for an unrecognised name.
	ErrUnknownBackend = errors.New("dense: unknown backend")

	// ErrNilMatrix is returned by Factorize for a nil or empty Dense.
	ErrNilMatrix = errors.New("dense: nil matrix")
)

// Operation tags used in error wrappers.
const (
	opDet     = "Det"
	opInverse = "Inverse"
	opLU      = "LU"
	opNew     = "FromData"
)

// denseErrorf wraps err with an operation tag, preserving it for errors.Is.
// Only call with a non-nil err.
func denseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
