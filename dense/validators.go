// SPDX-License-Identifier: MIT
// Package dense: canonical validation checks shared by both backends.
// Validators return plain sentinels; call sites wrap them with an op tag.

package dense

import "math"

// ValidateSquareData checks that n > 0 and len(a) == n*n.
func ValidateSquareData(n int, a []float64) error {
	if n <= 0 {
		return ErrInvalidDimensions
	}
	if len(a) != n*n {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateFinite reports ErrNaNInf if any element of a is NaN or ±Inf.
func ValidateFinite(a []float64) error {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}
	return nil
}

// validateInput is the composite check run by every Solver entry point:
// shape first, then (optionally) the numeric policy.
func validateInput(n int, a []float64, o Options) error {
	if err := ValidateSquareData(n, a); err != nil {
		return err
	}
	if o.validateNaNInf {
		return ValidateFinite(a)
	}
	return nil
}
