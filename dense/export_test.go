// SPDX-License-Identifier: MIT
// Package dense: expose unexported storage to dense_test ONLY.
// This file is compiled only with `go test`.

package dense

// Data returns the row-major backing buffer of d.
func (d *Dense) Data() []float64 { return d.data }

// Packed returns the packed L\U storage and the row permutation of f.
func (f *LU) Packed() ([]float64, []int) { return f.lu.data, f.piv }

// Norm1 exposes norm1.
func Norm1(d *Dense) float64 { return norm1(d) }
