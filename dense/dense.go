// SPDX-License-Identifier: MIT

// Package dense - square row-major storage.
//
// Purpose:
//   - Provide a flat n×n buffer with the explicit index formula i*n + j.
//   - Never alias caller memory: FromData copies.
//
// Complexity quicksheet:
//   - FromData/Clone: O(n²).

package dense

import "math"

// Dense is a concrete square row-major matrix.
//   - n holds the order (rows == cols == n).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Dense struct {
	n    int
	data []float64
}

// FromData copies a into a new n×n Dense.
// MAIN DESCRIPTION:
//   - Build a Dense from a flat buffer without aliasing the caller's slice.
//
// Implementation:
//   - Stage 1: validate n > 0 and len(a) == n*n.
//   - Stage 2: copy a into fresh storage.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (wrapped with the ctor tag).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromData(n int, a []float64) (*Dense, error) {
	if err := ValidateSquareData(n, a); err != nil {
		return nil, denseErrorf(opNew, err)
	}
	buf := make([]float64, len(a))
	copy(buf, a)

	return &Dense{n: n, data: buf}, nil
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return &Dense{n: d.n, data: buf}
}

// norm1 returns the maximum absolute column sum ‖d‖₁.
func norm1(d *Dense) float64 {
	n := d.n
	var best float64
	for j := 0; j < n; j++ {
		var sum float64
		for i := 0; i < n; i++ {
			sum += math.Abs(d.data[i*n+j])
		}
		if sum > best || math.IsNaN(sum) {
			best = sum
		}
	}

	return best
}
