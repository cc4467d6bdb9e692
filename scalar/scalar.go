// SPDX-License-Identifier: MIT

// Package scalar defines the closed set of primitive numeric kinds that may
// act as scalars for vectors and matrices, and the single narrowing
// conversion into the library's float32 representation.
//
// The constraint lists concrete types only (no ~T approximations), so
// user-defined numeric types do not satisfy it.
package scalar

// Scalar is the sealed scalar capability set.
//
// It covers signed and unsigned 32/64-bit integers and 32/64-bit floats.
// int and uint are the platform-word spellings of the same kinds; they are
// admitted so untyped constants such as Splat3(5) infer a member of the set.
type Scalar interface {
	int32 | int64 | uint32 | uint64 | float32 | float64 | int | uint
}

// F32 narrows v to float32.
// Integer-to-float narrowing is accepted and rounds to the nearest
// representable float32, as shading languages do.
func F32[T Scalar](v T) float32 {
	return float32(v)
}

// F64 widens (or narrows) v to float64. Used at the dense-solver boundary.
func F64[T Scalar](v T) float64 {
	return float64(v)
}
