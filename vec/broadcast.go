// SPDX-License-Identifier: MIT

package vec

import "github.com/katalvlaran/glmath/scalar"

// Generic scalar broadcasting over any vector size and any scalar kind.
// The scalar is narrowed to float32 once, before the operation.
//
//	vec.AddS(v, 2)          // v + 2
//	vec.SSub(uint32(1), v)  // 1 - v

// AddS returns v + s.
func AddS[V Vector, T scalar.Scalar](v V, s T) V {
	f := scalar.F32(s)
	for i := 0; i < len(v); i++ {
		v[i] += f
	}
	return v
}

// SubS returns v - s.
func SubS[V Vector, T scalar.Scalar](v V, s T) V {
	f := scalar.F32(s)
	for i := 0; i < len(v); i++ {
		v[i] -= f
	}
	return v
}

// MulS returns v * s.
func MulS[V Vector, T scalar.Scalar](v V, s T) V {
	f := scalar.F32(s)
	for i := 0; i < len(v); i++ {
		v[i] *= f
	}
	return v
}

// DivS returns v / s.
func DivS[V Vector, T scalar.Scalar](v V, s T) V {
	f := scalar.F32(s)
	for i := 0; i < len(v); i++ {
		v[i] /= f
	}
	return v
}

// SAdd returns s + v.
func SAdd[T scalar.Scalar, V Vector](s T, v V) V { return AddS(v, s) }

// SSub returns s - v.
func SSub[T scalar.Scalar, V Vector](s T, v V) V {
	f := scalar.F32(s)
	for i := 0; i < len(v); i++ {
		v[i] = f - v[i]
	}
	return v
}

// SMul returns s * v.
func SMul[T scalar.Scalar, V Vector](s T, v V) V { return MulS(v, s) }

// SDiv returns s / v.
func SDiv[T scalar.Scalar, V Vector](s T, v V) V {
	f := scalar.F32(s)
	for i := 0; i < len(v); i++ {
		v[i] = f / v[i]
	}
	return v
}
