// SPDX-License-Identifier: MIT

package glsl

import (
	"math"

	"github.com/katalvlaran/glmath/scalar"
	"github.com/katalvlaran/glmath/vec"
)

// Dot returns Σ a[i]·b[i].
func Dot[V vec.Vector](a, b V) float32 {
	var s float32
	for i := 0; i < len(a); i++ {
		s += a[i] * b[i]
	}
	return s
}

// Length returns the Euclidean norm of v.
func Length[V vec.Vector](v V) float32 {
	return float32(math.Sqrt(float64(Dot(v, v))))
}

// Distance returns Length(a - b).
func Distance[V vec.Vector](a, b V) float32 {
	var d V
	for i := 0; i < len(a); i++ {
		d[i] = a[i] - b[i]
	}
	return Length(d)
}

// Normalize returns v / Length(v). The zero vector gives NaN components.
func Normalize[V vec.Vector](v V) V {
	return vec.DivS(v, Length(v))
}

// Cross returns the cross product a × b.
func Cross(a, b vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// FaceForward returns n if dot(n, i) < 0 and -n otherwise.
func FaceForward[V vec.Vector](n, i V) V {
	if Dot(n, i) < 0 {
		return n
	}
	return vec.MulS(n, float32(-1))
}

// Reflect returns i - 2·dot(n, i)·n. n should be normalized.
func Reflect[V vec.Vector](i, n V) V {
	d := 2 * Dot(n, i)
	var r V
	for j := 0; j < len(i); j++ {
		r[j] = i[j] - d*n[j]
	}
	return r
}

// Refract returns the refraction of incident i through a surface with
// normal n and ratio of indices eta. i and n should be normalized.
// On total internal reflection the zero vector is returned.
func Refract[V vec.Vector, T scalar.Scalar](i, n V, eta T) V {
	e := scalar.F32(eta)
	d := Dot(n, i)
	k := 1 - e*e*(1-d*d)

	var r V
	if k < 0 {
		return r
	}
	f := e*d + float32(math.Sqrt(float64(k)))
	for j := 0; j < len(i); j++ {
		r[j] = e*i[j] - f*n[j]
	}
	return r
}
