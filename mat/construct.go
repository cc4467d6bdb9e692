// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/katalvlaran/glmath/scalar"
	"github.com/katalvlaran/glmath/vec"
)

// Diag2 returns s·I.
func Diag2[T scalar.Scalar](s T) Mat2 {
	f := scalar.F32(s)
	return Mat2{{f, 0}, {0, f}}
}

// Diag3 returns s·I.
func Diag3[T scalar.Scalar](s T) Mat3 {
	f := scalar.F32(s)
	return Mat3{{f, 0, 0}, {0, f, 0}, {0, 0, f}}
}

// Diag4 returns s·I.
func Diag4[T scalar.Scalar](s T) Mat4 {
	f := scalar.F32(s)
	return Mat4{{f, 0, 0, 0}, {0, f, 0, 0}, {0, 0, f, 0}, {0, 0, 0, f}}
}

func Identity2() Mat2 { return Diag2(float32(1)) }
func Identity3() Mat3 { return Diag3(float32(1)) }
func Identity4() Mat4 { return Diag4(float32(1)) }

// New2 builds a matrix from its columns, in order.
func New2(c0, c1 vec.Vec2) Mat2 { return Mat2{c0, c1} }

// New3 builds a matrix from its columns, in order.
func New3(c0, c1, c2 vec.Vec3) Mat3 { return Mat3{c0, c1, c2} }

// New4 builds a matrix from its columns, in order.
func New4(c0, c1, c2, c3 vec.Vec4) Mat4 { return Mat4{c0, c1, c2, c3} }

// Outer2 returns u ⊗ vᵀ: column c is u scaled by v[c].
func Outer2(u, v vec.Vec2) Mat2 {
	return Mat2{u.MulScalar(v[0]), u.MulScalar(v[1])}
}

// Outer3 returns u ⊗ vᵀ.
func Outer3(u, v vec.Vec3) Mat3 {
	return Mat3{u.MulScalar(v[0]), u.MulScalar(v[1]), u.MulScalar(v[2])}
}

// Outer4 returns u ⊗ vᵀ.
func Outer4(u, v vec.Vec4) Mat4 {
	return Mat4{u.MulScalar(v[0]), u.MulScalar(v[1]), u.MulScalar(v[2]), u.MulScalar(v[3])}
}
