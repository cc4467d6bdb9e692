// SPDX-License-Identifier: MIT

package glsl

import (
	"github.com/katalvlaran/glmath/mat"
	"github.com/katalvlaran/glmath/vec"
)

// MatrixCompMult multiplies a and b element by element.
func MatrixCompMult[M mat.Matrix[M]](a, b M) M { return a.Mul(b) }

// OuterProduct2 returns u ⊗ vᵀ, so result[c][r] = u[r]·v[c].
func OuterProduct2(u, v vec.Vec2) mat.Mat2 { return mat.Outer2(u, v) }
func OuterProduct3(u, v vec.Vec3) mat.Mat3 { return mat.Outer3(u, v) }
func OuterProduct4(u, v vec.Vec4) mat.Mat4 { return mat.Outer4(u, v) }

func Transpose[M mat.Matrix[M]](m M) M { return m.Transpose() }

func Determinant[M mat.Matrix[M]](m M) float32 { return m.Det() }

// Inverse returns m⁻¹, or a matrix of NaN when m is singular.
func Inverse[M mat.Matrix[M]](m M) M { return m.Inverse() }
