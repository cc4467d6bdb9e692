// SPDX-License-Identifier: MIT

package mat

import "github.com/katalvlaran/glmath/vec"

// Each product term is converted to float32 before it is summed so the
// compiler cannot fuse it into a multiply-add.

// MulVec returns m × v with v as a column vector.
func (m Mat2) MulVec(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		float32(m[0][0]*v[0]) + float32(m[1][0]*v[1]),
		float32(m[0][1]*v[0]) + float32(m[1][1]*v[1]),
	}
}

func (m Mat3) MulVec(v vec.Vec3) vec.Vec3 {
	var r vec.Vec3
	for row := 0; row < 3; row++ {
		r[row] = float32(m[0][row]*v[0]) + float32(m[1][row]*v[1]) + float32(m[2][row]*v[2])
	}
	return r
}

func (m Mat4) MulVec(v vec.Vec4) vec.Vec4 {
	var r vec.Vec4
	for row := 0; row < 4; row++ {
		r[row] = float32(m[0][row]*v[0]) + float32(m[1][row]*v[1]) +
			float32(m[2][row]*v[2]) + float32(m[3][row]*v[3])
	}
	return r
}

// MatMul returns the matrix product m × o.
func (m Mat2) MatMul(o Mat2) Mat2 { return Mat2{m.MulVec(o[0]), m.MulVec(o[1])} }

// MatMul returns the matrix product m × o.
func (m Mat3) MatMul(o Mat3) Mat3 {
	return Mat3{m.MulVec(o[0]), m.MulVec(o[1]), m.MulVec(o[2])}
}

// MatMul returns the matrix product m × o using DefaultKernel.
func (m Mat4) MatMul(o Mat4) Mat4 { return defaultKernel.Mul(m, o) }

// Transpose returns mᵀ.
func (m Mat2) Transpose() Mat2 {
	return Mat2{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

// TransposeInPlace transposes m and returns it.
func (m *Mat2) TransposeInPlace() *Mat2 {
	m[0][1], m[1][0] = m[1][0], m[0][1]
	return m
}

func (m *Mat3) TransposeInPlace() *Mat3 {
	for c := 0; c < 3; c++ {
		for r := c + 1; r < 3; r++ {
			m[c][r], m[r][c] = m[r][c], m[c][r]
		}
	}
	return m
}

func (m *Mat4) TransposeInPlace() *Mat4 {
	for c := 0; c < 4; c++ {
		for r := c + 1; r < 4; r++ {
			m[c][r], m[r][c] = m[r][c], m[c][r]
		}
	}
	return m
}
