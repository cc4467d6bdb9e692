// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/glmath/vec"
)

// Mat2 is a 2×2 column-major matrix.
type Mat2 [2]vec.Vec2

// Mat3 is a 3×3 column-major matrix.
type Mat3 [3]vec.Vec3

// Mat4 is a 4×4 column-major matrix.
type Mat4 [4]vec.Vec4

// Matrix is satisfied by exactly Mat2, Mat3 and Mat4. M is the matrix type
// itself so generic code can call its methods and get M back.
type Matrix[M any] interface {
	Mat2 | Mat3 | Mat4

	Add(M) M
	Sub(M) M
	Mul(M) M
	Div(M) M
	Neg() M
	AddScalar(float32) M
	SubScalar(float32) M
	MulScalar(float32) M
	DivScalar(float32) M
	ScalarSub(float32) M
	ScalarDiv(float32) M
	MatMul(M) M
	Transpose() M
	Det() float32
	Inverse() M
	Equal(M) bool
}

// Instantiations fail to compile if a type drops out of Matrix.
var (
	_ = AddS[Mat2, float32]
	_ = AddS[Mat3, float32]
	_ = AddS[Mat4, float32]
)

// Col returns column c. Panics if c is out of range.
func (m Mat2) Col(c int) vec.Vec2 { return m[c] }
func (m Mat3) Col(c int) vec.Vec3 { return m[c] }
func (m Mat4) Col(c int) vec.Vec4 { return m[c] }

// Row returns row r. Panics if r is out of range.
func (m Mat2) Row(r int) vec.Vec2 { return vec.Vec2{m[0][r], m[1][r]} }
func (m Mat3) Row(r int) vec.Vec3 { return vec.Vec3{m[0][r], m[1][r], m[2][r]} }
func (m Mat4) Row(r int) vec.Vec4 { return vec.Vec4{m[0][r], m[1][r], m[2][r], m[3][r]} }

// At returns the element in row r, column c.
func (m Mat2) At(r, c int) float32 { return m[c][r] }
func (m Mat3) At(r, c int) float32 { return m[c][r] }
func (m Mat4) At(r, c int) float32 { return m[c][r] }

// Array returns the elements in column-major order.
func (m Mat2) Array() (a [4]float32) {
	for c := 0; c < 2; c++ {
		copy(a[c*2:], m[c][:])
	}
	return a
}

func (m Mat3) Array() (a [9]float32) {
	for c := 0; c < 3; c++ {
		copy(a[c*3:], m[c][:])
	}
	return a
}

func (m Mat4) Array() (a [16]float32) {
	for c := 0; c < 4; c++ {
		copy(a[c*4:], m[c][:])
	}
	return a
}

// FromArray2 builds a Mat2 from column-major elements.
func FromArray2(a [4]float32) (m Mat2) {
	for c := 0; c < 2; c++ {
		copy(m[c][:], a[c*2:])
	}
	return m
}

// FromArray3 builds a Mat3 from column-major elements.
func FromArray3(a [9]float32) (m Mat3) {
	for c := 0; c < 3; c++ {
		copy(m[c][:], a[c*3:])
	}
	return m
}

// FromArray4 builds a Mat4 from column-major elements.
func FromArray4(a [16]float32) (m Mat4) {
	for c := 0; c < 4; c++ {
		copy(m[c][:], a[c*4:])
	}
	return m
}

// FromSlice2 reads the first 4 column-major elements of s.
// Panics if len(s) < 4.
func FromSlice2(s []float32) Mat2 { return FromArray2([4]float32(s)) }

// FromSlice3 reads the first 9 column-major elements of s.
// Panics if len(s) < 9.
func FromSlice3(s []float32) Mat3 { return FromArray3([9]float32(s)) }

// FromSlice4 reads the first 16 column-major elements of s.
// Panics if len(s) < 16.
func FromSlice4(s []float32) Mat4 { return FromArray4([16]float32(s)) }

func (m Mat2) String() string { return format("mat2", m[0].String(), m[1].String()) }

func (m Mat3) String() string {
	return format("mat3", m[0].String(), m[1].String(), m[2].String())
}

func (m Mat4) String() string {
	return format("mat4", m[0].String(), m[1].String(), m[2].String(), m[3].String())
}

func format(name string, cols ...string) string {
	return fmt.Sprintf("%s(%s)", name, strings.Join(cols, ", "))
}
