// SPDX-License-Identifier: MIT

package vec

import "fmt"

// Vec2 is a two-component float32 vector (x, y).
type Vec2 [2]float32

// Vec3 is a three-component float32 vector (x, y, z).
type Vec3 [3]float32

// Vec4 is a four-component float32 vector (x, y, z, w).
type Vec4 [4]float32

// Vector is the set of fixed-size vector types.
// Generic code over Vector indexes components with v[i] for i < len(v).
type Vector interface {
	Vec2 | Vec3 | Vec4
}

// ---------- component accessors ----------

func (v Vec2) X() float32 { return v[0] }
func (v Vec2) Y() float32 { return v[1] }

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

func (v Vec4) X() float32 { return v[0] }
func (v Vec4) Y() float32 { return v[1] }
func (v Vec4) Z() float32 { return v[2] }
func (v Vec4) W() float32 { return v[3] }

// XY drops z.
func (v Vec3) XY() Vec2 { return Vec2{v[0], v[1]} }

// XY drops z and w.
func (v Vec4) XY() Vec2 { return Vec2{v[0], v[1]} }

// XYZ drops w.
func (v Vec4) XYZ() Vec3 { return Vec3{v[0], v[1], v[2]} }

// ---------- array / slice views ----------

// Array returns the components as a plain array.
func (v Vec2) Array() [2]float32 { return [2]float32(v) }

// Array returns the components as a plain array.
func (v Vec3) Array() [3]float32 { return [3]float32(v) }

// Array returns the components as a plain array.
func (v Vec4) Array() [4]float32 { return [4]float32(v) }

// Slice returns a mutable view of the components; writes go to v.
func (v *Vec2) Slice() []float32 { return v[:] }

// Slice returns a mutable view of the components; writes go to v.
func (v *Vec3) Slice() []float32 { return v[:] }

// Slice returns a mutable view of the components; writes go to v.
func (v *Vec4) Slice() []float32 { return v[:] }

// FromArray2 builds a Vec2 from an array, preserving order.
func FromArray2(a [2]float32) Vec2 { return Vec2(a) }

// FromArray3 builds a Vec3 from an array, preserving order.
func FromArray3(a [3]float32) Vec3 { return Vec3(a) }

// FromArray4 builds a Vec4 from an array, preserving order.
func FromArray4(a [4]float32) Vec4 { return Vec4(a) }

// FromSlice2 copies the first two elements of s.
// It panics if len(s) < 2, like any slice-to-array conversion.
func FromSlice2(s []float32) Vec2 { return Vec2(s) }

// FromSlice3 copies the first three elements of s.
// It panics if len(s) < 3.
func FromSlice3(s []float32) Vec3 { return Vec3(s) }

// FromSlice4 copies the first four elements of s.
// It panics if len(s) < 4.
func FromSlice4(s []float32) Vec4 { return Vec4(s) }

// ---------- formatting ----------

func (v Vec2) String() string { return fmt.Sprintf("vec2(%g, %g)", v[0], v[1]) }

func (v Vec3) String() string { return fmt.Sprintf("vec3(%g, %g, %g)", v[0], v[1], v[2]) }

func (v Vec4) String() string {
	return fmt.Sprintf("vec4(%g, %g, %g, %g)", v[0], v[1], v[2], v[3])
}
