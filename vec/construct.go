// SPDX-License-Identifier: MIT

package vec

import "github.com/katalvlaran/glmath/scalar"

// This file is the construction resolver: one function per legal argument
// shape. Shapes whose component count differs from N are not declared, so
// they cannot be written.

// ---------- Vec2 ----------

// New2 is vec2(x, y).
func New2[A, B scalar.Scalar](x A, y B) Vec2 {
	return Vec2{scalar.F32(x), scalar.F32(y)}
}

// Splat2 is vec2(s): s broadcast to both components.
func Splat2[T scalar.Scalar](s T) Vec2 {
	f := scalar.F32(s)
	return Vec2{f, f}
}

// ---------- Vec3 ----------

// New3 is vec3(x, y, z).
func New3[A, B, C scalar.Scalar](x A, y B, z C) Vec3 {
	return Vec3{scalar.F32(x), scalar.F32(y), scalar.F32(z)}
}

// New3V2S is vec3(vec2, z).
func New3V2S[C scalar.Scalar](v Vec2, z C) Vec3 {
	return Vec3{v[0], v[1], scalar.F32(z)}
}

// New3SV2 is vec3(x, vec2).
func New3SV2[A scalar.Scalar](x A, v Vec2) Vec3 {
	return Vec3{scalar.F32(x), v[0], v[1]}
}

// Splat3 is vec3(s).
func Splat3[T scalar.Scalar](s T) Vec3 {
	f := scalar.F32(s)
	return Vec3{f, f, f}
}

// ---------- Vec4 ----------

// New4 is vec4(x, y, z, w).
func New4[A, B, C, D scalar.Scalar](x A, y B, z C, w D) Vec4 {
	return Vec4{scalar.F32(x), scalar.F32(y), scalar.F32(z), scalar.F32(w)}
}

// New4V2SS is vec4(vec2, z, w).
func New4V2SS[C, D scalar.Scalar](v Vec2, z C, w D) Vec4 {
	return Vec4{v[0], v[1], scalar.F32(z), scalar.F32(w)}
}

// New4SV2S is vec4(x, vec2, w).
func New4SV2S[A, D scalar.Scalar](x A, v Vec2, w D) Vec4 {
	return Vec4{scalar.F32(x), v[0], v[1], scalar.F32(w)}
}

// New4SSV2 is vec4(x, y, vec2).
func New4SSV2[A, B scalar.Scalar](x A, y B, v Vec2) Vec4 {
	return Vec4{scalar.F32(x), scalar.F32(y), v[0], v[1]}
}

// New4V2V2 is vec4(vec2, vec2).
func New4V2V2(a, b Vec2) Vec4 {
	return Vec4{a[0], a[1], b[0], b[1]}
}

// New4V3S is vec4(vec3, w). The common way to lift a point (w=1) or a
// direction (w=0) into homogeneous coordinates.
func New4V3S[D scalar.Scalar](v Vec3, w D) Vec4 {
	return Vec4{v[0], v[1], v[2], scalar.F32(w)}
}

// New4SV3 is vec4(x, vec3).
func New4SV3[A scalar.Scalar](x A, v Vec3) Vec4 {
	return Vec4{scalar.F32(x), v[0], v[1], v[2]}
}

// Splat4 is vec4(s).
func Splat4[T scalar.Scalar](s T) Vec4 {
	f := scalar.F32(s)
	return Vec4{f, f, f, f}
}
