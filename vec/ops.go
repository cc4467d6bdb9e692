// SPDX-License-Identifier: MIT

package vec

// Component-wise arithmetic. Every binary form returns a new value; the
// *Assign forms write into the receiver and return it for chaining.

// ---------- Vec2 ----------

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v[0] + o[0], v[1] + o[1]} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v[0] - o[0], v[1] - o[1]} }
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v[0] * o[0], v[1] * o[1]} }
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v[0] / o[0], v[1] / o[1]} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v[0], -v[1]} }

func (v *Vec2) AddAssign(o Vec2) *Vec2 {
	v[0] += o[0]
	v[1] += o[1]
	return v
}

func (v *Vec2) SubAssign(o Vec2) *Vec2 {
	v[0] -= o[0]
	v[1] -= o[1]
	return v
}

func (v *Vec2) MulAssign(o Vec2) *Vec2 {
	v[0] *= o[0]
	v[1] *= o[1]
	return v
}

func (v *Vec2) DivAssign(o Vec2) *Vec2 {
	v[0] /= o[0]
	v[1] /= o[1]
	return v
}

func (v Vec2) AddScalar(s float32) Vec2 { return Vec2{v[0] + s, v[1] + s} }
func (v Vec2) SubScalar(s float32) Vec2 { return Vec2{v[0] - s, v[1] - s} }
func (v Vec2) MulScalar(s float32) Vec2 { return Vec2{v[0] * s, v[1] * s} }
func (v Vec2) DivScalar(s float32) Vec2 { return Vec2{v[0] / s, v[1] / s} }

// ScalarSub returns s - v per component.
func (v Vec2) ScalarSub(s float32) Vec2 { return Vec2{s - v[0], s - v[1]} }

// ScalarDiv returns s / v per component.
func (v Vec2) ScalarDiv(s float32) Vec2 { return Vec2{s / v[0], s / v[1]} }

// ---------- Vec3 ----------

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v[0] * o[0], v[1] * o[1], v[2] * o[2]} }
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{v[0] / o[0], v[1] / o[1], v[2] / o[2]} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

func (v *Vec3) AddAssign(o Vec3) *Vec3 {
	v[0] += o[0]
	v[1] += o[1]
	v[2] += o[2]
	return v
}

func (v *Vec3) SubAssign(o Vec3) *Vec3 {
	v[0] -= o[0]
	v[1] -= o[1]
	v[2] -= o[2]
	return v
}

func (v *Vec3) MulAssign(o Vec3) *Vec3 {
	v[0] *= o[0]
	v[1] *= o[1]
	v[2] *= o[2]
	return v
}

func (v *Vec3) DivAssign(o Vec3) *Vec3 {
	v[0] /= o[0]
	v[1] /= o[1]
	v[2] /= o[2]
	return v
}

func (v Vec3) AddScalar(s float32) Vec3 { return Vec3{v[0] + s, v[1] + s, v[2] + s} }
func (v Vec3) SubScalar(s float32) Vec3 { return Vec3{v[0] - s, v[1] - s, v[2] - s} }
func (v Vec3) MulScalar(s float32) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }
func (v Vec3) DivScalar(s float32) Vec3 { return Vec3{v[0] / s, v[1] / s, v[2] / s} }

// ScalarSub returns s - v per component.
func (v Vec3) ScalarSub(s float32) Vec3 { return Vec3{s - v[0], s - v[1], s - v[2]} }

// ScalarDiv returns s / v per component.
func (v Vec3) ScalarDiv(s float32) Vec3 { return Vec3{s / v[0], s / v[1], s / v[2]} }

// ---------- Vec4 ----------

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

func (v Vec4) Div(o Vec4) Vec4 {
	return Vec4{v[0] / o[0], v[1] / o[1], v[2] / o[2], v[3] / o[3]}
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 { return Vec4{-v[0], -v[1], -v[2], -v[3]} }

func (v *Vec4) AddAssign(o Vec4) *Vec4 {
	v[0] += o[0]
	v[1] += o[1]
	v[2] += o[2]
	v[3] += o[3]
	return v
}

func (v *Vec4) SubAssign(o Vec4) *Vec4 {
	v[0] -= o[0]
	v[1] -= o[1]
	v[2] -= o[2]
	v[3] -= o[3]
	return v
}

func (v *Vec4) MulAssign(o Vec4) *Vec4 {
	v[0] *= o[0]
	v[1] *= o[1]
	v[2] *= o[2]
	v[3] *= o[3]
	return v
}

func (v *Vec4) DivAssign(o Vec4) *Vec4 {
	v[0] /= o[0]
	v[1] /= o[1]
	v[2] /= o[2]
	v[3] /= o[3]
	return v
}

func (v Vec4) AddScalar(s float32) Vec4 { return Vec4{v[0] + s, v[1] + s, v[2] + s, v[3] + s} }
func (v Vec4) SubScalar(s float32) Vec4 { return Vec4{v[0] - s, v[1] - s, v[2] - s, v[3] - s} }
func (v Vec4) MulScalar(s float32) Vec4 { return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s} }
func (v Vec4) DivScalar(s float32) Vec4 { return Vec4{v[0] / s, v[1] / s, v[2] / s, v[3] / s} }

// ScalarSub returns s - v per component.
func (v Vec4) ScalarSub(s float32) Vec4 { return Vec4{s - v[0], s - v[1], s - v[2], s - v[3]} }

// ScalarDiv returns s / v per component.
func (v Vec4) ScalarDiv(s float32) Vec4 { return Vec4{s / v[0], s / v[1], s / v[2], s / v[3]} }
