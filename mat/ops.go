// SPDX-License-Identifier: MIT

package mat

// ---------- Mat2 ----------

func (m Mat2) Add(o Mat2) Mat2 { return Mat2{m[0].Add(o[0]), m[1].Add(o[1])} }
func (m Mat2) Sub(o Mat2) Mat2 { return Mat2{m[0].Sub(o[0]), m[1].Sub(o[1])} }
func (m Mat2) Mul(o Mat2) Mat2 { return Mat2{m[0].Mul(o[0]), m[1].Mul(o[1])} }
func (m Mat2) Div(o Mat2) Mat2 { return Mat2{m[0].Div(o[0]), m[1].Div(o[1])} }

func (m Mat2) Neg() Mat2 { return Mat2{m[0].Neg(), m[1].Neg()} }

func (m *Mat2) AddAssign(o Mat2) *Mat2 {
	*m = m.Add(o)
	return m
}

func (m *Mat2) SubAssign(o Mat2) *Mat2 {
	*m = m.Sub(o)
	return m
}

func (m *Mat2) MulAssign(o Mat2) *Mat2 {
	*m = m.Mul(o)
	return m
}

func (m *Mat2) DivAssign(o Mat2) *Mat2 {
	*m = m.Div(o)
	return m
}

func (m Mat2) AddScalar(s float32) Mat2 { return Mat2{m[0].AddScalar(s), m[1].AddScalar(s)} }
func (m Mat2) SubScalar(s float32) Mat2 { return Mat2{m[0].SubScalar(s), m[1].SubScalar(s)} }
func (m Mat2) MulScalar(s float32) Mat2 { return Mat2{m[0].MulScalar(s), m[1].MulScalar(s)} }
func (m Mat2) DivScalar(s float32) Mat2 { return Mat2{m[0].DivScalar(s), m[1].DivScalar(s)} }

// ScalarSub returns s - m element-wise.
func (m Mat2) ScalarSub(s float32) Mat2 { return Mat2{m[0].ScalarSub(s), m[1].ScalarSub(s)} }

// ScalarDiv returns s / m element-wise.
func (m Mat2) ScalarDiv(s float32) Mat2 { return Mat2{m[0].ScalarDiv(s), m[1].ScalarDiv(s)} }

// ---------- Mat3 ----------

func (m Mat3) Add(o Mat3) Mat3 { return Mat3{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2])} }
func (m Mat3) Sub(o Mat3) Mat3 { return Mat3{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2])} }
func (m Mat3) Mul(o Mat3) Mat3 { return Mat3{m[0].Mul(o[0]), m[1].Mul(o[1]), m[2].Mul(o[2])} }
func (m Mat3) Div(o Mat3) Mat3 { return Mat3{m[0].Div(o[0]), m[1].Div(o[1]), m[2].Div(o[2])} }

func (m Mat3) Neg() Mat3 { return Mat3{m[0].Neg(), m[1].Neg(), m[2].Neg()} }

func (m *Mat3) AddAssign(o Mat3) *Mat3 {
	*m = m.Add(o)
	return m
}

func (m *Mat3) SubAssign(o Mat3) *Mat3 {
	*m = m.Sub(o)
	return m
}

func (m *Mat3) MulAssign(o Mat3) *Mat3 {
	*m = m.Mul(o)
	return m
}

func (m *Mat3) DivAssign(o Mat3) *Mat3 {
	*m = m.Div(o)
	return m
}

func (m Mat3) AddScalar(s float32) Mat3 {
	return Mat3{m[0].AddScalar(s), m[1].AddScalar(s), m[2].AddScalar(s)}
}
func (m Mat3) SubScalar(s float32) Mat3 {
	return Mat3{m[0].SubScalar(s), m[1].SubScalar(s), m[2].SubScalar(s)}
}
func (m Mat3) MulScalar(s float32) Mat3 {
	return Mat3{m[0].MulScalar(s), m[1].MulScalar(s), m[2].MulScalar(s)}
}
func (m Mat3) DivScalar(s float32) Mat3 {
	return Mat3{m[0].DivScalar(s), m[1].DivScalar(s), m[2].DivScalar(s)}
}

// ScalarSub returns s - m element-wise.
func (m Mat3) ScalarSub(s float32) Mat3 {
	return Mat3{m[0].ScalarSub(s), m[1].ScalarSub(s), m[2].ScalarSub(s)}
}

// ScalarDiv returns s / m element-wise.
func (m Mat3) ScalarDiv(s float32) Mat3 {
	return Mat3{m[0].ScalarDiv(s), m[1].ScalarDiv(s), m[2].ScalarDiv(s)}
}

// ---------- Mat4 ----------

func (m Mat4) Add(o Mat4) Mat4 {
	return Mat4{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2]), m[3].Add(o[3])}
}
func (m Mat4) Sub(o Mat4) Mat4 {
	return Mat4{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2]), m[3].Sub(o[3])}
}
func (m Mat4) Mul(o Mat4) Mat4 {
	return Mat4{m[0].Mul(o[0]), m[1].Mul(o[1]), m[2].Mul(o[2]), m[3].Mul(o[3])}
}
func (m Mat4) Div(o Mat4) Mat4 {
	return Mat4{m[0].Div(o[0]), m[1].Div(o[1]), m[2].Div(o[2]), m[3].Div(o[3])}
}

func (m Mat4) Neg() Mat4 { return Mat4{m[0].Neg(), m[1].Neg(), m[2].Neg(), m[3].Neg()} }

func (m *Mat4) AddAssign(o Mat4) *Mat4 {
	*m = m.Add(o)
	return m
}

func (m *Mat4) SubAssign(o Mat4) *Mat4 {
	*m = m.Sub(o)
	return m
}

func (m *Mat4) MulAssign(o Mat4) *Mat4 {
	*m = m.Mul(o)
	return m
}

func (m *Mat4) DivAssign(o Mat4) *Mat4 {
	*m = m.Div(o)
	return m
}

func (m Mat4) AddScalar(s float32) Mat4 {
	return Mat4{m[0].AddScalar(s), m[1].AddScalar(s), m[2].AddScalar(s), m[3].AddScalar(s)}
}
func (m Mat4) SubScalar(s float32) Mat4 {
	return Mat4{m[0].SubScalar(s), m[1].SubScalar(s), m[2].SubScalar(s), m[3].SubScalar(s)}
}
func (m Mat4) MulScalar(s float32) Mat4 {
	return Mat4{m[0].MulScalar(s), m[1].MulScalar(s), m[2].MulScalar(s), m[3].MulScalar(s)}
}
func (m Mat4) DivScalar(s float32) Mat4 {
	return Mat4{m[0].DivScalar(s), m[1].DivScalar(s), m[2].DivScalar(s), m[3].DivScalar(s)}
}

// ScalarSub returns s - m element-wise.
func (m Mat4) ScalarSub(s float32) Mat4 {
	return Mat4{m[0].ScalarSub(s), m[1].ScalarSub(s), m[2].ScalarSub(s), m[3].ScalarSub(s)}
}

// ScalarDiv returns s / m element-wise.
func (m Mat4) ScalarDiv(s float32) Mat4 {
	return Mat4{m[0].ScalarDiv(s), m[1].ScalarDiv(s), m[2].ScalarDiv(s), m[3].ScalarDiv(s)}
}
