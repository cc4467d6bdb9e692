// SPDX-License-Identifier: MIT

package mat

import (
	"math"

	"github.com/katalvlaran/glmath/dense"
	"github.com/katalvlaran/glmath/scalar"
	"github.com/katalvlaran/glmath/vec"
)

// Det and Inverse widen the column-major storage to float64 and hand it to
// a dense.Solver as is: det(Aᵀ) = det(A) and inv(Aᵀ) = inv(A)ᵀ, so the
// result comes back column-major too.

var nan32 = float32(math.NaN())

var defaultSolver = NewSolver()

// NewSolver returns a dense.Solver configured by opts that treats a matrix
// as singular once its condition number exceeds dense.Float32ConditionLimit.
// A later WithConditionLimit in opts overrides the limit.
func NewSolver(opts ...dense.Option) dense.Solver {
	return dense.New(append([]dense.Option{dense.WithConditionLimit(dense.Float32ConditionLimit)}, opts...)...)
}

// DefaultSolver returns the solver behind Det and Inverse: the default
// dense backend limited to float32 precision. Safe for concurrent use.
func DefaultSolver() dense.Solver { return defaultSolver }

// Det returns the determinant using DefaultSolver. A matrix that is
// singular at float32 precision has determinant 0.
func (m Mat2) Det() float32 { return m.DetWith(defaultSolver) }
func (m Mat3) Det() float32 { return m.DetWith(defaultSolver) }
func (m Mat4) Det() float32 { return m.DetWith(defaultSolver) }

// DetWith returns the determinant computed by s, or NaN if s fails.
func (m Mat2) DetWith(s dense.Solver) float32 {
	a := m.Array()
	return det(s, 2, a[:])
}

func (m Mat3) DetWith(s dense.Solver) float32 {
	a := m.Array()
	return det(s, 3, a[:])
}

func (m Mat4) DetWith(s dense.Solver) float32 {
	a := m.Array()
	return det(s, 4, a[:])
}

// Inverse returns m⁻¹ using DefaultSolver. A matrix that is singular at
// float32 precision yields the all-NaN matrix.
func (m Mat2) Inverse() Mat2 { return m.InverseWith(defaultSolver) }
func (m Mat3) Inverse() Mat3 { return m.InverseWith(defaultSolver) }
func (m Mat4) Inverse() Mat4 { return m.InverseWith(defaultSolver) }

// InverseWith returns m⁻¹ computed by s, or the all-NaN matrix if s fails.
func (m Mat2) InverseWith(s dense.Solver) Mat2 {
	a := m.Array()
	if !inverse(s, 2, a[:]) {
		return nanMat2()
	}
	return FromArray2(a)
}

func (m Mat3) InverseWith(s dense.Solver) Mat3 {
	a := m.Array()
	if !inverse(s, 3, a[:]) {
		return nanMat3()
	}
	return FromArray3(a)
}

func (m Mat4) InverseWith(s dense.Solver) Mat4 {
	a := m.Array()
	if !inverse(s, 4, a[:]) {
		return nanMat4()
	}
	return FromArray4(a)
}

func nanMat2() Mat2 { return Mat2{vec.Splat2(nan32), vec.Splat2(nan32)} }

func nanMat3() Mat3 {
	return Mat3{vec.Splat3(nan32), vec.Splat3(nan32), vec.Splat3(nan32)}
}

func nanMat4() Mat4 {
	c := vec.Splat4(nan32)
	return Mat4{c, c, c, c}
}

func widen(a []float32) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = scalar.F64(v)
	}
	return out
}

func det(s dense.Solver, n int, a []float32) float32 {
	d, err := s.Det(n, widen(a))
	if err != nil {
		return nan32
	}
	return float32(d)
}

// inverse overwrites a with its inverse and reports success.
func inverse(s dense.Solver, n int, a []float32) bool {
	inv, err := s.Inverse(n, widen(a))
	if err != nil {
		return false
	}
	for i, v := range inv {
		a[i] = float32(v)
	}
	return true
}
