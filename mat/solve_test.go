// SPDX-License-Identifier: MIT
package mat_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/glmath/dense"
	"github.com/katalvlaran/glmath/mat"
	"github.com/katalvlaran/glmath/vec"
)

var nan = float32(math.NaN())

func solvers() map[string]dense.Solver {
	return map[string]dense.Solver{
		"gonum": mat.NewSolver(dense.WithBackend(dense.BackendGonum)),
		"lu":    mat.NewSolver(dense.WithBackend(dense.BackendLU)),
	}
}

func TestDetIdentity(t *testing.T) {
	assert.Equal(t, float32(1), mat.Identity2().Det())
	assert.Equal(t, float32(1), mat.Identity3().Det())
	assert.Equal(t, float32(1), mat.Identity4().Det())
	for name, s := range solvers() {
		assert.Equal(t, float32(1), mat.Identity4().DetWith(s), name)
		assert.Equal(t, float32(1), mat.Identity3().DetWith(s), name)
		assert.Equal(t, float32(1), mat.Identity2().DetWith(s), name)
	}
}

func TestDetKnown(t *testing.T) {
	m := mat.Mat2{{1, 3}, {2, 4}} // rows [1 2; 3 4]
	assert.InDelta(t, -2, m.Det(), 1e-6)
	assert.InDelta(t, 16, mat.Diag4(2).Det(), 1e-5)
	assert.InDelta(t, 27, mat.Diag3(3).Det(), 1e-5)
}

func TestInverse(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for name, s := range solvers() {
		for n := 0; n < 100; n++ {
			m := randMat4(r).Add(mat.Diag4(400))
			got := m.MatMul(m.InverseWith(s)).Array()
			want := mat.Identity4().Array()
			for i := range got {
				assert.InDelta(t, want[i], got[i], 1e-4, "%s sample %d", name, n)
			}
		}
	}

	m2 := mat.Mat2{{4, 2}, {7, 6}} // rows [4 7; 2 6], det 10
	want := mat.Mat2{{0.6, -0.2}, {-0.7, 0.4}}
	got := m2.Inverse()
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			assert.InDelta(t, want[c][r], got[c][r], 1e-6)
		}
	}

	inv3, want3 := mat.Diag3(4).Inverse().Array(), mat.Diag3(0.25).Array()
	assert.InDeltaSlice(t, want3[:], inv3[:], 1e-7)
}

func TestInverseSingularIsNaN(t *testing.T) {
	s4 := mat.New4(vec.New4(1, 2, 3, 4), vec.New4(2, 4, 6, 8), vec.New4(0, 1, 0, 1), vec.New4(5, 0, 0, 1))
	s3 := mat.New3(vec.New3(1, 2, 3), vec.New3(2, 4, 6), vec.New3(0, 1, 1))
	s2 := mat.Mat2{{1, 2}, {2, 4}}
	// Rank-deficient but rounding leaves tiny nonzero pivots in float64.
	seq3 := mat.New3(vec.New3(1, 2, 3), vec.New3(4, 5, 6), vec.New3(7, 8, 9))
	seq4 := mat.New4(vec.New4(1, 2, 3, 4), vec.New4(5, 6, 7, 8), vec.New4(9, 10, 11, 12), vec.New4(13, 14, 15, 16))

	for name, s := range solvers() {
		a4, a3, a2 := s4.InverseWith(s).Array(), s3.InverseWith(s).Array(), s2.InverseWith(s).Array()
		assert.True(t, allNaN(a4[:]), name)
		assert.True(t, allNaN(a3[:]), name)
		assert.True(t, allNaN(a2[:]), name)

		q3, q4 := seq3.InverseWith(s).Array(), seq4.InverseWith(s).Array()
		assert.True(t, allNaN(q3[:]), "%s 1..9", name)
		assert.True(t, allNaN(q4[:]), "%s 1..16", name)
		assert.Equal(t, float32(0), seq3.DetWith(s), "%s 1..9", name)
		assert.Equal(t, float32(0), seq4.DetWith(s), "%s 1..16", name)
	}
	zero := mat.Mat4{}.Inverse().Array()
	assert.True(t, allNaN(zero[:]))
	assert.InDelta(t, 0, s4.Det(), 1e-4)

	q3, q4 := seq3.Inverse().Array(), seq4.Inverse().Array()
	assert.True(t, allNaN(q3[:]))
	assert.True(t, allNaN(q4[:]))
	assert.Equal(t, float32(0), seq3.Det())
	assert.Equal(t, float32(0), seq4.Det())
}

func TestInverseConditionScaleInvariant(t *testing.T) {
	// Tiny but perfectly conditioned: not singular.
	m := mat.Diag4(1e-10)
	got := m.Inverse().Array()
	want := mat.Diag4(1e10).Array()
	for i := range got {
		assert.InDelta(t, want[i], got[i], 1e4)
	}

}

func TestSolverFailureIsNaN(t *testing.T) {
	strict := dense.New(dense.WithValidateNaNInf())
	m := mat.Identity3()
	m[1][1] = float32(math.Inf(1))

	assert.True(t, math.IsNaN(float64(m.DetWith(strict))))
	inv := m.InverseWith(strict).Array()
	assert.True(t, allNaN(inv[:]))
}
