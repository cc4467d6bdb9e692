// SPDX-License-Identifier: MIT
package mat_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/glmath/mat"
)

type KernelSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *KernelSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(42))
}

// naive is the textbook product, used only as a numeric reference.
func naive(a, b mat.Mat4) (c mat.Mat4) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for i := 0; i < 4; i++ {
				sum += float64(a[i][row]) * float64(b[col][i])
			}
			c[col][row] = float32(sum)
		}
	}
	return c
}

func (s *KernelSuite) TestKernelsAgreeBitwise() {
	for n := 0; n < testCount; n++ {
		a, b := randMat4(s.rng), randMat4(s.rng)
		want := bits(mat.MulUnrolled(a, b))
		s.Require().Equal(want, bits(mat.MulLoop(a, b)), "loop pair %d", n)
		s.Require().Equal(want, bits(mat.MulTransposed(a, b)), "transposed pair %d", n)
	}
}

func (s *KernelSuite) TestKernelsMatchReference() {
	for n := 0; n < 100; n++ {
		a, b := randMat4(s.rng), randMat4(s.rng)
		got, want := mat.MulUnrolled(a, b).Array(), naive(a, b).Array()
		for i := range got {
			s.InDelta(want[i], got[i], 1e-1, "pair %d cell %d", n, i)
		}
	}
}

func (s *KernelSuite) TestIdentityIsNeutral() {
	id := mat.Identity4()
	for _, k := range mat.Kernels() {
		a := randMat4(s.rng)
		s.Equal(a, k.Mul(a, id), k.String())
		s.Equal(a, k.Mul(id, a), k.String())
	}
}

func (s *KernelSuite) TestColumnMajorOrder() {
	// Translation by (1,2,3) composed with scale 2: T·S applied to the origin
	// must land on the translation.
	t := mat.Identity4()
	t[3] = [4]float32{1, 2, 3, 1}
	sc := mat.Diag4(2)
	sc[3][3] = 1

	for _, k := range mat.Kernels() {
		m := k.Mul(t, sc)
		s.Equal([4]float32{1, 2, 3, 1}, [4]float32(m.MulVec([4]float32{0, 0, 0, 1})), k.String())
		s.Equal([4]float32{3, 2, 3, 1}, [4]float32(m.MulVec([4]float32{1, 0, 0, 1})), k.String())
	}
}

func (s *KernelSuite) TestMatMulUsesDefault() {
	a, b := randMat4(s.rng), randMat4(s.rng)
	s.Equal(bits(mat.DefaultKernel().Mul(a, b)), bits(a.MatMul(b)))
}

func (s *KernelSuite) TestParseKernel() {
	for _, k := range mat.Kernels() {
		got, err := mat.ParseKernel(k.String())
		s.Require().NoError(err)
		s.Equal(k, got)
	}
	got, err := mat.ParseKernel("  LOOP ")
	s.Require().NoError(err)
	s.Equal(mat.KernelLoop, got)

	_, err = mat.ParseKernel("simd")
	s.ErrorIs(err, mat.ErrUnknownKernel)
	s.Equal("Kernel(7)", mat.Kernel(7).String())
	s.Equal(mat.MulUnrolled(mat.Identity4(), mat.Diag4(3)), mat.Kernel(7).Mul(mat.Identity4(), mat.Diag4(3)))
}

func TestKernelSuite(t *testing.T) {
	suite.Run(t, new(KernelSuite))
}

var sink mat.Mat4

func benchmarkKernel(b *testing.B, k mat.Kernel) {
	r := rand.New(rand.NewSource(1))
	x, y := randMat4(r), randMat4(r)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = k.Mul(x, y)
	}
}

func BenchmarkMulUnrolled(b *testing.B)   { benchmarkKernel(b, mat.KernelUnrolled) }
func BenchmarkMulLoop(b *testing.B)       { benchmarkKernel(b, mat.KernelLoop) }
func BenchmarkMulTransposed(b *testing.B) { benchmarkKernel(b, mat.KernelTransposed) }
