// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"
	"os"
	"strings"
)

// KernelEnv names the environment variable that selects the Mat4 product
// kernel at start-up: "unrolled", "loop" or "transposed". Unset or
// unrecognised values select KernelUnrolled.
const KernelEnv = "GLMATH_MUL_KERNEL"

// Kernel identifies one of the interchangeable 4×4 product implementations.
// All kernels evaluate C[col][row] = Σ_i A[i][row]·B[col][i] with the same
// per-cell operation order, so their results are bit-identical.
type Kernel uint8

const (
	KernelUnrolled Kernel = iota
	KernelLoop
	KernelTransposed
)

var kernelNames = [...]string{
	KernelUnrolled:   "unrolled",
	KernelLoop:       "loop",
	KernelTransposed: "transposed",
}

var defaultKernel = kernelFromEnv()

// DefaultKernel returns the kernel used by Mat4.MatMul.
func DefaultKernel() Kernel { return defaultKernel }

// Kernels lists every kernel in declaration order.
func Kernels() []Kernel {
	return []Kernel{KernelUnrolled, KernelLoop, KernelTransposed}
}

func (k Kernel) String() string {
	if int(k) >= len(kernelNames) {
		return fmt.Sprintf("Kernel(%d)", uint8(k))
	}
	return kernelNames[k]
}

// ParseKernel maps a case-insensitive kernel name to a Kernel.
func ParseKernel(s string) (Kernel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kernelNames {
		if n == name {
			return Kernel(k), nil
		}
	}
	return KernelUnrolled, fmt.Errorf("%w: %q", ErrUnknownKernel, s)
}

// Mul returns a × b computed by k. Unknown kernels fall back to MulUnrolled.
func (k Kernel) Mul(a, b Mat4) Mat4 {
	switch k {
	case KernelLoop:
		return MulLoop(a, b)
	case KernelTransposed:
		return MulTransposed(a, b)
	default:
		return MulUnrolled(a, b)
	}
}

func kernelFromEnv() Kernel {
	v := os.Getenv(KernelEnv)
	if v == "" {
		return KernelUnrolled
	}
	k, err := ParseKernel(v)
	if err != nil {
		return KernelUnrolled
	}
	return k
}

// MulUnrolled writes out all 16 cells explicitly.
func MulUnrolled(a, b Mat4) Mat4 {
	return Mat4{
		{
			float32(a[0][0]*b[0][0]) + float32(a[1][0]*b[0][1]) + float32(a[2][0]*b[0][2]) + float32(a[3][0]*b[0][3]),
			float32(a[0][1]*b[0][0]) + float32(a[1][1]*b[0][1]) + float32(a[2][1]*b[0][2]) + float32(a[3][1]*b[0][3]),
			float32(a[0][2]*b[0][0]) + float32(a[1][2]*b[0][1]) + float32(a[2][2]*b[0][2]) + float32(a[3][2]*b[0][3]),
			float32(a[0][3]*b[0][0]) + float32(a[1][3]*b[0][1]) + float32(a[2][3]*b[0][2]) + float32(a[3][3]*b[0][3]),
		},
		{
			float32(a[0][0]*b[1][0]) + float32(a[1][0]*b[1][1]) + float32(a[2][0]*b[1][2]) + float32(a[3][0]*b[1][3]),
			float32(a[0][1]*b[1][0]) + float32(a[1][1]*b[1][1]) + float32(a[2][1]*b[1][2]) + float32(a[3][1]*b[1][3]),
			float32(a[0][2]*b[1][0]) + float32(a[1][2]*b[1][1]) + float32(a[2][2]*b[1][2]) + float32(a[3][2]*b[1][3]),
			float32(a[0][3]*b[1][0]) + float32(a[1][3]*b[1][1]) + float32(a[2][3]*b[1][2]) + float32(a[3][3]*b[1][3]),
		},
		{
			float32(a[0][0]*b[2][0]) + float32(a[1][0]*b[2][1]) + float32(a[2][0]*b[2][2]) + float32(a[3][0]*b[2][3]),
			float32(a[0][1]*b[2][0]) + float32(a[1][1]*b[2][1]) + float32(a[2][1]*b[2][2]) + float32(a[3][1]*b[2][3]),
			float32(a[0][2]*b[2][0]) + float32(a[1][2]*b[2][1]) + float32(a[2][2]*b[2][2]) + float32(a[3][2]*b[2][3]),
			float32(a[0][3]*b[2][0]) + float32(a[1][3]*b[2][1]) + float32(a[2][3]*b[2][2]) + float32(a[3][3]*b[2][3]),
		},
		{
			float32(a[0][0]*b[3][0]) + float32(a[1][0]*b[3][1]) + float32(a[2][0]*b[3][2]) + float32(a[3][0]*b[3][3]),
			float32(a[0][1]*b[3][0]) + float32(a[1][1]*b[3][1]) + float32(a[2][1]*b[3][2]) + float32(a[3][1]*b[3][3]),
			float32(a[0][2]*b[3][0]) + float32(a[1][2]*b[3][1]) + float32(a[2][2]*b[3][2]) + float32(a[3][2]*b[3][3]),
			float32(a[0][3]*b[3][0]) + float32(a[1][3]*b[3][1]) + float32(a[2][3]*b[3][2]) + float32(a[3][3]*b[3][3]),
		},
	}
}

// MulLoop iterates columns, then rows, then the inner dimension.
func MulLoop(a, b Mat4) (c Mat4) {
	var col, row, i int
	var sum float32
	for col = 0; col < 4; col++ {
		for row = 0; row < 4; row++ {
			sum = float32(a[0][row] * b[col][0])
			for i = 1; i < 4; i++ {
				sum += float32(a[i][row] * b[col][i])
			}
			c[col][row] = sum
		}
	}
	return c
}

// MulTransposed transposes b first so the inner loop reads both operands
// along their stored columns.
func MulTransposed(a, b Mat4) (c Mat4) {
	bt := b.Transpose()
	var col, row, i int
	var sum float32
	for row = 0; row < 4; row++ {
		for col = 0; col < 4; col++ {
			sum = float32(a[0][row] * bt[0][col])
			for i = 1; i < 4; i++ {
				sum += float32(a[i][row] * bt[i][col])
			}
			c[col][row] = sum
		}
	}
	return c
}
