// SPDX-License-Identifier: MIT
package dense_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/dense"
)

// mulRowMajor returns a·b for n×n row-major buffers.
func mulRowMajor(n int, a, b []float64) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s float64
			for k := 0; k < n; k++ {
				s += a[i*n+k] * b[k*n+j]
			}
			out[i*n+j] = s
		}
	}
	return out
}

// unpack splits packed L\U storage into unit-lower L and upper U.
func unpack(n int, packed []float64) (l, u []float64) {
	l = make([]float64, n*n)
	u = make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case j < i:
				l[i*n+j] = packed[i*n+j]
			case j == i:
				l[i*n+j] = 1
				u[i*n+j] = packed[i*n+j]
			default:
				u[i*n+j] = packed[i*n+j]
			}
		}
	}
	return l, u
}

func factorize(t *testing.T, n int, a []float64, tol float64) *dense.LU {
	t.Helper()
	d, err := dense.FromData(n, a)
	require.NoError(t, err)
	f, err := dense.Factorize(d, tol)
	require.NoError(t, err)
	return f
}

func TestFactorize_Reconstructs(t *testing.T) {
	// a[0][0] == 0 forces a row swap.
	a := []float64{
		0, 2, 1,
		1, 1, 0,
		3, 0, 1,
	}
	f := factorize(t, 3, a, 0)

	packed, piv := f.Packed()
	l, u := unpack(3, packed)
	lu := mulRowMajor(3, l, u)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, a[piv[i]*3+j], lu[i*3+j], 1e-12, "P·A != L·U at (%d,%d)", i, j)
		}
	}
	assert.InDelta(t, -5.0, f.Det(), 1e-12)
	assert.False(t, f.Singular())
}

func TestFactorize_NilMatrix(t *testing.T) {
	_, err := dense.Factorize(nil, 0)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
	assert.Contains(t, err.Error(), "LU")
}

func TestFactorize_Singular(t *testing.T) {
	f := factorize(t, 2, []float64{1, 2, 2, 4}, 0)
	assert.True(t, f.Singular())
	assert.Equal(t, 0.0, f.Det())

	_, err := f.Inverse()
	require.ErrorIs(t, err, dense.ErrSingular)
}

func TestFactorize_PivotTolerance(t *testing.T) {
	a := []float64{1e-9, 0, 0, 1e-9}
	assert.False(t, factorize(t, 2, a, 0).Singular())
	assert.True(t, factorize(t, 2, a, 1e-6).Singular())
}

func TestCondition(t *testing.T) {
	// κ₁ of a diagonal matrix is max|d|/min|d| and does not depend on scale.
	a := []float64{4, 0, 0, 0.5}
	d, err := dense.FromData(2, a)
	require.NoError(t, err)
	inv, err := factorize(t, 2, a, 0).Inverse()
	require.NoError(t, err)
	assert.InDelta(t, 8.0, dense.Condition(d, inv), 1e-12)

	assert.True(t, math.IsInf(dense.Condition(d, nil), 1))
}
