// SPDX-License-Identifier: MIT

package dense

import "math"

const (
	zeroSum  = 0.0
	unitDiag = 1.0
)

// Condition returns the 1-norm condition number κ₁(A) = ‖A‖₁·‖A⁻¹‖₁,
// or +Inf when A has no inverse. a must be the matrix that was factorized.
func Condition(a *Dense, inv *Dense) float64 {
	if inv == nil {
		return math.Inf(1)
	}

	return norm1(a) * norm1(inv)
}

// LU is a packed LU factorization with partial pivoting: P·A = L·U.
// L is unit lower triangular (its unit diagonal is implicit) and shares
// storage with U in lu.
type LU struct {
	lu   *Dense
	piv  []int   // piv[i] is the source row of row i in P·A
	sign float64 // ±1, parity of the row permutation
	tol  float64 // zero-pivot threshold
}

// Factorize computes the LU decomposition of a with partial pivoting.
// MAIN DESCRIPTION:
//   - Doolittle elimination on a copy of a, choosing the largest |a[i][k]|
//     in column k as pivot.
//
// Implementation:
//   - Stage 1: clone a, seed the identity permutation.
//   - Stage 2: for each column k pick pivot row p >= k and swap rows.
//   - Stage 3: if |pivot| > tol store multipliers below the diagonal and
//     update the trailing block; otherwise leave the column untouched.
//
// Errors:
//   - ErrNilMatrix (tagged "LU") for a nil or empty input.
//
// Behavior highlights:
//   - Never fails on singular input: a zero pivot is recorded in U, so Det
//     returns 0 and Inverse returns ErrSingular.
//   - NaN entries propagate; a NaN pivot counts as singular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(a *Dense, tol float64) (*LU, error) {
	if a == nil || a.n == 0 {
		return nil, denseErrorf(opLU, ErrNilMatrix)
	}
	n := a.n
	lu := a.Clone()
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p   int
		maxAbs, v, l float64
		pivot        float64
		baseK, baseI int
	)
	for k = 0; k < n; k++ {
		p, maxAbs = k, math.Abs(lu.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(lu.data[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if p != k {
			swapRows(lu, p, k)
			piv[p], piv[k] = piv[k], piv[p]
			sign = -sign
		}

		baseK = k * n
		pivot = lu.data[baseK+k]
		if !(math.Abs(pivot) > tol) {
			continue
		}
		for i = k + 1; i < n; i++ {
			baseI = i * n
			l = lu.data[baseI+k] / pivot
			lu.data[baseI+k] = l
			for j = k + 1; j < n; j++ {
				lu.data[baseI+j] -= l * lu.data[baseK+j]
			}
		}
	}

	return &LU{lu: lu, piv: piv, sign: sign, tol: tol}, nil
}

// Det returns det(A) = sign · Π U[i][i].
func (f *LU) Det() float64 {
	n := f.lu.n
	d := f.sign
	for i := 0; i < n; i++ {
		d *= f.lu.data[i*n+i]
	}

	return d
}

// Singular reports whether any pivot is within tolerance of zero (or NaN).
func (f *LU) Singular() bool {
	n := f.lu.n
	for i := 0; i < n; i++ {
		if !(math.Abs(f.lu.data[i*n+i]) > f.tol) {
			return true
		}
	}

	return false
}

// Inverse solves A·X = I column by column.
// MAIN DESCRIPTION:
//   - For every basis vector e_col: forward substitution L·y = P·e_col,
//     then back substitution U·x = y; x becomes column col of the inverse.
//
// Errors:
//   - ErrSingular if any pivot is within tolerance of zero.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (f *LU) Inverse() (*Dense, error) {
	if f.Singular() {
		return nil, denseErrorf(opInverse, ErrSingular)
	}
	n := f.lu.n
	lu := f.lu.data
	inv := &Dense{n: n, data: make([]float64, n*n)}

	var (
		col, i, k int
		sum       float64
		base      int
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col
		for i = 0; i < n; i++ {
			sum = zeroSum
			base = i * n
			for k = 0; k < i; k++ {
				sum += lu[base+k] * y[k]
			}
			if f.piv[i] == col {
				y[i] = unitDiag - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = zeroSum
			base = i * n
			for k = i + 1; k < n; k++ {
				sum += lu[base+k] * x[k]
			}
			x[i] = (y[i] - sum) / lu[base+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

func swapRows(d *Dense, a, b int) {
	n := d.n
	ra := d.data[a*n : a*n+n]
	rb := d.data[b*n : b*n+n]
	for j := 0; j < n; j++ {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
