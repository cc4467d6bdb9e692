// SPDX-License-Identifier: MIT

package mat

import "github.com/katalvlaran/glmath/scalar"

// AddS returns m + s element-wise for any scalar kind.
func AddS[M Matrix[M], T scalar.Scalar](m M, s T) M { return m.AddScalar(scalar.F32(s)) }

// SubS returns m - s element-wise.
func SubS[M Matrix[M], T scalar.Scalar](m M, s T) M { return m.SubScalar(scalar.F32(s)) }

// MulS returns m · s element-wise.
func MulS[M Matrix[M], T scalar.Scalar](m M, s T) M { return m.MulScalar(scalar.F32(s)) }

// DivS returns m / s element-wise.
func DivS[M Matrix[M], T scalar.Scalar](m M, s T) M { return m.DivScalar(scalar.F32(s)) }

func SAdd[T scalar.Scalar, M Matrix[M]](s T, m M) M { return AddS(m, s) }
func SMul[T scalar.Scalar, M Matrix[M]](s T, m M) M { return MulS(m, s) }

// SSub returns s - m element-wise.
func SSub[T scalar.Scalar, M Matrix[M]](s T, m M) M { return m.ScalarSub(scalar.F32(s)) }

// SDiv returns s / m element-wise.
func SDiv[T scalar.Scalar, M Matrix[M]](s T, m M) M { return m.ScalarDiv(scalar.F32(s)) }
