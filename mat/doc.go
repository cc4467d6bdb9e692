// SPDX-License-Identifier: MIT

// Package mat provides the column-major float32 matrix types Mat2, Mat3 and
// Mat4.
//
// A matrix is an array of column vectors: m[c] is column c and m[c][r] is
// the element in row r of that column. The zero value is the zero matrix.
// Identity and scaled-identity matrices come from IdentityN and DiagN;
// DiagN(s) is s on the diagonal and zero elsewhere, unlike vec.SplatN.
//
// Operators:
//
//	Add, Sub, Mul, Div     element-wise (Mul is the Hadamard product)
//	MatMul                 matrix product (Mat4 dispatches to a Kernel)
//	MulVec                 matrix × column vector
//	Det, Inverse           via a dense.Solver; singular Inverse is all NaN
//
// The three 4×4 product kernels (MulUnrolled, MulLoop, MulTransposed) give
// bit-identical results; the one used by Mat4.MatMul is chosen once at start
// from the GLMATH_MUL_KERNEL environment variable.
package mat
