// SPDX-License-Identifier: MIT

// Package dense is the square dense-matrix solver behind determinant and
// inverse in the fixed-size matrix types.
//
// What & Why:
//
//	The fixed-size types in package mat never factorize anything
//	themselves; they hand an n×n float64 buffer to a Solver and get back a
//	determinant or an inverse buffer. Two backends implement Solver:
//
//	  - BackendGonum (default): gonum.org/v1/gonum/mat (LAPACK-style LU
//	    with partial pivoting and condition estimation).
//	  - BackendLU: a self-contained Doolittle LU with partial pivoting on a
//	    row-major Dense buffer; no external numeric dependency.
//
// Layout:
//
//	Callers may pass the buffer row-major or column-major as long as they
//	read the result back the same way: det(Aᵀ) = det(A) and
//	inv(Aᵀ) = inv(A)ᵀ. The buffer is never mutated.
//
// Errors:
//
//	All failures are package sentinels (ErrSingular, ErrInvalidDimensions,
//	ErrDimensionMismatch, ErrNaNInf, ...) wrapped with an operation tag;
//	match them with errors.Is.
//
// Complexity:
//
//	Det and Inverse are O(n³) time and O(n²) space.
package dense
