// SPDX-License-Identifier: MIT

// Package glmath is a shading-language style float32 vector and matrix
// kernel for 2, 3 and 4 dimensions.
//
// What is glmath?
//
//	Small fixed-size value types with the semantics of GLSL:
//		• Vectors: Vec2, Vec3, Vec4 with component-wise operators
//		• Matrices: Mat2, Mat3, Mat4, column-major, with product, transpose,
//		  determinant and inverse
//		• Constructors: one typed function per GLSL constructor overload
//		• Built-ins: length, dot, cross, normalize, reflect, refract,
//		  faceforward, outerProduct, matrixCompMult, radians/degrees
//		• View transform: LookAt
//		• Three bit-identical 4×4 product kernels, selectable at start-up
//
// Layout:
//
//	scalar/        the closed set of scalar kinds and the float32 narrowing
//	vec/           Vec2/Vec3/Vec4, constructors, operators, ordering
//	mat/           Mat2/Mat3/Mat4, operators, product kernels, Det/Inverse
//	glsl/          GLSL built-in functions and LookAt
//	dense/         n×n determinant/inverse solver (gonum or native LU)
//	cmd/glkernel/  verify and benchmark the product kernels
//	examples/      runnable scenario programs
//
// Quick example:
//
//	view := glsl.LookAt(vec.New3(0, 0, 5), vec.Vec3{}, vec.New3(0, 1, 0))
//	p := view.MulVec(vec.New4(0, 0, 0, 1)) // vec4(0, 0, -5, 1)
//
// Values never allocate and numeric functions never return errors:
// degenerate input follows IEEE-754 (NaN/Inf), a singular Inverse is the
// all-NaN matrix and Refract returns the zero vector on total internal
// reflection.
//
//	go get github.com/katalvlaran/glmath
package glmath
