// SPDX-License-Identifier: MIT

// Package vec provides fixed-size float32 vectors with shading-language
// semantics: Vec2, Vec3 and Vec4.
//
// What & Why:
//
//	Each type is a plain array ([N]float32), so values are copied on
//	assignment, compared exactly with ==, laid out contiguously and never
//	allocate. Components 0..N-1 are named x, y, z, w.
//
// Construction:
//
//	The shading-language constructor overloads are expressed as a closed set
//	of typed functions. The name spells the argument shape (S = scalar,
//	V2/V3 = smaller vector), so an argument list whose component count does
//	not add up to N has no function to call:
//
//	  vec.New4(1, 2, 3, 4)                 // vec4(1, 2, 3, 4)
//	  vec.New4V2SS(vec.New2(1, 2), 3, 4)   // vec4(vec2(1, 2), 3, 4)
//	  vec.New4V2V2(a, b)                   // vec4(a, b)
//	  vec.Splat3(5)                        // vec3(5) == (5, 5, 5)
//
//	Scalars may be any member of scalar.Scalar; each one is narrowed to
//	float32 independently.
//
// Operators:
//
//	Add/Sub/Mul/Div are component-wise and return new values; the *Assign
//	forms mutate the receiver. Scalar broadcasting is available through
//	the float32 methods (AddScalar, ScalarSub, ...) and through the generic
//	helpers AddS/SSub/... that accept any scalar kind.
//	Division by zero follows IEEE-754 and never panics.
package vec
