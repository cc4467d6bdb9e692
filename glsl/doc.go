// SPDX-License-Identifier: MIT

// Package glsl provides the GLSL built-in functions over the vec and mat
// types: geometric functions (Length, Dot, Cross, Normalize, Reflect,
// Refract, ...), matrix functions (MatrixCompMult, OuterProduct,
// Transpose, Determinant, Inverse), angle conversion and the LookAt view
// transform.
//
// Functions never return errors. Degenerate input produces IEEE results:
// normalizing the zero vector yields NaN components, and Refract returns
// the zero vector on total internal reflection.
package glsl
