// SPDX-License-Identifier: MIT

package glsl

import (
	"github.com/katalvlaran/glmath/mat"
	"github.com/katalvlaran/glmath/vec"
)

// LookAt builds a right-handed view matrix for a camera at eye looking at
// center. The camera looks down its local -Z axis.
//
// up only has to be non-parallel to the view direction; the returned basis
// uses cross(forward, right) as the true up vector. eye == center or an up
// parallel to the view direction produce NaN.
func LookAt(eye, center, up vec.Vec3) mat.Mat4 {
	f := Normalize(eye.Sub(center))
	r := Normalize(Cross(up, f))
	u := Cross(f, r)

	return mat.Mat4{
		{r[0], u[0], f[0], 0},
		{r[1], u[1], f[1], 0},
		{r[2], u[2], f[2], 0},
		{-Dot(eye, r), -Dot(eye, u), -Dot(eye, f), 1},
	}
}
