// SPDX-License-Identifier: MIT

package glsl

import (
	"math"

	"github.com/katalvlaran/glmath/vec"
)

const (
	degToRad = float32(math.Pi / 180)
	radToDeg = float32(180 / math.Pi)
)

// Radians converts degrees to radians.
func Radians(deg float32) float32 { return deg * degToRad }

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 { return rad * radToDeg }

// RadiansV converts every component of v from degrees to radians.
func RadiansV[V vec.Vector](v V) V { return vec.MulS(v, degToRad) }

// DegreesV converts every component of v from radians to degrees.
func DegreesV[V vec.Vector](v V) V { return vec.MulS(v, radToDeg) }
