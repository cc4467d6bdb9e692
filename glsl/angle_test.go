// SPDX-License-Identifier: MIT
package glsl_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/glmath/glsl"
	"github.com/katalvlaran/glmath/vec"
)

func TestRadiansDegrees(t *testing.T) {
	assert.InDelta(t, math.Pi, glsl.Radians(180), 1e-6)
	assert.InDelta(t, 90, glsl.Degrees(math.Pi/2), 1e-4)
	assert.InDelta(t, 33, glsl.Degrees(glsl.Radians(33)), 1e-4)

	v := glsl.RadiansV(vec.New3(0, 90, 360))
	assert.InDeltaSlice(t, []float32{0, math.Pi / 2, 2 * math.Pi}, v[:], 1e-5)
	back := glsl.DegreesV(v)
	assert.InDeltaSlice(t, []float32{0, 90, 360}, back[:], 1e-4)
}
