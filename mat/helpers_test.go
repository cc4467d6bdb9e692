// SPDX-License-Identifier: MIT
package mat_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/glmath/mat"
)

const testCount = 1000

func randMat4(r *rand.Rand) mat.Mat4 {
	var a [16]float32
	for i := range a {
		a[i] = r.Float32()*200 - 100
	}
	return mat.FromArray4(a)
}

func randMat3(r *rand.Rand) mat.Mat3 {
	var a [9]float32
	for i := range a {
		a[i] = r.Float32()*20 - 10
	}
	return mat.FromArray3(a)
}

// bits flattens m to IEEE bit patterns so -0 and NaN payloads compare exactly.
func bits(m mat.Mat4) (out [16]uint32) {
	a := m.Array()
	for i, v := range a {
		out[i] = math.Float32bits(v)
	}
	return out
}

func allNaN(a []float32) bool {
	for _, v := range a {
		if !math.IsNaN(float64(v)) {
			return false
		}
	}
	return true
}
