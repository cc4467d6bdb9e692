// SPDX-License-Identifier: MIT
package vec_test

import (
	"math/rand"
)

// testCount is the number of random samples per property.
const testCount = 1000

// randArray fills an N-array with deterministic pseudo-random floats in [-100, 100).
func randArray2(rng *rand.Rand) [2]float32 { return [2]float32{rf(rng), rf(rng)} }
func randArray3(rng *rand.Rand) [3]float32 { return [3]float32{rf(rng), rf(rng), rf(rng)} }
func randArray4(rng *rand.Rand) [4]float32 {
	return [4]float32{rf(rng), rf(rng), rf(rng), rf(rng)}
}

func rf(rng *rand.Rand) float32 { return rng.Float32()*200 - 100 }
