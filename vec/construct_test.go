// SPDX-License-Identifier: MIT
package vec_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/vec"
)

func TestSplat(t *testing.T) {
	require.Equal(t, vec.Vec2{5, 5}, vec.Splat2(5))
	require.Equal(t, vec.Vec3{5, 5, 5}, vec.Splat3(5))
	require.Equal(t, vec.Vec4{5, 5, 5, 5}, vec.Splat4(5))
	require.Equal(t, vec.Vec3{-1.5, -1.5, -1.5}, vec.Splat3(-1.5))
}

func TestZeroValueIsNoArgConstructor(t *testing.T) {
	require.Equal(t, vec.Splat2(0), vec.Vec2{})
	require.Equal(t, vec.Splat3(0), vec.Vec3{})
	require.Equal(t, vec.Splat4(0), vec.Vec4{})
}

func TestMixedScalarKinds(t *testing.T) {
	got := vec.New4(int32(1), uint64(2), float64(3.5), float32(4.25))
	require.Equal(t, vec.Vec4{1, 2, 3.5, 4.25}, got)

	require.Equal(t, vec.Vec2{-7, 9}, vec.New2(int64(-7), uint32(9)))
	require.Equal(t, vec.Vec3{1, 2, 3}, vec.New3(uint(1), 2, int32(3)))
}

func TestConstructionShapes(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < testCount; i++ {
		a := randArray4(rng)
		x, y, z, w := a[0], a[1], a[2], a[3]

		// Vec3 shapes
		want3 := vec.Vec3{x, y, z}
		require.Equal(t, want3, vec.New3(x, y, z))
		require.Equal(t, want3, vec.New3V2S(vec.New2(x, y), z))
		require.Equal(t, want3, vec.New3SV2(x, vec.New2(y, z)))

		// Vec4 shapes
		want4 := vec.Vec4{x, y, z, w}
		require.Equal(t, want4, vec.New4(x, y, z, w))
		require.Equal(t, want4, vec.New4V2SS(vec.New2(x, y), z, w))
		require.Equal(t, want4, vec.New4SV2S(x, vec.New2(y, z), w))
		require.Equal(t, want4, vec.New4SSV2(x, y, vec.New2(z, w)))
		require.Equal(t, want4, vec.New4V2V2(vec.New2(x, y), vec.New2(z, w)))
		require.Equal(t, want4, vec.New4V3S(vec.New3(x, y, z), w))
		require.Equal(t, want4, vec.New4SV3(x, vec.New3(y, z, w)))
	}
}

func TestConstructionWithSplatParts(t *testing.T) {
	// vec3(vec2(a), b) == (a, a, b)
	require.Equal(t, vec.Vec3{1, 1, 2}, vec.New3V2S(vec.Splat2(1), 2))
	// vec4(a, vec3(b)) == (a, b, b, b)
	require.Equal(t, vec.Vec4{1, 2, 2, 2}, vec.New4SV3(1, vec.Splat3(2)))
	// vec4(vec2(a), vec2(b)) == (a, a, b, b)
	require.Equal(t, vec.Vec4{3, 3, 4, 4}, vec.New4V2V2(vec.Splat2(3), vec.Splat2(4)))
}
