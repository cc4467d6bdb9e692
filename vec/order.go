// SPDX-License-Identifier: MIT

package vec

// Equality is exact (no epsilon). Ordering is lexicographic over the
// components and partial: a pair containing NaN in the first differing
// position is unordered.

// compare walks a and b lexicographically.
// ok is false when the first non-equal pair is unordered (NaN).
func compare[V Vector](a, b V) (c int, ok bool) {
	for i := 0; i < len(a); i++ {
		switch {
		case a[i] < b[i]:
			return -1, true
		case a[i] > b[i]:
			return 1, true
		case a[i] != b[i]:
			return 0, false
		}
	}
	return 0, true
}

// Compare returns -1, 0 or +1 and ok=false when v and o are unordered.
func (v Vec2) Compare(o Vec2) (int, bool) { return compare(v, o) }

// Compare returns -1, 0 or +1 and ok=false when v and o are unordered.
func (v Vec3) Compare(o Vec3) (int, bool) { return compare(v, o) }

// Compare returns -1, 0 or +1 and ok=false when v and o are unordered.
func (v Vec4) Compare(o Vec4) (int, bool) { return compare(v, o) }

func (v Vec2) Equal(o Vec2) bool { return v == o }
func (v Vec3) Equal(o Vec3) bool { return v == o }
func (v Vec4) Equal(o Vec4) bool { return v == o }

// Less reports whether v orders strictly before o.
func (v Vec2) Less(o Vec2) bool {
	c, ok := compare(v, o)
	return ok && c < 0
}

// Less reports whether v orders strictly before o.
func (v Vec3) Less(o Vec3) bool {
	c, ok := compare(v, o)
	return ok && c < 0
}

// Less reports whether v orders strictly before o.
func (v Vec4) Less(o Vec4) bool {
	c, ok := compare(v, o)
	return ok && c < 0
}
