// SPDX-License-Identifier: MIT

package mat

// compareFlat orders a and b lexicographically. ok is false when the first
// differing pair is unordered (a NaN is involved).
func compareFlat(a, b []float32) (c int, ok bool) {
	for i := range a {
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

// Compare orders matrices lexicographically in column-major element order.
func (m Mat2) Compare(o Mat2) (int, bool) {
	a, b := m.Array(), o.Array()
	return compareFlat(a[:], b[:])
}

func (m Mat3) Compare(o Mat3) (int, bool) {
	a, b := m.Array(), o.Array()
	return compareFlat(a[:], b[:])
}

func (m Mat4) Compare(o Mat4) (int, bool) {
	a, b := m.Array(), o.Array()
	return compareFlat(a[:], b[:])
}

// Equal is exact element equality; any NaN makes it false.
func (m Mat2) Equal(o Mat2) bool { return m == o }
func (m Mat3) Equal(o Mat3) bool { return m == o }
func (m Mat4) Equal(o Mat4) bool { return m == o }

func (m Mat2) Less(o Mat2) bool {
	c, ok := m.Compare(o)
	return ok && c < 0
}

func (m Mat3) Less(o Mat3) bool {
	c, ok := m.Compare(o)
	return ok && c < 0
}

func (m Mat4) Less(o Mat4) bool {
	c, ok := m.Compare(o)
	return ok && c < 0
}
