package branchless

// IsPow2 reports whether v has at most one set bit.
//
// The bit trick also reports true for v == 0, which is not mathematically
// a power of two; callers that care about the distinction must
// special-case zero.
func IsPow2[T Unsigned](v T) bool {
	return (v-1)&v == 0
}

// RoundupPow2 rounds v up to the next power of two, returning v unchanged
// when it is already one. Rounding past the top of the width wraps to 0.
//
// The smear covers 32 bits; inputs above 1<<32 are outside the supported
// domain.
func RoundupPow2[T Unsigned](v T) T {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	return v
}

// IsPow2Mask reports whether v is one less than a power of two, i.e. a
// contiguous run of low bits such as 0x00FF. Zero qualifies (1 - 1).
func IsPow2Mask[T Unsigned](v T) bool {
	return v&(v+1) == 0
}

// RoundupPow2Mask rounds v up to the mask one less than the next power of
// two, e.g. 9 becomes 0x0F. Same input domain as RoundupPow2.
func RoundupPow2Mask[T Unsigned](v T) T {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return v
}
