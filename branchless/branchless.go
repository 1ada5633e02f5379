// Package branchless provides integer primitives computed without
// data-dependent conditional branches, for hot paths where branch
// mispredictions are costly.
//
// Every routine is semantically identical to its obvious comparison-based
// form; the bitwise formulation only pins the latency. The documented edge
// cases (Abs of the most negative value, IsPow2 of zero, the RoundupPow2
// input domain) are part of the contract.
package branchless

import "unsafe"

// Signed is the constraint for the signed integer widths Abs supports.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for the power-of-two helpers.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer represents all supported integer types.
type Integer interface {
	Signed | Unsigned
}

// ltMask returns all ones when x < y and all zeros otherwise. The
// comparison materializes as a 0/1 byte (SETcc on amd64), never as a
// jump; negating it smears the bit across the full width.
func ltMask[T Integer](x, y T) T {
	lt := x < y
	return -T(*(*byte)(unsafe.Pointer(&lt)))
}

// Abs returns the absolute value of v.
//
// The sign mask is the sign-extended high part of v widened to 64 bits:
// all ones when v is negative, all zeros otherwise. (v XOR mask) - mask
// then negates exactly the negative inputs. The most negative value of a
// width has no positive counterpart and wraps to itself.
func Abs[T Signed](v T) T {
	m := T(int64(v) >> 63)
	return (v ^ m) - m
}

// Min returns the smaller of x and y.
func Min[T Integer](x, y T) T {
	return y ^ ((x ^ y) & ltMask(x, y))
}

// Max returns the larger of x and y.
func Max[T Integer](x, y T) T {
	return x ^ ((x ^ y) & ltMask(x, y))
}

// Swap exchanges the values behind x and y via the XOR identity. The
// pointers must not alias: exchanging a value with itself zeroes it.
func Swap[T Integer](x, y *T) {
	*x ^= *y
	*y ^= *x
	*x ^= *y
}
