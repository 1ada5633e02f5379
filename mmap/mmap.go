// Package mmap provides an exclusively owned memory-mapped region.
//
// A Region is established either from a consumed rawres.FD (file-backed)
// or from an explicit length (anonymous) and is unmapped exactly once, by
// whichever Region owns it when Close runs.
package mmap

import (
	"unsafe"

	"github.com/dtl-go/rawres"
)

// Region owns one mapped virtual-address range. The backing slice carries
// the address and the length together, so they are set and cleared as one;
// a nil slice is the "owns nothing" sentinel and the zero Region is
// immediately usable.
//
// A Region is not safe for concurrent use.
type Region struct {
	data []byte
}

// Common errors
var (
	ErrInvalidSize  = &rawres.Error{Op: "invalid size"}
	ErrInvalidRange = &rawres.Error{Op: "invalid range"}
	ErrNotMapped    = &rawres.Error{Op: "not mapped"}
	ErrEmptyFile    = &rawres.Error{Op: "empty file"}
)

// Take transfers ownership out of other into a new Region; other is left
// owning nothing.
func Take(other *Region) *Region {
	r := &Region{data: other.data}
	other.data = nil
	return r
}

// MoveFrom unmaps the currently owned region, then adopts other's mapping;
// other is left owning nothing. The mapping is adopted even when the unmap
// fails, so it is never leaked; the unmap error is returned.
func (r *Region) MoveFrom(other *Region) error {
	if r == other {
		return nil
	}
	err := r.Close()
	r.data = other.data
	other.data = nil
	return err
}

// Release returns the owned mapping and resets the Region without
// unmapping. Used to transfer ownership outside the wrapper's own release
// path.
func (r *Region) Release() []byte {
	data := r.data
	r.data = nil
	return data
}

// Reset unmaps the current region, then adopts data as the new owned
// state. The caller asserts data is a live mapping or nil. The adoption
// happens even when the unmap fails.
func (r *Region) Reset(data []byte) error {
	err := r.Close()
	r.data = data
	return err
}

// Swap exchanges the two mappings, address and length as one, without
// unmapping either.
func (r *Region) Swap(other *Region) {
	r.data, other.data = other.data, r.data
}

// Data returns the mapped bytes without affecting ownership.
func (r *Region) Data() []byte {
	return r.data
}

// Size returns the mapped length in bytes.
func (r *Region) Size() int {
	return len(r.data)
}

// Valid reports whether the Region currently owns a mapping.
func (r *Region) Valid() bool {
	return r.data != nil
}

// Equal reports whether both regions cover the same address and length.
func (r *Region) Equal(other *Region) bool {
	return unsafe.SliceData(r.data) == unsafe.SliceData(other.data) &&
		len(r.data) == len(other.data)
}
