//go:build linux

package mmap

import "golang.org/x/sys/unix"

// remap resizes the mapping via the Linux mremap syscall, letting the
// kernel move it when it cannot grow in place. unix.Mremap keeps the
// x/sys mapping registry consistent so a later Munmap still recognizes
// the slice.
func (r *Region) remap(newSize int) ([]byte, error) {
	return unix.Mremap(r.data, newSize, unix.MREMAP_MAYMOVE)
}
