//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"

	"github.com/dtl-go/rawres"
)

// Map establishes a mapping over the whole of the file behind f, sized by
// fstat. The offset must be page-aligned.
//
// Map consumes f on every path: the descriptor is needed only to size and
// establish the mapping and is closed before Map returns. The Region never
// retains it. On the failure paths the descriptor is closed best-effort;
// on the success path a close failure tears the fresh mapping down and is
// reported, so it is never swallowed.
func Map(f *rawres.FD, prot, flags int, offset int64) (*Region, error) {
	var st unix.Stat_t
	if err := unix.Fstat(f.Get(), &st); err != nil {
		f.Close()
		return nil, &rawres.Error{Op: "fstat", Err: err}
	}

	data, err := unix.Mmap(f.Get(), offset, int(st.Size), prot, flags)
	if err != nil {
		f.Close()
		return nil, &rawres.Error{Op: "mmap", Err: err}
	}

	if err := f.Close(); err != nil {
		unix.Munmap(data)
		return nil, err
	}

	return &Region{data: data}, nil
}

// MapAnon establishes an anonymous mapping of exactly length bytes with no
// backing file.
func MapAnon(length int, prot, flags int) (*Region, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}

	data, err := unix.Mmap(-1, 0, length, prot, flags|unix.MAP_ANON)
	if err != nil {
		return nil, &rawres.Error{Op: "mmap", Err: err}
	}

	return &Region{data: data}, nil
}

// MapFile opens a file and maps the whole of it with MAP_SHARED.
func MapFile(path string, writable bool) (*Region, error) {
	flag := unix.O_RDONLY
	prot := unix.PROT_READ
	if writable {
		flag = unix.O_RDWR
		prot |= unix.PROT_WRITE
	}

	f, err := rawres.Open(path, flag, 0)
	if err != nil {
		return nil, err
	}

	var st unix.Stat_t
	if err := unix.Fstat(f.Get(), &st); err != nil {
		f.Close()
		return nil, &rawres.Error{Op: "fstat", Err: err}
	}
	if st.Size == 0 {
		f.Close()
		return nil, ErrEmptyFile
	}

	return Map(f, prot, unix.MAP_SHARED, 0)
}

// Close unmaps the owned region. Closing a Region that owns nothing is a
// no-op, so Close is safe to call more than once and safe to defer
// alongside an explicit call.
//
// Ownership is relinquished before the unmap is attempted: after Close
// returns, successfully or not, the Region owns nothing.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}

	data := r.data
	r.data = nil

	if err := unix.Munmap(data); err != nil {
		return &rawres.Error{Op: "munmap", Err: err}
	}
	return nil
}

// Sync flushes changes to the backing file synchronously.
func (r *Region) Sync() error {
	if r.data == nil {
		return ErrNotMapped
	}
	if err := unix.Msync(r.data, unix.MS_SYNC); err != nil {
		return &rawres.Error{Op: "msync", Err: err}
	}
	return nil
}

// SyncAsync schedules a flush to the backing file without waiting for it.
func (r *Region) SyncAsync() error {
	if r.data == nil {
		return ErrNotMapped
	}
	if err := unix.Msync(r.data, unix.MS_ASYNC); err != nil {
		return &rawres.Error{Op: "msync", Err: err}
	}
	return nil
}

// SyncRange flushes a specific range to the backing file. The offset must
// be page-aligned.
func (r *Region) SyncRange(offset, length int) error {
	if r.data == nil {
		return ErrNotMapped
	}
	if offset < 0 || length < 0 || offset+length > len(r.data) {
		return ErrInvalidRange
	}
	if err := unix.Msync(r.data[offset:offset+length], unix.MS_SYNC); err != nil {
		return &rawres.Error{Op: "msync", Err: err}
	}
	return nil
}

// Remap resizes the mapping in place. A Region never retains the
// descriptor it was mapped from, so resizing relies on the kernel moving
// the mapping (mremap); platforms without mremap report an error.
func (r *Region) Remap(newSize int) error {
	if r.data == nil {
		return ErrNotMapped
	}
	if newSize <= 0 {
		return ErrInvalidSize
	}
	if newSize == len(r.data) {
		return nil
	}

	data, err := r.remap(newSize)
	if err != nil {
		return &rawres.Error{Op: "mremap", Err: err}
	}
	r.data = data
	return nil
}

// Lock locks the mapped pages in memory (prevents swapping).
func (r *Region) Lock() error {
	if r.data == nil {
		return ErrNotMapped
	}
	if err := unix.Mlock(r.data); err != nil {
		return &rawres.Error{Op: "mlock", Err: err}
	}
	return nil
}

// Unlock unlocks the mapped pages.
func (r *Region) Unlock() error {
	if r.data == nil {
		return ErrNotMapped
	}
	if err := unix.Munlock(r.data); err != nil {
		return &rawres.Error{Op: "munlock", Err: err}
	}
	return nil
}

// Advise provides a hint to the kernel about the access pattern.
func (r *Region) Advise(advice int) error {
	if r.data == nil {
		return ErrNotMapped
	}
	if err := unix.Madvise(r.data, advice); err != nil {
		return &rawres.Error{Op: "madvise", Err: err}
	}
	return nil
}

// AdviseSequential hints that pages will be accessed sequentially.
func (r *Region) AdviseSequential() error {
	return r.Advise(unix.MADV_SEQUENTIAL)
}

// AdviseRandom hints that pages will be accessed randomly.
func (r *Region) AdviseRandom() error {
	return r.Advise(unix.MADV_RANDOM)
}

// AdviseWillNeed hints that pages will be needed soon.
func (r *Region) AdviseWillNeed() error {
	return r.Advise(unix.MADV_WILLNEED)
}

// AdviseDontNeed hints that pages won't be needed soon.
func (r *Region) AdviseDontNeed() error {
	return r.Advise(unix.MADV_DONTNEED)
}
