package rawres

import (
	"golang.org/x/sys/unix"

	"github.com/dtl-go/rawres/branchless"
)

// Invalid is the sentinel descriptor value denoting "no resource owned".
const Invalid = -1

// FD owns exactly one open file descriptor. Ownership is exclusive and
// move-only: transfers null out the source, so at most one live FD claims
// a given descriptor at a time. The descriptor is closed exactly once,
// by whichever FD owns it when Close runs.
//
// The descriptor is stored offset by one so that the zero FD owns nothing
// and is immediately usable. Any negative adopted value is likewise
// treated as owning nothing.
//
// An FD is not safe for concurrent use.
type FD struct {
	raw int // descriptor+1, 0 when nothing is owned
}

func stored(raw int) int {
	if raw < 0 {
		return 0
	}
	return raw + 1
}

// New adopts ownership of an already-open descriptor. The value is not
// validated against the OS; adopting a descriptor that is not actually
// open surfaces later, as an EBADF from Close.
func New(raw int) *FD {
	return &FD{raw: stored(raw)}
}

// Take transfers ownership out of other into a new FD; other is left
// owning nothing.
func Take(other *FD) *FD {
	f := &FD{raw: other.raw}
	other.raw = 0
	return f
}

// Open opens the named path and returns an FD owning the result.
func Open(path string, flags int, mode uint32) (*FD, error) {
	raw, err := unix.Open(path, flags, mode)
	if err != nil {
		return nil, &Error{Op: "open", Err: err}
	}
	return New(raw), nil
}

// MoveFrom closes the currently owned descriptor, then adopts other's;
// other is left owning nothing. The adoption happens even when the close
// fails, so the incoming descriptor is never leaked; the close error is
// returned.
func (f *FD) MoveFrom(other *FD) error {
	if f == other {
		return nil
	}
	err := f.Close()
	f.raw = other.raw
	other.raw = 0
	return err
}

// Reset closes the currently owned descriptor, then adopts raw. As with
// MoveFrom, the adoption happens even when the close fails.
func (f *FD) Reset(raw int) error {
	err := f.Close()
	f.raw = stored(raw)
	return err
}

// Release returns the owned descriptor and resets the FD without closing.
// Used to transfer ownership outside the wrapper's own release path.
func (f *FD) Release() int {
	raw := f.Get()
	f.raw = 0
	return raw
}

// Swap exchanges ownership with another FD without closing either.
// f and other must be distinct wrappers.
func (f *FD) Swap(other *FD) {
	branchless.Swap(&f.raw, &other.raw)
}

// Get returns the owned descriptor, or Invalid, without affecting
// ownership.
func (f *FD) Get() int {
	return f.raw - 1
}

// Valid reports whether the FD currently owns a descriptor.
func (f *FD) Valid() bool {
	return f.raw != 0
}

// Equal reports whether both wrappers hold the same raw value. Ownership
// is exclusive, so two valid FDs compare equal only transiently; the
// comparison is mainly useful against freshly-constructed or released
// wrappers.
func (f *FD) Equal(other *FD) bool {
	return f.raw == other.raw
}

// Dup returns a new FD owning a duplicate of the descriptor. Duplication
// is the only sanctioned way to end up with two wrappers for one
// underlying file.
func (f *FD) Dup() (*FD, error) {
	raw, err := unix.Dup(f.Get())
	if err != nil {
		return nil, &Error{Op: "dup", Err: err}
	}
	return New(raw), nil
}

// Close releases the owned descriptor. Closing an FD that owns nothing is
// a no-op, so Close is safe to call more than once and safe to defer
// alongside an explicit call.
//
// Ownership is relinquished before the close is attempted: after Close
// returns, successfully or not, the FD owns nothing and a retry cannot
// double-close a descriptor the kernel may already have reused. An
// interrupted close is retried; any other failure is returned as *Error
// with the errno.
func (f *FD) Close() error {
	if f.raw == 0 {
		return nil
	}

	raw := f.raw - 1
	f.raw = 0

	for {
		err := unix.Close(raw)
		if err == nil {
			return nil
		}
		if err == unix.EINTR {
			continue
		}
		return &Error{Op: "close", Err: err}
	}
}
