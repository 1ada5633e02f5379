package rawres

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Error is a structured OS-level failure: the operation that failed and
// the underlying error, usually a unix.Errno.
type Error struct {
	Op  string // "open", "close", "dup", "fstat", "mmap", "munmap", ...
	Err error  // wrapped error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "rawres: " + e.Op + ": " + e.Err.Error()
	}
	return "rawres: " + e.Op
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errno returns the OS error code carried by the error, or 0 if there is
// none.
func (e *Error) Errno() unix.Errno {
	return errnoOf(e.Err)
}

func errnoOf(err error) unix.Errno {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}

// IsBadDescriptor returns true if the error is an EBADF failure, i.e. the
// OS rejected the descriptor a wrapper claimed to own.
func IsBadDescriptor(err error) bool {
	return errnoOf(err) == unix.EBADF
}

// IsInterrupted returns true if the error is an EINTR failure. Release
// paths retry these internally, so callers should never observe one from
// FD.Close.
func IsInterrupted(err error) bool {
	return errnoOf(err) == unix.EINTR
}
