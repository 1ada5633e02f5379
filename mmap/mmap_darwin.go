//go:build darwin

package mmap

import "errors"

// remap is not available on macOS; Remap always reports an error.
func (r *Region) remap(newSize int) ([]byte, error) {
	return nil, errors.New("mremap not available on darwin")
}
