// Package rawres provides exclusive-ownership wrappers around raw OS
// resources. FD owns a single open file descriptor; the mmap subpackage
// owns a memory-mapped region; the branchless subpackage supplies the
// integer primitives the wrappers build on.
//
// Key properties:
//   - Exactly-once release: every owned resource is closed or unmapped
//     exactly once, at a well-defined point
//   - Move-only ownership: transfers null out the source, so two live
//     wrappers never claim the same resource
//   - Structured errors: every OS failure carries the operation label
//     ("close", "fstat", "mmap", "munmap") and the errno
//   - No hidden cost: no reference counting, no finalizers, no internal
//     locking
//
// Basic usage:
//
//	f, err := rawres.Open("/var/data/blob", unix.O_RDONLY, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Map consumes f: the descriptor is closed before Map returns and
//	// the region is the sole owner of the mapping from here on.
//	r, err := mmap.Map(f, unix.PROT_READ, unix.MAP_PRIVATE, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	process(r.Data())
//
// Wrappers carry no internal synchronization: concurrent use of the same
// wrapper instance must be serialized by the caller.
package rawres
