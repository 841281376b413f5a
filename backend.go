package region

// backend is implemented once per OS by sysBackend. The build constraints on
// each file pick the implementation; there's no runtime dispatch on GOOS.
type backend interface {
	pageSize() int
	query(addr uintptr) (Region, error)
	protect(base, size uintptr, prot Protection) error
	lock(base, size uintptr) error
	unlock(base, size uintptr) error
}

var sys backend = sysBackend{}

// Query returns the region that contains addr. addr doesn't need to be page
// aligned or the start of an allocation.
//
// ErrFree is returned if addr isn't mapped. Any other failure is a
// *SystemCallError.
func Query(addr uintptr) (Region, error) {
	return sys.query(addr)
}

// Protect changes the protection of [base, base+size). The range isn't
// rounded to page boundaries, so the OS may reject an unaligned base. The
// previous protection is discarded; use ProtectWithHandle to keep it.
func Protect(base, size uintptr, prot Protection) error {
	return sys.protect(base, size, prot)
}

// Lock asks the OS to keep [base, base+size) resident in physical memory.
// Failure under resource limits (RLIMIT_MEMLOCK, the working set size on
// Windows) is normal and reported as a *SystemCallError.
func Lock(base, size uintptr) error {
	return sys.lock(base, size)
}

// Unlock allows [base, base+size) to be paged out again.
func Unlock(base, size uintptr) error {
	return sys.unlock(base, size)
}
