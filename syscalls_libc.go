//go:build darwin || openbsd || solaris

package region

import (
	"math"
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"
)

// These systems only allow system calls through libc, so the []byte wrappers
// from x/sys are the only way in. Ranges a slice can't describe are answered
// here the way mprotect(2) and mlock(2) would answer them.

func mprotect(base, size uintptr, prot int) error {
	if size == 0 {
		// An empty slice would hand x/sys's placeholder address to the
		// kernel, so only the alignment check is left to do.
		if base%uintptr(unix.Getpagesize()) != 0 {
			return unix.EINVAL
		}
		return nil
	}
	if !fitsSlice(base, size) {
		return unix.ENOMEM
	}
	return unix.Mprotect(addrSlice(base, size), prot)
}

func mlock(base, size uintptr) error {
	if size == 0 {
		return nil
	}
	if !fitsSlice(base, size) {
		return unix.ENOMEM
	}
	return unix.Mlock(addrSlice(base, size))
}

func munlock(base, size uintptr) error {
	if size == 0 {
		return nil
	}
	if !fitsSlice(base, size) {
		return unix.ENOMEM
	}
	return unix.Munlock(addrSlice(base, size))
}

// fitsSlice reports whether [base, base+size) stays inside the address space
// and its length fits in an int.
func fitsSlice(base, size uintptr) bool {
	return base+size >= base && size <= math.MaxInt
}

// addrSlice makes a slice header over [base, base+size) without the checks
// unsafe.Slice does, so a nil base reaches the kernel and fails there. The
// slice is never read or written.
func addrSlice(base, size uintptr) []byte {
	var buf []byte
	sliceHeader := (*reflect.SliceHeader)(unsafe.Pointer(&buf))
	sliceHeader.Data = base
	sliceHeader.Len = int(size)
	sliceHeader.Cap = int(size)
	return buf
}
