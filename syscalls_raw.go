//go:build dragonfly || freebsd || linux || netbsd

package region

import "golang.org/x/sys/unix"

// The x/sys wrappers take a []byte, which can't describe a nil base, a range
// that wraps around, or an empty range at a particular address. These pass
// the address straight to the kernel instead.

func mprotect(base, size uintptr, prot int) error {
	return errnoErr(unix.Syscall(unix.SYS_MPROTECT, base, size, uintptr(prot)))
}

func mlock(base, size uintptr) error {
	return errnoErr(unix.Syscall(unix.SYS_MLOCK, base, size, 0))
}

func munlock(base, size uintptr) error {
	return errnoErr(unix.Syscall(unix.SYS_MUNLOCK, base, size, 0))
}

func errnoErr(_, _ uintptr, errno unix.Errno) error {
	if errno != 0 {
		return errno
	}
	return nil
}
