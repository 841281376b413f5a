//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package region

import "golang.org/x/sys/unix"

type sysBackend struct{}

func (sysBackend) pageSize() int {
	return unix.Getpagesize()
}

func (sysBackend) protect(base, size uintptr, prot Protection) error {
	return sysErr("mprotect", mprotect(base, size, toNative(prot)))
}

func (sysBackend) lock(base, size uintptr) error {
	return sysErr("mlock", mlock(base, size))
}

func (sysBackend) unlock(base, size uintptr) error {
	return sysErr("munlock", munlock(base, size))
}
