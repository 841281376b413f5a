//go:build (dragonfly || freebsd || netbsd || openbsd || solaris) || (darwin && !cgo)

package region

import "golang.org/x/sys/unix"

// query isn't available here and always fails with ENOSYS.
//
// TODO: FreeBSD can answer this with the kern.proc.vmmap sysctl.
func (sysBackend) query(addr uintptr) (Region, error) {
	return Region{}, &SystemCallError{Op: "query", Errno: unix.ENOSYS}
}
