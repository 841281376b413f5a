package region

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrFree is returned by Query when no mapping contains the address.
var ErrFree = errors.New("region: address is not mapped")

// SystemCallError is returned when a native call fails. Errno is the OS's
// own error code. On macOS Mach calls report their kern_return_t here.
type SystemCallError struct {
	Op    string
	Errno syscall.Errno
}

func (e *SystemCallError) Error() string {
	return fmt.Sprintf("region: %s: %v", e.Op, e.Errno)
}

func (e *SystemCallError) Unwrap() error {
	return e.Errno
}

// sysErr converts an error from a native call into a *SystemCallError. nil
// stays nil.
func sysErr(op string, err error) error {
	if err == nil {
		return nil
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		// Everything x/sys returns is an Errno, but os.ReadFile and friends
		// may not be.
		errno = syscall.EINVAL
	}
	return &SystemCallError{Op: op, Errno: errno}
}
