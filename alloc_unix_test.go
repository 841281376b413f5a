//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package region

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// mapFenced maps n read-write pages with an inaccessible page on each side,
// so the OS can't merge them with a neighbor.
func mapFenced(t *testing.T, n int) uintptr {
	t.Helper()

	ps := uintptr(PageSize())
	size := uintptr(n+2) * ps

	p, err := unix.MmapPtr(-1, 0, nil, size, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	require.NoError(t, err)
	t.Cleanup(func() {
		unix.MunmapPtr(p, size)
	})

	base := uintptr(p) + ps
	require.NoError(t, unix.Mprotect(rawSlice(base, uintptr(n)*ps), unix.PROT_READ|unix.PROT_WRITE))
	return base
}

// unmappedAddress returns an address in a page that was just unmapped.
func unmappedAddress(t *testing.T) uintptr {
	t.Helper()

	ps := uintptr(PageSize())
	p, err := unix.MmapPtr(-1, 0, nil, 3*ps, unix.PROT_READ, unix.MAP_PRIVATE|unix.MAP_ANON)
	require.NoError(t, err)

	// Only unmap the ends in cleanup. Something else may land in the hole.
	t.Cleanup(func() {
		unix.MunmapPtr(p, ps)
		unix.MunmapPtr(unsafe.Add(p, 2*ps), ps)
	})

	hole := uintptr(p) + ps
	require.NoError(t, unix.MunmapPtr(unsafe.Pointer(hole), ps))
	return hole
}

func rawSlice(base, size uintptr) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(base)), size)
}
