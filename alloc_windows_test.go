//go:build windows

package region

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

// mapFenced commits n read-write pages with a reserved page on each side,
// so VirtualQuery can't merge them with a neighbor.
func mapFenced(t *testing.T, n int) uintptr {
	t.Helper()

	ps := uintptr(PageSize())
	p, err := windows.VirtualAlloc(0, uintptr(n+2)*ps, windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	require.NoError(t, err)
	t.Cleanup(func() {
		windows.VirtualFree(p, 0, windows.MEM_RELEASE)
	})

	base, err := windows.VirtualAlloc(p+ps, uintptr(n)*ps, windows.MEM_COMMIT, windows.PAGE_READWRITE)
	require.NoError(t, err)
	return base
}

// unmappedAddress returns an address in an allocation that was just released.
func unmappedAddress(t *testing.T) uintptr {
	t.Helper()

	p, err := windows.VirtualAlloc(0, uintptr(PageSize()), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	require.NoError(t, err)
	require.NoError(t, windows.VirtualFree(p, 0, windows.MEM_RELEASE))
	return p
}

func rawSlice(base, size uintptr) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(base)), size)
}
