//go:build windows

package region

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Memory states and types missing from x/sys/windows.
//
// https://learn.microsoft.com/en-us/windows/win32/api/winnt/ns-winnt-memory_basic_information
const (
	_MEM_FREE    = 0x00010000
	_MEM_PRIVATE = 0x00020000
)

func (sysBackend) query(addr uintptr) (Region, error) {
	var info windows.MemoryBasicInformation
	err := windows.VirtualQuery(addr, &info, unsafe.Sizeof(info))
	if err != nil {
		return Region{}, sysErr("VirtualQuery", err)
	}
	if info.State == _MEM_FREE {
		return Region{}, ErrFree
	}

	// Reserved pages have no access and leave Protect as zero.
	prot := None
	if info.State != windows.MEM_RESERVE {
		prot = fromNative(info.Protect)
	}

	return Region{
		Base:       info.BaseAddress,
		Size:       info.RegionSize,
		Protection: prot,
		Shared:     info.Type&_MEM_PRIVATE == 0,
		Guarded:    info.Protect&windows.PAGE_GUARD != 0,
	}, nil
}
