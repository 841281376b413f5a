//go:build windows

package region

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32       = windows.NewLazySystemDLL("kernel32.dll")
	procGetSystemInfo = modkernel32.NewProc("GetSystemInfo")
)

// systemInfo is SYSTEM_INFO. x/sys/windows doesn't wrap GetSystemInfo, and
// its Getpagesize is hard coded.
type systemInfo struct {
	ProcessorArchitecture     uint16
	_                         uint16
	PageSize                  uint32
	MinimumApplicationAddress uintptr
	MaximumApplicationAddress uintptr
	ActiveProcessorMask       uintptr
	NumberOfProcessors        uint32
	ProcessorType             uint32
	AllocationGranularity     uint32
	ProcessorLevel            uint16
	ProcessorRevision         uint16
}

type sysBackend struct{}

func (sysBackend) pageSize() int {
	var info systemInfo
	// GetSystemInfo returns void and can't fail.
	procGetSystemInfo.Call(uintptr(unsafe.Pointer(&info)))
	return int(info.PageSize)
}

func (sysBackend) protect(base, size uintptr, prot Protection) error {
	var oldFlags uint32
	return sysErr("VirtualProtect", windows.VirtualProtect(base, size, toNative(prot), &oldFlags))
}

func (sysBackend) lock(base, size uintptr) error {
	return sysErr("VirtualLock", windows.VirtualLock(base, size))
}

func (sysBackend) unlock(base, size uintptr) error {
	return sysErr("VirtualUnlock", windows.VirtualUnlock(base, size))
}
