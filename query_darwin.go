//go:build darwin && cgo

package region

/*
#include <mach/mach.h>
#include <mach/mach_vm.h>

static mach_port_t get_mach_task_self() {
	return mach_task_self();
}
*/
import "C"

import (
	"syscall"
	"unsafe"
)

// query uses mach_vm_region_recurse, which returns the first region at or
// above the address. A region that starts above addr means addr is in a
// hole. Submaps (like the shared cache) are descended into so the region
// returned is the one actually holding addr.
func (sysBackend) query(addr uintptr) (Region, error) {
	var (
		address C.mach_vm_address_t
		size    C.mach_vm_size_t
		depth   C.natural_t
		info    C.vm_region_submap_info_data_64_t
	)

	for {
		address = C.mach_vm_address_t(addr)
		var count C.mach_msg_type_number_t = C.VM_REGION_SUBMAP_INFO_COUNT_64

		kr := C.mach_vm_region_recurse(C.get_mach_task_self(), &address, &size,
			&depth, C.vm_region_recurse_info_t(unsafe.Pointer(&info)), &count)

		switch {
		case kr == C.KERN_INVALID_ADDRESS:
			return Region{}, ErrFree
		case kr != C.KERN_SUCCESS:
			return Region{}, &SystemCallError{Op: "mach_vm_region_recurse", Errno: syscall.Errno(kr)}
		}

		if info.is_submap == 0 {
			break
		}
		depth++
	}

	if uintptr(address) > addr {
		return Region{}, ErrFree
	}

	return Region{
		Base:       uintptr(address),
		Size:       uintptr(size),
		Protection: fromNative(int(info.protection)),
		Shared:     isShared(int(info.share_mode)),
		Guarded:    info.user_tag == C.VM_MEMORY_GUARD,
	}, nil
}

// isShared reports whether a share mode means the pages may be visible
// outside this process. Copy-on-write pages are still shared until written.
func isShared(mode int) bool {
	switch mode {
	case C.SM_PRIVATE, C.SM_EMPTY, C.SM_PRIVATE_ALIASED, C.SM_LARGE_PAGE:
		return false
	}
	return true
}
