package region

import "sync"

var pageSize = sync.OnceValue(func() int {
	return sys.pageSize()
})

// PageSize returns the OS page size in bytes. The OS is only asked once.
func PageSize() int {
	return pageSize()
}

// PageFloor rounds addr down to a page boundary.
func PageFloor(addr uintptr) uintptr {
	return addr &^ (uintptr(PageSize()) - 1)
}

// PageCeil rounds addr up to a page boundary.
func PageCeil(addr uintptr) uintptr {
	ps := uintptr(PageSize())
	return (addr + ps - 1) &^ (ps - 1)
}

// PageRange returns the smallest page aligned range that covers
// [base, base+size).
func PageRange(base, size uintptr) (start, length uintptr) {
	start = PageFloor(base)
	return start, PageCeil(base+size) - start
}
