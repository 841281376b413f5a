//go:build arm64 && cgo

package region

import "unsafe"

/*
static void cacheflush(char *start, char *end) {
	__builtin___clear_cache(start, end);
}
*/
import "C"

// FlushCode makes machine code written to [base, base+size) visible to
// instruction fetch. Call it after writing code and before running it.
func FlushCode(base, size uintptr) {
	start := unsafe.Pointer(base)
	end := unsafe.Pointer(base + size)
	C.cacheflush((*C.char)(start), (*C.char)(end))
}
