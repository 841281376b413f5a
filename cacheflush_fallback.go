//go:build !arm64

package region

// FlushCode makes machine code written to [base, base+size) visible to
// instruction fetch. The instruction cache is coherent on these
// architectures, so there's nothing to do.
func FlushCode(base, size uintptr) {}
