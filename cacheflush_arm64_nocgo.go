//go:build arm64 && !cgo

package region

// FlushCode needs the C compiler's __builtin___clear_cache on arm64. Build
// with CGO_ENABLED=1 to use it.
func FlushCode(base, size uintptr) {
	panic("region: FlushCode requires cgo on arm64")
}
