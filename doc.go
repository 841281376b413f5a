// Query and control virtual memory regions of the current process
//
// Query reports the region containing an address: its bounds, protection,
// whether it is shared and whether it is a guard page. Protect changes the
// protection of a range and Lock/Unlock pin a range in physical memory.
//
// Each supported OS has one backend, chosen at build time:
//   - Linux reads /proc/self/maps
//   - macOS calls mach_vm_region (requires cgo)
//   - Windows calls VirtualQuery
//   - Other Unix systems support Protect, Lock and Unlock, but Query
//     returns ENOSYS.
//
// This package never allocates, frees or dereferences the memory it's given.
// Addresses are plain uintptr values.
package region
