package region

import "fmt"

// Region describes a contiguous range of memory with the same protection,
// as reported by the OS when it was queried. It's a snapshot: changes to the
// mapping afterwards aren't reflected.
type Region struct {
	Base       uintptr
	Size       uintptr
	Protection Protection

	// Shared is true unless the mapping is private to this process.
	Shared bool

	// Guarded is true for guard pages, which fault on first access
	// regardless of Protection.
	Guarded bool
}

// End returns the first address after the region.
func (r Region) End() uintptr {
	return r.Base + r.Size
}

// Contains reports whether addr is inside the region.
func (r Region) Contains(addr uintptr) bool {
	return addr >= r.Base && addr-r.Base < r.Size
}

// String formats the region like a line from /proc/self/maps, with a
// trailing "g" for guard pages.
func (r Region) String() string {
	kind := 'p'
	if r.Shared {
		kind = 's'
	}
	s := fmt.Sprintf("%#x-%#x %s%c", r.Base, r.End(), r.Protection, kind)
	if r.Guarded {
		s += " g"
	}
	return s
}
