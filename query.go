package region

import "iter"

// QueryRange yields each region overlapping [base, base+size) in address
// order. Iteration stops after the first error, so a hole in the range
// yields ErrFree and ends the sequence.
func QueryRange(base, size uintptr) iter.Seq2[Region, error] {
	return func(yield func(Region, error) bool) {
		if size == 0 {
			return
		}

		end := base + size
		if end < base {
			// Overflow; clamp to the top of the address space.
			end = ^uintptr(0)
		}

		for addr := base; addr < end; {
			reg, err := Query(addr)
			if err != nil {
				yield(Region{}, err)
				return
			}
			if !yield(reg, nil) {
				return
			}

			next := reg.End()
			if next <= addr {
				// The region ends at the top of the address space.
				return
			}
			addr = next
		}
	}
}
