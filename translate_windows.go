//go:build windows

package region

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// PAGE_GUARD, PAGE_NOCACHE and PAGE_WRITECOMBINE are modifiers above the low
// byte.
const pageProtectMask = 0xff

func toNative(p Protection) uint32 {
	switch p {
	case None:
		return windows.PAGE_NOACCESS
	case Read:
		return windows.PAGE_READONLY
	case ReadWrite:
		return windows.PAGE_READWRITE
	case ReadExecute:
		return windows.PAGE_EXECUTE_READ
	default:
		return windows.PAGE_EXECUTE_READWRITE
	}
}

// fromNative converts a PAGE_* value to a Protection. Copy-on-write is a
// property of the mapping, not the protection, so the WRITECOPY variants are
// reported as plain writable pages. Execute-only pages are reported as
// ReadExecute.
//
// VirtualQuery only reports documented constants. Anything else is a bug and
// panics.
func fromNative(protect uint32) Protection {
	switch protect & pageProtectMask {
	case windows.PAGE_NOACCESS:
		return None
	case windows.PAGE_READONLY:
		return Read
	case windows.PAGE_READWRITE, windows.PAGE_WRITECOPY:
		return ReadWrite
	case windows.PAGE_EXECUTE, windows.PAGE_EXECUTE_READ:
		return ReadExecute
	case windows.PAGE_EXECUTE_READWRITE, windows.PAGE_EXECUTE_WRITECOPY:
		return ReadWriteExecute
	}
	panic(fmt.Sprintf("region: unknown page protection %#x", protect))
}
