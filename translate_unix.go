//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package region

import "golang.org/x/sys/unix"

const protMask = unix.PROT_READ | unix.PROT_WRITE | unix.PROT_EXEC

// toNative converts p to PROT_* bits. Every combination has an exact
// equivalent.
func toNative(p Protection) int {
	var prot int
	if p&Read != 0 {
		prot |= unix.PROT_READ
	}
	if p&Write != 0 {
		prot |= unix.PROT_WRITE
	}
	if p&Execute != 0 {
		prot |= unix.PROT_EXEC
	}
	return prot
}

// fromNative converts PROT_* bits to a Protection. Bits outside
// PROT_READ|PROT_WRITE|PROT_EXEC are ignored. Write-only and execute-only
// pages are widened to include Read.
func fromNative(prot int) Protection {
	prot &= protMask
	if prot == unix.PROT_NONE {
		return None
	}

	p := Read
	if prot&unix.PROT_WRITE != 0 {
		p |= Write
	}
	if prot&unix.PROT_EXEC != 0 {
		p |= Execute
	}
	return p
}
