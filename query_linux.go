//go:build linux

package region

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

const procMaps = "/proc/self/maps"

func (sysBackend) query(addr uintptr) (Region, error) {
	f, err := os.Open(procMaps)
	if err != nil {
		return Region{}, sysErr("open "+procMaps, err)
	}
	defer f.Close()

	return findMapping(f, addr)
}

// findMapping scans a maps file for the line containing addr.
func findMapping(r io.Reader, addr uintptr) (Region, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}

		reg, err := parseMapsLine(line)
		if err != nil {
			return Region{}, sysErr("parse "+procMaps, err)
		}

		if reg.Contains(addr) {
			return reg, nil
		}

		// The kernel lists mappings in ascending order.
		if reg.Base > addr {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return Region{}, sysErr("read "+procMaps, err)
	}

	return Region{}, ErrFree
}

// parseMapsLine parses one line of /proc/[pid]/maps. The format is described
// in proc_pid_maps(5):
//
//	7f1c2a9e5000-7f1c2aa0b000 r-xp 00000000 08:01 1311       /usr/lib/libc.so.6
//
// Linux has no guard page attribute, so Guarded is always false.
func parseMapsLine(line string) (Region, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return Region{}, fmt.Errorf("got %d fields, expected at least 5: %s", len(fields), line)
	}

	lo, hi, ok := strings.Cut(fields[0], "-")
	if !ok {
		return Region{}, fmt.Errorf("invalid address range %q", fields[0])
	}
	start, err := strconv.ParseUint(lo, 16, 64)
	if err != nil {
		return Region{}, fmt.Errorf("failed to parse start address %q: %w", lo, err)
	}
	end, err := strconv.ParseUint(hi, 16, 64)
	if err != nil {
		return Region{}, fmt.Errorf("failed to parse end address %q: %w", hi, err)
	}
	if end <= start {
		return Region{}, fmt.Errorf("empty address range %q", fields[0])
	}

	perms := fields[1]
	if len(perms) != 4 {
		return Region{}, fmt.Errorf("invalid permissions %q", perms)
	}

	var prot int
	for i, bit := range []int{unix.PROT_READ, unix.PROT_WRITE, unix.PROT_EXEC} {
		switch perms[i] {
		case "rwx"[i]:
			prot |= bit
		case '-':
		default:
			return Region{}, fmt.Errorf("unexpected permission bit %q in %q", perms[i], perms)
		}
	}

	var shared bool
	switch perms[3] {
	case 's':
		shared = true
	case 'p':
	default:
		return Region{}, fmt.Errorf("unexpected sharing bit %q in %q", perms[3], perms)
	}

	return Region{
		Base:       uintptr(start),
		Size:       uintptr(end - start),
		Protection: fromNative(prot),
		Shared:     shared,
	}, nil
}
