//go:build darwin && cgo

package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// Values from <mach/vm_statistics.h> and <mach/vm_region.h>. Anonymous mmap
// takes the tag in the fd argument, shifted like VM_MAKE_TAG.
const (
	vmMemoryGuard = 31

	smCOW     = 1
	smPrivate = 2
	smEmpty   = 3
	smShared  = 4
)

func TestQuery_GuardTag(t *testing.T) {
	ps := uintptr(PageSize())

	p, err := unix.MmapPtr(vmMemoryGuard<<24, 0, nil, ps, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	require.NoError(t, err)
	t.Cleanup(func() {
		unix.MunmapPtr(p, ps)
	})

	reg, err := Query(uintptr(p))
	require.NoError(t, err)
	assert.True(t, reg.Guarded)
	assert.Equal(t, None, reg.Protection)
	assert.False(t, reg.Shared)
}

func TestQuery_Untagged(t *testing.T) {
	base := mapFenced(t, 1)

	reg, err := Query(base)
	require.NoError(t, err)
	assert.False(t, reg.Guarded)
}

func TestIsShared(t *testing.T) {
	assert := assert.New(t)

	assert.False(isShared(smPrivate))
	assert.False(isShared(smEmpty))
	assert.True(isShared(smShared))
	assert.True(isShared(smCOW))
}
