package region

import (
	"math/bits"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageSize(t *testing.T) {
	ps := PageSize()
	assert.Greater(t, ps, 0)
	assert.Equal(t, 1, bits.OnesCount(uint(ps)), "%d is not a power of two", ps)

	for range 10 {
		assert.Equal(t, ps, PageSize())
	}
}

func TestPageSize_Concurrent(t *testing.T) {
	want := PageSize()

	var wg sync.WaitGroup
	results := make([]int, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = PageSize()
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestPageRounding(t *testing.T) {
	assert := assert.New(t)
	ps := uintptr(PageSize())

	assert.Equal(4*ps, PageFloor(4*ps))
	assert.Equal(4*ps, PageFloor(4*ps+1))
	assert.Equal(4*ps, PageFloor(5*ps-1))

	assert.Equal(4*ps, PageCeil(4*ps))
	assert.Equal(5*ps, PageCeil(4*ps+1))
	assert.Equal(uintptr(0), PageCeil(0))

	start, length := PageRange(4*ps+100, ps)
	assert.Equal(4*ps, start)
	assert.Equal(2*ps, length)

	start, length = PageRange(4*ps, ps)
	assert.Equal(4*ps, start)
	assert.Equal(ps, length)

	start, length = PageRange(4*ps+1, 0)
	assert.Equal(4*ps, start)
	assert.Equal(ps, length)
}
