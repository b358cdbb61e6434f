package internal

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNofBatches(t *testing.T) {
	assert.Equal(t, 1, ComputeNofBatches(5, 5, 0))
	assert.Equal(t, 3, ComputeNofBatches(0, 3, 8))
	assert.Equal(t, 4, ComputeNofBatches(0, 100, 4))

	want := 2 * runtime.NumCPU()
	if want > 1<<20 {
		want = 1 << 20
	}
	assert.Equal(t, want, ComputeNofBatches(0, 1<<20, 0))

	assert.Panics(t, func() { ComputeNofBatches(4, 2, 0) })
	assert.Panics(t, func() { ComputeNofBatches(0, 2, -1) })
}

func TestWrapPanic(t *testing.T) {
	assert.Nil(t, WrapPanic(nil))

	sentinel := errors.New("boom")
	wrapped, ok := WrapPanic(sentinel).(error)
	require.True(t, ok)
	assert.ErrorIs(t, wrapped, sentinel)

	msg, ok := WrapPanic("bad comparator").(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(msg, "bad comparator\n"))
	assert.Contains(t, msg, "rethrown at")
}
