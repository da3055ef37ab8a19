package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardActionVariants(t *testing.T) {
	plain := ForwardAction(0, 4)
	assert.False(t, plain.StoreICs)
	assert.Equal(t, int64(0), plain.N0)
	assert.Equal(t, int64(4), plain.N1)

	withStorage := ForwardActionWithStorage(0, 4, true, false, Disk)
	assert.True(t, withStorage.StoreICs)
	assert.False(t, withStorage.StoreData)
	assert.Equal(t, Disk, withStorage.Storage)
}

func TestReadActionDeleteFlag(t *testing.T) {
	r := ReadAction(3, RAM, true)
	assert.Equal(t, ActionRead, r.Kind)
	assert.Equal(t, int64(3), r.N)
	assert.True(t, r.Delete)
}

func TestEndReverseExhausted(t *testing.T) {
	assert.True(t, EndReverse(true).Exhausted)
	assert.False(t, EndReverse(false).Exhausted)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Forward(0,4)", ForwardAction(0, 4).String())
	assert.Equal(t, "Reverse(4,0)", ReverseAction(4, 0, true).String())
	assert.Equal(t, "EndForward", EndForward().String())
}
