package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActionAdapter_FiltersForwardMarkers(t *testing.T) {
	ops := []Operation{
		NewWrite(0, 0),
		NewForward(0, 1),
		NewWriteForward(0, 1),
		NewBackward(1),
		NewDiscardForward(0, 1),
		NewRead(0, 0),
		NewBackward(0),
		NewDiscard(0, 0),
	}
	a := newActionAdapter(ops, 1)

	// The Write_Forward/Backward(1)/Discard_Forward triad is an internal
	// marker block and must not reach the main loop; only the Backward(0)
	// flanked by Read/Discard remains as a real reverse step.
	require.Len(t, a.ops, 5)
	for _, op := range a.ops {
		assert.NotEqual(t, OpWriteForward, op.Kind)
		assert.NotEqual(t, OpDiscardForward, op.Kind)
	}
	backwards := 0
	for _, op := range a.ops {
		if op.Kind == OpBackward {
			backwards++
		}
	}
	assert.Equal(t, 1, backwards)
}

func TestActionAdapter_SingleStepSchedule(t *testing.T) {
	ops := []Operation{
		NewWrite(0, 0),
		NewForward(0, 1),
		NewWriteForward(0, 1),
		NewBackward(1),
		NewDiscardForward(0, 1),
		NewRead(0, 0),
		NewBackward(0),
		NewDiscard(0, 0),
	}
	a := newActionAdapter(ops, 1)

	var acts []Action
	for {
		act, ok, err := a.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		acts = append(acts, act)
	}
	require.NotEmpty(t, acts)

	reverseCount := 0
	for _, act := range acts {
		if act.Kind == ActionReverse {
			reverseCount++
		}
	}
	assert.Equal(t, 1, reverseCount)

	last := acts[len(acts)-1]
	assert.Equal(t, ActionEndReverse, last.Kind)
	assert.True(t, last.Exhausted)
}

func TestActionAdapter_UnknownOperationKindErrors(t *testing.T) {
	a := newActionAdapter([]Operation{{Kind: OperationKind(99)}}, 1)
	_, _, err := a.Next()
	assert.True(t, errors.Is(err, ErrInvalidSchedule))
}

func TestActionAdapter_LeftoverSnapshotsError(t *testing.T) {
	// Write(0,0) gets flushed into the snapshot set by the later Write(0,1)
	// (a deferred write flushes its predecessor), but nothing ever discards
	// step 0: the schedule must not be allowed to end with it still live.
	ops := []Operation{
		NewWrite(0, 0),
		NewForward(0, 1),
		NewWrite(0, 1),
	}
	a := newActionAdapter(ops, 2)

	var lastErr error
	for i := 0; i < 10; i++ {
		_, ok, err := a.Next()
		if err != nil {
			lastErr = err
			break
		}
		if !ok {
			break
		}
	}
	assert.True(t, errors.Is(lastErr, ErrInvalidCheckpointState))
}
