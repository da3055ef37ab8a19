package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTwoLevelDriver_RejectsBadConfig(t *testing.T) {
	_, err := NewTwoLevelDriver(0, 2, Disk, TrajectoryMaximum)
	require.Error(t, err)

	_, err = NewTwoLevelDriver(2, 2, FwdRestart, TrajectoryMaximum)
	require.Error(t, err)
}

// driveOneReversePass pulls actions from d until the forward pass covers
// maxN steps (finalizing it along the way) and then until exactly one
// EndReverse is observed, returning the reverse steps taken in order.
func driveOneReversePass(t *testing.T, d *TwoLevelDriver, maxN int64) []Action {
	t.Helper()
	var n int64
	finalized := false
	var reverses []Action

	for {
		act, ok, err := d.Next()
		require.NoError(t, err)
		require.True(t, ok)

		switch act.Kind {
		case ActionForward:
			n = act.N1
			if !finalized && n >= maxN {
				finalized = true
				d.FinalizeForward(maxN)
			}
		case ActionReverse:
			reverses = append(reverses, act)
		case ActionEndReverse:
			return reverses
		}
	}
}

func TestTwoLevelDriver_ReversePassCoversEveryStep(t *testing.T) {
	d, err := NewTwoLevelDriver(2, 2, Disk, TrajectoryMaximum)
	require.NoError(t, err)

	const maxN = int64(4)
	reverses := driveOneReversePass(t, d, maxN)

	require.Len(t, reverses, int(maxN))
	for i, act := range reverses {
		assert.Equal(t, maxN-int64(i), act.N1)
		assert.Equal(t, maxN-int64(i)-1, act.N0)
	}
}

func TestTwoLevelDriver_IsRestartable(t *testing.T) {
	d, err := NewTwoLevelDriver(3, 1, RAM, TrajectoryMaximum)
	require.NoError(t, err)

	const maxN = int64(3)
	first := driveOneReversePass(t, d, maxN)
	require.Len(t, first, int(maxN))

	// A second reverse pass must run to completion again without a fresh
	// FinalizeForward call: the driver loops its reverse phase forever.
	var second []Action
	for len(second) < int(maxN) {
		act, ok, err := d.Next()
		require.NoError(t, err)
		require.True(t, ok)
		if act.Kind == ActionReverse {
			second = append(second, act)
		}
	}
	assert.Len(t, second, int(maxN))
}

func TestTwoLevelDriver_AbandoningMidStreamNeedsNoCleanup(t *testing.T) {
	// The driver holds no goroutine or channel; the consumer may simply
	// stop calling Next() at any point, including mid-forward-phase, with
	// nothing left running in the background.
	d, err := NewTwoLevelDriver(2, 2, Disk, TrajectoryMaximum)
	require.NoError(t, err)

	act, ok, err := d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ActionForward, act.Kind)
	// d simply falls out of scope here; there is no Close method to call.
}
