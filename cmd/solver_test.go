package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrevolve-go/hrevolve/schedule"
)

// fakeIterator replays a fixed Action slice, the same shape a real
// schedule.ActionIterator produces, without needing a built schedule.
type fakeIterator struct {
	acts []schedule.Action
	pos  int
}

func (f *fakeIterator) Next() (schedule.Action, bool, error) {
	if f.pos >= len(f.acts) {
		return schedule.Action{}, false, nil
	}
	a := f.acts[f.pos]
	f.pos++
	return a, true, nil
}

func TestToySolver_DriveAppliesForwardAndReverse(t *testing.T) {
	it := &fakeIterator{acts: []schedule.Action{
		schedule.ForwardAction(0, 3),
		schedule.WriteAction(0, schedule.RAM),
		schedule.ReadAction(0, schedule.RAM, true),
		schedule.ReverseAction(3, 0, true),
		schedule.EndReverse(true),
	}}

	s := NewToySolver()
	require.NoError(t, s.Drive(it, 1))
	assert.Equal(t, 1, s.reverseSteps)
	assert.Equal(t, 1, s.actionCounts[schedule.ActionEndReverse])
}

func TestToySolver_DriveStopsAtMaxPasses(t *testing.T) {
	acts := []schedule.Action{
		schedule.ForwardAction(0, 1),
		schedule.ReverseAction(1, 0, true),
		schedule.EndReverse(false),
		schedule.ForwardAction(0, 1),
		schedule.ReverseAction(1, 0, true),
		schedule.EndReverse(false),
	}
	it := &fakeIterator{acts: acts}

	s := NewToySolver()
	require.NoError(t, s.Drive(it, 1))
	assert.Equal(t, 1, s.actionCounts[schedule.ActionEndReverse])
}

func TestToySolver_ReadMissingCheckpointErrors(t *testing.T) {
	it := &fakeIterator{acts: []schedule.Action{
		schedule.ReadAction(0, schedule.RAM, true),
	}}
	s := NewToySolver()
	assert.Error(t, s.Drive(it, 1))
}
