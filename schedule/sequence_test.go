package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_AppendAndShift(t *testing.T) {
	s := Sequence{Ops: []Operation{NewBackward(0)}}
	s.Append(Sequence{Ops: []Operation{NewForward(0, 1)}})
	require.Len(t, s.Ops, 2)

	s.Shift(3)
	assert.Equal(t, NewBackward(3), s.Ops[0])
	assert.Equal(t, NewForward(3, 4), s.Ops[1])
}

func TestRecurse_BaseCases(t *testing.T) {
	levels := uniformLevels(2, 1)
	ct, err := BuildCostTables(4, levels, Params{Cfwd: 1.0, Cbwd: 2.0})
	require.NoError(t, err)
	b := NewSequenceBuilder(ct)

	seq, err := b.Recurse(0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []Operation{NewBackward(0)}, seq.Ops)

	_, err = b.Recurse(2, 0, 0)
	assert.True(t, errors.Is(err, ErrNoMemory))

	seq, err = b.Recurse(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, unrolledLengthOne(0, 0).Ops, seq.Ops)
}

// countBackwards returns the number of Backward operations in seq. A
// length-l sequence reverses steps 0..l, so the count must equal l+1.
func countBackwards(seq Sequence) int {
	n := 0
	for _, op := range seq.Ops {
		if op.Kind == OpBackward {
			n++
		}
	}
	return n
}

func TestRecurse_ReverseCountMatchesLength(t *testing.T) {
	for _, l := range []int{1, 2, 3, 5, 8} {
		levels := uniformLevels(2, 1)
		ct, err := BuildCostTables(l, levels, Params{Cfwd: 1.0, Cbwd: 2.0})
		require.NoError(t, err)
		b := NewSequenceBuilder(ct)

		topLevel := levels.NumLevels() - 1
		topCap := int(levels.Cvect[topLevel])
		seq, err := b.Recurse(l, topLevel, topCap)
		require.NoError(t, err)
		assert.Equal(t, l+1, countBackwards(seq), "l=%d", l)
	}
}

func TestRecurse_SingleSlotSingleLevel(t *testing.T) {
	// A single RAM slot, no disk: level 0 with its one slot must still
	// resolve every length (not ErrNoMemory).
	levels := uniformLevels(1, 0)
	ct, err := BuildCostTables(3, levels, Params{Cfwd: 1.0, Cbwd: 2.0})
	require.NoError(t, err)
	b := NewSequenceBuilder(ct)

	seq, err := b.Recurse(3, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, countBackwards(seq))
}
