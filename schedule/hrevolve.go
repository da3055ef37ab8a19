package schedule

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// HRevolveSchedule is the optimal, DP-derived checkpointing schedule for a
// forward pass of exactly maxN steps over two memory levels (RAM, then
// disk). It is built once, fully, at construction time; every iteration
// replays the same action stream, ending in EndReverse(true).
type HRevolveSchedule struct {
	maxN            int64
	snapshotsOnDisk int
	ops             []Operation
	exhausted       bool
}

// NewHRevolveSchedule builds the cost tables and the full operation
// sequence for an H-Revolve schedule over maxN steps. wvect/rvect are
// per-level (RAM, disk) write/read costs; cfwd/cbwd are the scalar
// forward/backward step costs.
func NewHRevolveSchedule(maxN int64, snapshotsInRAM, snapshotsOnDisk int, wvect, rvect [2]float64, cfwd, cbwd float64) (*HRevolveSchedule, error) {
	if maxN <= 0 {
		return nil, fmt.Errorf("max_n=%d must be positive: %w", maxN, ErrConfig)
	}
	if snapshotsInRAM < 0 || snapshotsOnDisk < 0 {
		return nil, fmt.Errorf("snapshot counts must be non-negative (ram=%d, disk=%d): %w", snapshotsInRAM, snapshotsOnDisk, ErrConfig)
	}
	if snapshotsInRAM == 0 && snapshotsOnDisk == 0 {
		return nil, fmt.Errorf("at least one of ram/disk snapshot slots must be positive: %w", ErrConfig)
	}

	levels := LevelVectors{
		Cvect: []int64{int64(snapshotsInRAM), int64(snapshotsOnDisk)},
		Wvect: []float64{wvect[0], wvect[1]},
		Rvect: []float64{rvect[0], rvect[1]},
	}
	params := Params{Cfwd: cfwd, Cbwd: cbwd, Levels: levels}

	ct, err := BuildCostTables(int(maxN), levels, params)
	if err != nil {
		return nil, err
	}

	topLevel := levels.NumLevels() - 1
	builder := NewSequenceBuilder(ct)
	seq, err := builder.Recurse(int(maxN), topLevel, int(levels.Cvect[topLevel]))
	if err != nil {
		return nil, err
	}

	logrus.Debugf("schedule: built h-revolve schedule max_n=%d ram=%d disk=%d ops=%d",
		maxN, snapshotsInRAM, snapshotsOnDisk, len(seq.Ops))

	return &HRevolveSchedule{
		maxN:            maxN,
		snapshotsOnDisk: snapshotsOnDisk,
		ops:             seq.Ops,
	}, nil
}

// hrevolveIterator wraps the action adapter to flip the owning schedule's
// exhausted flag once the stream legitimately runs dry.
type hrevolveIterator struct {
	inner *actionAdapter
	owner *HRevolveSchedule
}

func (it *hrevolveIterator) Next() (Action, bool, error) {
	act, ok, err := it.inner.Next()
	if !ok && err == nil {
		it.owner.exhausted = true
	}
	return act, ok, err
}

// Iter returns an ActionIterator over the schedule. Each call builds a new
// adapter with its own engine position over the same materialized
// operation list, so a second call replays the identical action stream
// from the start; IsExhausted stays true once any iterator has run dry.
func (h *HRevolveSchedule) Iter() ActionIterator {
	return &hrevolveIterator{inner: newActionAdapter(h.ops, h.maxN), owner: h}
}

// FinalizeForward is a consistency check: H-Revolve already knows max_n at
// construction time, so finalizing with a different value is an error.
func (h *HRevolveSchedule) FinalizeForward(maxN int64) error {
	if maxN != h.maxN {
		return fmt.Errorf("h-revolve schedule built for max_n=%d, finalized with %d: %w", h.maxN, maxN, ErrInvalidCheckpointState)
	}
	return nil
}

// IsExhausted reports whether the schedule's single action stream has run
// to its terminal EndReverse.
func (h *HRevolveSchedule) IsExhausted() bool { return h.exhausted }

// UsesStorageType reports whether the schedule ever places a checkpoint in
// the given storage kind.
func (h *HRevolveSchedule) UsesStorageType(s StorageType) bool {
	switch s {
	case RAM, FwdRestart, AdjDeps:
		return true
	case Disk:
		return h.snapshotsOnDisk > 0
	default:
		return false
	}
}

// UsesDiskStorage reports whether this schedule was configured with any
// disk checkpoint slots.
func (h *HRevolveSchedule) UsesDiskStorage() bool { return h.snapshotsOnDisk > 0 }
