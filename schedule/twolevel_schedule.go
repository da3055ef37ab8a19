package schedule

import "fmt"

// TwoLevelSchedule is the public façade over the mixed periodic/binomial
// driver: online, restartable, and usable for an unbounded number of
// reverse passes once the forward pass length is known.
type TwoLevelSchedule struct {
	driver          *TwoLevelDriver
	binomialStorage StorageType
}

// NewTwoLevelSchedule starts a two-level schedule's forward phase
// immediately; the caller must call FinalizeForward once the total step
// count is known.
func NewTwoLevelSchedule(period int64, binomialSnapshots int, binomialStorage StorageType, trajectory Trajectory) (*TwoLevelSchedule, error) {
	driver, err := NewTwoLevelDriver(period, binomialSnapshots, binomialStorage, trajectory)
	if err != nil {
		return nil, err
	}
	return &TwoLevelSchedule{driver: driver, binomialStorage: binomialStorage}, nil
}

// Iter returns the schedule's single, long-lived ActionIterator: the
// two-level driver is its own iterator, since its reverse phase restarts
// in place rather than producing a fresh stream per call.
func (t *TwoLevelSchedule) Iter() ActionIterator { return t.driver }

// FinalizeForward tells the driver the forward pass reached maxN steps,
// ending the open-ended periodic forward phase.
func (t *TwoLevelSchedule) FinalizeForward(maxN int64) error {
	if maxN <= 0 {
		return fmt.Errorf("max_n=%d must be positive: %w", maxN, ErrConfig)
	}
	t.driver.FinalizeForward(maxN)
	return nil
}

// IsExhausted is always false: a two-level schedule can run an unbounded
// number of reverse passes.
func (t *TwoLevelSchedule) IsExhausted() bool { return false }

// UsesStorageType reports whether the schedule ever places a checkpoint in
// the given storage kind.
func (t *TwoLevelSchedule) UsesStorageType(s StorageType) bool {
	switch s {
	case Disk, FwdRestart, AdjDeps:
		return true
	case RAM:
		return t.binomialStorage == RAM
	default:
		return false
	}
}

// UsesDiskStorage reports whether this schedule ever places a checkpoint on
// disk. A two-level schedule always writes its periodic checkpoints to
// disk, independent of where its binomial checkpoints live.
func (t *TwoLevelSchedule) UsesDiskStorage() bool { return true }
