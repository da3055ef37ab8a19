package schedule

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// TwoLevelDriver runs the mixed periodic (disk) / binomial (RAM or disk)
// checkpointing schedule directly as an Action stream, bypassing the
// Operation/adapter split H-Revolve uses. Its reverse phase is an
// unbounded, restartable loop in the original generator; it is emulated
// here the same way actionAdapter emulates H-Revolve's nested generator:
// a plain explicit-state Next(), not a goroutine, so the consumer may stop
// pulling actions at any point without leaking anything.
type TwoLevelDriver struct {
	period            int64
	binomialSnapshots int
	binomialStorage   StorageType
	trajectory        Trajectory

	forwardDone bool
	finalized   bool
	n           int64
	r           int64
	maxN        int64

	n0s       int64
	haveBlock bool
	snapshots []int64

	pending []Action
	err     error
}

// NewTwoLevelDriver validates the two-level schedule's parameters. The
// forward phase begins emitting from the first call to Next(); call
// FinalizeForward once the total step count is known.
func NewTwoLevelDriver(period int64, binomialSnapshots int, binomialStorage StorageType, trajectory Trajectory) (*TwoLevelDriver, error) {
	if period < 1 {
		return nil, fmt.Errorf("period=%d must be positive: %w", period, ErrConfig)
	}
	if binomialStorage != RAM && binomialStorage != Disk {
		return nil, fmt.Errorf("binomial storage %s must be RAM or Disk: %w", binomialStorage, ErrConfig)
	}
	return &TwoLevelDriver{
		period:            period,
		binomialSnapshots: binomialSnapshots,
		binomialStorage:   binomialStorage,
		trajectory:        trajectory,
	}, nil
}

// FinalizeForward tells the driver the forward pass has reached maxN total
// steps. It must be called exactly once, from the same goroutine driving
// Next(), after observing enough Forward actions to cover maxN steps.
func (d *TwoLevelDriver) FinalizeForward(maxN int64) {
	d.maxN = maxN
	d.finalized = true
}

// Next returns the driver's next Action. The driver holds no resources that
// require release, so the consumer may stop calling Next at any point.
func (d *TwoLevelDriver) Next() (Action, bool, error) {
	for len(d.pending) == 0 {
		if d.err != nil {
			return Action{}, false, d.err
		}
		if err := d.step(); err != nil {
			d.err = err
			return Action{}, false, err
		}
	}
	act := d.pending[0]
	d.pending = d.pending[1:]
	return act, true, nil
}

func (d *TwoLevelDriver) emit(acts ...Action) {
	d.pending = append(d.pending, acts...)
}

// step advances the driver by one unit of work, queuing one or more
// Actions onto d.pending.
func (d *TwoLevelDriver) step() error {
	if !d.forwardDone {
		if !d.finalized {
			n0 := d.n
			n1 := n0 + d.period
			d.n = n1
			d.emit(ForwardActionWithStorage(n0, n1, true, false, Disk))
			return nil
		}
		d.forwardDone = true
		d.emit(EndForward())
		return nil
	}

	if !d.haveBlock {
		if d.r >= d.maxN {
			if d.r != d.maxN {
				return fmt.Errorf("two-level: reverse pass did not reach max_n: %w", ErrInvalidCheckpointState)
			}
			d.r = 0
			logrus.Debugf("schedule: two-level reverse pass complete, max_n=%d", d.maxN)
			d.emit(EndReverse(false))
			return nil
		}
		target := d.maxN - d.r - 1
		d.n0s = (target / d.period) * d.period
		n1s := min64(d.n0s+d.period, d.maxN)
		if d.r != d.maxN-n1s {
			return fmt.Errorf("two-level: reverse offset mismatch: %w", ErrInvalidCheckpointState)
		}
		d.snapshots = []int64{d.n0s}
		d.haveBlock = true
	}

	if d.r >= d.maxN-d.n0s {
		if d.r != d.maxN-d.n0s {
			return fmt.Errorf("two-level: reverse block did not complete: %w", ErrInvalidCheckpointState)
		}
		if len(d.snapshots) != 0 {
			return fmt.Errorf("two-level: leftover binomial snapshots: %w", ErrInvalidCheckpointState)
		}
		d.haveBlock = false
		return nil
	}

	if len(d.snapshots) == 0 {
		return fmt.Errorf("two-level: snapshot stack empty mid-block: %w", ErrInvalidCheckpointState)
	}
	cpN := d.snapshots[len(d.snapshots)-1]
	if cpN == d.maxN-d.r-1 {
		d.snapshots = d.snapshots[:len(d.snapshots)-1]
		d.n = cpN
		if cpN == d.n0s {
			d.emit(CopyAction(cpN, Disk, FwdRestart))
		} else {
			d.emit(MoveAction(cpN, d.binomialStorage, FwdRestart))
		}
	} else {
		d.n = cpN
		if cpN == d.n0s {
			d.emit(CopyAction(cpN, Disk, FwdRestart))
		} else {
			d.emit(CopyAction(cpN, d.binomialStorage, FwdRestart))
		}

		budget := d.binomialSnapshots + 1 - len(d.snapshots) + 1
		steps, err := NAdvance(int(d.maxN-d.r-d.n), budget, d.trajectory)
		if err != nil {
			return err
		}
		n0, n1 := d.n, d.n+int64(steps)
		d.n = n1
		d.emit(ForwardActionWithStorage(n0, n1, false, false, FwdRestart))

		for d.n < d.maxN-d.r-1 {
			budget := d.binomialSnapshots + 1 - len(d.snapshots)
			n0 := d.n
			steps, err := NAdvance(int(d.maxN-d.r-n0), budget, d.trajectory)
			if err != nil {
				return err
			}
			n1 := n0 + int64(steps)
			d.n = n1
			d.emit(ForwardActionWithStorage(n0, n1, true, false, d.binomialStorage))
			if len(d.snapshots) >= d.binomialSnapshots+1 {
				return fmt.Errorf("two-level: binomial snapshot budget exceeded: %w", ErrInvalidCheckpointState)
			}
			d.snapshots = append(d.snapshots, n0)
		}
		if d.n != d.maxN-d.r-1 {
			return fmt.Errorf("two-level: binomial advance overshoot: %w", ErrInvalidCheckpointState)
		}
	}

	d.n++
	d.emit(ForwardActionWithStorage(d.n-1, d.n, false, true, AdjDeps))
	d.r++
	d.emit(ReverseAction(d.n, d.n-1, true))
	return nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
