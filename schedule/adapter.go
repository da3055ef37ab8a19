package schedule

import "fmt"

// deferredCheckpoint holds a pending Write until the adapter knows whether
// it must be flushed immediately (the write is followed by a read of the
// same step, meaning the write is needed right away) or can wait until the
// next checkpoint event forces it out.
type deferredCheckpoint struct {
	n       int64
	storage StorageType
}

// actionAdapter walks an already-built Operation sequence (Component B's
// output) and translates it into the public Action stream, validating the
// ordering invariants H-Revolve's raw schedule is expected to satisfy. It
// is a plain explicit-state iterator rather than a goroutine: its input is
// fully materialized up front, so there is no restartable/unbounded
// generation to emulate.
//
// Write_Forward and Discard_Forward markers are dropped from the operation
// list at construction time: their effect is folded into the surrounding
// Backward action and they never become addressable Read/Write/Discard
// lookahead targets.
type actionAdapter struct {
	ops  []Operation
	pos  int
	n    int64
	r    int64
	maxN int64

	snapshots map[int64]bool
	deferred  *deferredCheckpoint
	pending   []Action
	done      bool
}

func newActionAdapter(ops []Operation, maxN int64) *actionAdapter {
	filtered := make([]Operation, 0, len(ops))
	for i := 0; i < len(ops); i++ {
		op := ops[i]
		if op.Kind == OpWriteForward || op.Kind == OpDiscardForward {
			continue
		}
		// A Backward sandwiched directly between Write_Forward and
		// Discard_Forward is itself part of that internal marker block: it
		// re-derives the adjoint for a step already being held live by the
		// surrounding Forward/Backward pair, not a reverse step the adapter
		// should turn into a Reverse action. Only the other Backward in an
		// unrolled block (flanked by Read/Discard) satisfies n0 == maxN-r-1.
		if op.Kind == OpBackward && i > 0 && i < len(ops)-1 &&
			ops[i-1].Kind == OpWriteForward && ops[i+1].Kind == OpDiscardForward {
			continue
		}
		filtered = append(filtered, op)
	}
	return &actionAdapter{ops: filtered, maxN: maxN, snapshots: make(map[int64]bool)}
}

// Next returns the adapter's next Action, or ok=false once the stream is
// exhausted (only after the terminal EndReverse(true)).
func (a *actionAdapter) Next() (Action, bool, error) {
	for len(a.pending) == 0 {
		if a.done {
			return Action{}, false, nil
		}
		if err := a.step(); err != nil {
			return Action{}, false, err
		}
	}
	act := a.pending[0]
	a.pending = a.pending[1:]
	return act, true, nil
}

func (a *actionAdapter) emit(acts ...Action) {
	a.pending = append(a.pending, acts...)
}

func (a *actionAdapter) flushDeferred() {
	if a.deferred == nil {
		return
	}
	a.snapshots[a.deferred.n] = true
	a.emit(WriteAction(a.deferred.n, a.deferred.storage))
	a.deferred = nil
}

func forwardBounds(op Operation) (int64, int64, error) {
	n0, n1 := int64(op.From()), int64(op.To())
	if n1 <= n0 {
		return 0, 0, fmt.Errorf("forward operation has n1=%d <= n0=%d: %w", n1, n0, ErrInvalidSchedule)
	}
	return n0, n1, nil
}

// step advances the adapter by exactly one raw Operation, queuing zero or
// more Actions onto a.pending.
func (a *actionAdapter) step() error {
	if a.pos >= len(a.ops) {
		if len(a.snapshots) != 0 {
			return fmt.Errorf("schedule ended with %d live snapshots: %w", len(a.snapshots), ErrInvalidCheckpointState)
		}
		a.emit(Clear(true, true))
		a.done = true
		a.emit(EndReverse(true))
		return nil
	}

	i := a.pos
	op := a.ops[i]
	a.pos++

	switch op.Kind {
	case OpForward:
		n0, n1, err := forwardBounds(op)
		if err != nil {
			return err
		}
		if n0 != a.n {
			return fmt.Errorf("forward from %d but engine is at %d: %w", n0, a.n, ErrInvalidCheckpointState)
		}
		a.emit(Clear(true, true), Configure(!a.snapshots[n0], false))
		a.n = n1
		a.emit(ForwardAction(n0, n1))

	case OpBackward:
		n0 := int64(op.Step())
		if n0 != a.n {
			return fmt.Errorf("backward at %d but engine is at %d: %w", n0, a.n, ErrInvalidCheckpointState)
		}
		if n0 != a.maxN-a.r-1 {
			return fmt.Errorf("backward at %d out of reverse order (r=%d): %w", n0, a.r, ErrInvalidCheckpointState)
		}
		a.flushDeferred()
		a.emit(Clear(true, true), Configure(false, true))
		a.n = n0 + 1
		a.emit(ForwardAction(n0, n0+1))
		if a.n == a.maxN {
			if a.r != 0 {
				return fmt.Errorf("forward pass completed mid-reverse (r=%d): %w", a.r, ErrInvalidCheckpointState)
			}
			a.emit(EndForward())
		}
		a.r++
		a.emit(ReverseAction(n0+1, n0, true))

	case OpRead:
		storage := levelStorage(op.Level())
		n0 := int64(op.At())
		if a.deferred != nil {
			if a.deferred.n != n0 || a.deferred.storage != storage {
				return fmt.Errorf("read at %d while a different write is still deferred: %w", n0, ErrInvalidCheckpointState)
			}
			// Reading back the step a still-buffered write targets: the
			// value never left working memory, so materialize the write
			// (for snapshot bookkeeping) before treating the read as a hit.
			a.flushDeferred()
		}
		cpDelete := n0 == a.maxN-a.r-1
		if !cpDelete && i < len(a.ops)-2 {
			if d := a.ops[i+2]; d.Kind == OpDiscard {
				if int64(d.At()) != n0 || levelStorage(d.Level()) != storage {
					return fmt.Errorf("read at %d does not match its paired discard: %w", n0, ErrInvalidSchedule)
				}
				cpDelete = true
			}
		}
		a.emit(Clear(true, true))
		if cpDelete {
			delete(a.snapshots, n0)
		}
		a.n = n0
		a.emit(ReadAction(n0, storage, cpDelete))

	case OpWrite:
		n0 := int64(op.At())
		if n0 != a.n {
			return fmt.Errorf("write at %d but engine is at %d: %w", n0, a.n, ErrInvalidCheckpointState)
		}
		a.flushDeferred()
		a.deferred = &deferredCheckpoint{n: n0, storage: levelStorage(op.Level())}
		if i > 0 {
			if prev := a.ops[i-1]; prev.Kind == OpRead {
				if int64(prev.At()) != n0 {
					return fmt.Errorf("write at %d does not follow its own read: %w", n0, ErrInvalidSchedule)
				}
				a.flushDeferred()
			}
		}

	case OpDiscard:
		if i < 2 {
			return fmt.Errorf("discard at position %d has no preceding read: %w", i, ErrInvalidSchedule)
		}
		storage := levelStorage(op.Level())
		n0 := int64(op.At())
		prev := a.ops[i-2]
		if prev.Kind != OpRead || int64(prev.At()) != n0 || levelStorage(prev.Level()) != storage {
			return fmt.Errorf("discard at %d does not match a prior read: %w", n0, ErrInvalidSchedule)
		}

	default:
		return fmt.Errorf("unexpected operation kind %s in schedule: %w", op.Kind, ErrInvalidSchedule)
	}
	return nil
}
