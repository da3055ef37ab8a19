// cmd/solver.go
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hrevolve-go/hrevolve/schedule"
)

// ToySolver drives a schedule.ActionIterator against a minimal stand-in
// forward/adjoint pair: forward advances a scalar state by a fixed
// increment per step, reverse accumulates a scalar "gradient" by summing
// the state it finds live at each step. It exists to exercise every Action
// kind end to end, not to model a real simulation.
type ToySolver struct {
	state       float64
	adjoint     float64
	checkpoints map[int64]map[schedule.StorageType]float64

	actionCounts map[schedule.ActionKind]int
	reverseSteps int
}

// NewToySolver returns a solver starting at state 0.
func NewToySolver() *ToySolver {
	return &ToySolver{
		checkpoints:  make(map[int64]map[schedule.StorageType]float64),
		actionCounts: make(map[schedule.ActionKind]int),
	}
}

// Drive pulls actions from iter until the stream ends, applying each one to
// the toy solver. It stops when Next reports ok=false (H-Revolve's natural
// termination), or once maxPasses EndReverse actions have been seen
// (needed for a restartable two-level schedule, which never ends on its
// own); maxPasses <= 0 means unlimited.
func (s *ToySolver) Drive(iter schedule.ActionIterator, maxPasses int) error {
	passes := 0
	for {
		act, ok, err := iter.Next()
		if err != nil {
			return fmt.Errorf("driving schedule: %w", err)
		}
		if !ok {
			return nil
		}
		s.actionCounts[act.Kind]++
		if err := s.apply(act); err != nil {
			return err
		}
		if act.Kind == schedule.ActionEndReverse {
			passes++
			if act.Exhausted || (maxPasses > 0 && passes >= maxPasses) {
				return nil
			}
		}
	}
}

func (s *ToySolver) apply(act schedule.Action) error {
	logrus.Debugf("solver: %s", act)
	switch act.Kind {
	case schedule.ActionClear:
		// Nothing to free in the toy model; the real consumer would drop
		// cached ICs/adjoint data here.
	case schedule.ActionConfigure:
		// No-op: the toy forward step is cheap enough to always recompute.
	case schedule.ActionForward:
		for n := act.N0; n < act.N1; n++ {
			s.state += 1.0
		}
	case schedule.ActionReverse:
		s.adjoint += s.state
		s.reverseSteps++
	case schedule.ActionRead:
		level, ok := s.checkpoints[act.N]
		if !ok {
			return fmt.Errorf("solver: read of step %d found no checkpoint", act.N)
		}
		v, ok := level[act.Storage]
		if !ok {
			return fmt.Errorf("solver: read of step %d found nothing at %s", act.N, act.Storage)
		}
		s.state = v
		if act.Delete {
			delete(level, act.Storage)
			if len(level) == 0 {
				delete(s.checkpoints, act.N)
			}
		}
	case schedule.ActionWrite:
		s.store(act.N, act.Storage, s.state)
	case schedule.ActionCopy:
		v, err := s.fetch(act.N, act.From)
		if err != nil {
			return err
		}
		s.store(act.N, act.To, v)
	case schedule.ActionMove:
		v, err := s.fetch(act.N, act.From)
		if err != nil {
			return err
		}
		s.store(act.N, act.To, v)
		delete(s.checkpoints[act.N], act.From)
	case schedule.ActionEndForward, schedule.ActionEndReverse:
		// Pass through; summarized by the caller.
	}
	return nil
}

func (s *ToySolver) store(n int64, storage schedule.StorageType, v float64) {
	level, ok := s.checkpoints[n]
	if !ok {
		level = make(map[schedule.StorageType]float64)
		s.checkpoints[n] = level
	}
	level[storage] = v
}

func (s *ToySolver) fetch(n int64, storage schedule.StorageType) (float64, error) {
	level, ok := s.checkpoints[n]
	if !ok {
		return 0, fmt.Errorf("solver: no checkpoint at step %d", n)
	}
	v, ok := level[storage]
	if !ok {
		return 0, fmt.Errorf("solver: step %d has nothing at %s", n, storage)
	}
	return v, nil
}

// Summary reports the toy solver's final counters.
func (s *ToySolver) Summary() string {
	return fmt.Sprintf("reverse_steps=%d adjoint=%.4g actions=%v", s.reverseSteps, s.adjoint, s.actionCounts)
}
