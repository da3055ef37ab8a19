package schedule

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sequence is a flat, ordered list of Operations realizing a schedule.
// Sub-sequences are always spliced in flat: the "concat" presentation knob
// (Params.Concat) is not read here, and no nesting or splice depth is
// recorded. Component E consumes Ops directly.
type Sequence struct {
	Ops []Operation
}

// Append concatenates other's operations onto s, in place.
func (s *Sequence) Append(other Sequence) {
	s.Ops = append(s.Ops, other.Ops...)
}

// Shift adds delta to every step index in every contained operation.
func (s *Sequence) Shift(delta int) {
	for i := range s.Ops {
		s.Ops[i] = s.Ops[i].Shifted(delta)
	}
}

// SequenceBuilder recursively emits the H-Revolve operation sequence
// (Component B) from a pre-built CostTables. The tables are shared,
// read-only state across every recursive call, per the design note that
// the DP tables must not be recomputed per call.
type SequenceBuilder struct {
	ct     *CostTables
	levels LevelVectors
	cfwd   float64
	cbwd   float64
}

// NewSequenceBuilder builds a SequenceBuilder over an already-computed
// CostTables.
func NewSequenceBuilder(ct *CostTables) *SequenceBuilder {
	return &SequenceBuilder{
		ct:     ct,
		levels: ct.Params.Levels,
		cfwd:   ct.Params.Cfwd,
		cbwd:   ct.Params.Cbwd,
	}
}

// unrolledLengthOne is the fixed 8-operation schedule for a single-step
// reversal, reused (with different Read targets) by Recurse and Aux.
func unrolledLengthOne(writeLevel, readLevel int) Sequence {
	ops := []Operation{
		NewWrite(writeLevel, 0),
		NewForward(0, 1),
		NewWriteForward(0, 1),
		NewBackward(1),
		NewDiscardForward(0, 1),
		NewRead(readLevel, 0),
		NewBackward(0),
		NewDiscard(readLevel, 0),
	}
	return Sequence{Ops: ops}
}

// Recurse is the top-level entry for an un-prefixed length-l problem at
// level k with m free slots.
func (b *SequenceBuilder) Recurse(l, k, m int) (Sequence, error) {
	if l == 0 {
		return Sequence{Ops: []Operation{NewBackward(0)}}, nil
	}
	if k == 0 && m == 0 {
		return Sequence{}, fmt.Errorf("recurse(l=%d,k=0,m=0): %w", l, ErrNoMemory)
	}
	if l == 1 {
		return unrolledLengthOne(0, 0), nil
	}
	if k == 0 {
		seq := Sequence{Ops: []Operation{NewWrite(0, 0)}}
		sub, err := b.Aux(l, 0, m)
		if err != nil {
			return Sequence{}, err
		}
		seq.Append(sub)
		return seq, nil
	}

	fallbackCap := int(b.levels.Cvect[k-1])
	withWrite := b.levels.Wvect[k] + b.ct.OptP[k][l][m]
	skip := b.ct.Opt[k-1][l][fallbackCap]
	logrus.Debugf("recurse(l=%d,k=%d,m=%d): write-cost=%.4g skip-cost=%.4g", l, k, m, withWrite, skip)
	if withWrite < skip {
		seq := Sequence{Ops: []Operation{NewWrite(k, 0)}}
		sub, err := b.Aux(l, k, m)
		if err != nil {
			return Sequence{}, err
		}
		seq.Append(sub)
		return seq, nil
	}
	return b.Recurse(l, k-1, fallbackCap)
}

// Aux is Recurse's counterpart assuming a checkpoint has already been
// written at level k for step 0.
func (b *SequenceBuilder) Aux(l, k, m int) (Sequence, error) {
	if l == 0 {
		return Sequence{Ops: []Operation{NewBackward(0)}}, nil
	}
	if l == 1 {
		// A checkpoint for step 0 is assumed already held at level k by
		// the caller; only write a cheaper level-0 copy when that beats
		// reading back from k. The final Discard always targets level 0,
		// matching the original source's literal (and asymmetric) form.
		cheap := b.levels.Wvect[0]+b.levels.Rvect[0] < b.levels.Rvect[k]
		var ops []Operation
		if cheap {
			ops = append(ops, NewWrite(0, 0))
		}
		ops = append(ops,
			NewForward(0, 1),
			NewWriteForward(0, 1),
			NewBackward(1),
			NewDiscardForward(0, 1),
		)
		if cheap {
			ops = append(ops, NewRead(0, 0))
		} else {
			ops = append(ops, NewRead(k, 0))
		}
		ops = append(ops, NewBackward(0), NewDiscard(0, 0))
		return Sequence{Ops: ops}, nil
	}
	if k == 0 && m == 1 {
		var ops []Operation
		for index := l - 1; index >= 0; index-- {
			if index < l-1 {
				ops = append(ops, NewRead(0, 0))
			}
			ops = append(ops,
				NewForward(0, index+1),
				NewWriteForward(0, index+1),
				NewBackward(index+1),
				NewDiscardForward(0, index+1),
			)
		}
		ops = append(ops, NewRead(0, 0), NewBackward(0), NewDiscard(0, 0))
		return Sequence{Ops: ops}, nil
	}
	if k == 0 {
		jmin, minVal := argminFrom1(l, func(j int) float64 {
			return float64(j)*b.cfwd + b.ct.Opt[0][l-j][m-1] + b.levels.Rvect[0] + b.ct.OptP[0][j-1][m]
		})
		if minVal < b.ct.OptP[0][l][1] {
			seq := Sequence{Ops: []Operation{NewForward(0, jmin)}}
			sub, err := b.Recurse(l-jmin, 0, m-1)
			if err != nil {
				return Sequence{}, err
			}
			sub.Shift(jmin)
			seq.Append(sub)
			seq.Ops = append(seq.Ops, NewRead(0, 0))
			tail, err := b.Aux(jmin-1, 0, m)
			if err != nil {
				return Sequence{}, err
			}
			seq.Append(tail)
			return seq, nil
		}
		return b.Aux(l, 0, 1)
	}

	// k >= 1
	jmin, minVal := argminFrom1(l, func(j int) float64 {
		return float64(j)*b.cfwd + b.ct.Opt[k][l-j][m-1] + b.levels.Rvect[k] + b.ct.OptP[k][j-1][m]
	})
	fallbackCap := int(b.levels.Cvect[k-1])
	skip := b.ct.Opt[k-1][l][fallbackCap]
	if minVal < skip {
		// The source's aux branch for k >= 1 uses index = jmin-1 here,
		// unlike the k = 0 branch's jmin. Preserved verbatim per the
		// design note: treat as intentional, not a bug to "fix".
		seq := Sequence{Ops: []Operation{NewForward(0, jmin-1)}}
		sub, err := b.Recurse(l-jmin, k, m-1)
		if err != nil {
			return Sequence{}, err
		}
		sub.Shift(jmin)
		seq.Append(sub)
		seq.Ops = append(seq.Ops, NewRead(k, 0))
		tail, err := b.Aux(jmin-1, k, m)
		if err != nil {
			return Sequence{}, err
		}
		seq.Append(tail)
		return seq, nil
	}
	return b.Recurse(l, k-1, fallbackCap)
}
