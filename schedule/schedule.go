package schedule

// ActionIterator pulls a previously-constructed Schedule's Action stream one
// step at a time. Next returns ok=false once the stream is exhausted for
// good (H-Revolve after its terminal EndReverse) or, for a restartable
// schedule, only when the caller stops pulling.
type ActionIterator interface {
	Next() (Action, bool, error)
}

// Schedule is the public façade over either checkpointing strategy this
// engine builds: a fixed-length H-Revolve schedule or a restartable
// two-level periodic/binomial schedule.
type Schedule interface {
	// Iter returns an ActionIterator over the schedule's Action stream.
	// For H-Revolve each call returns a new iterator that replays the same
	// stream from the start; the two-level schedule returns its single
	// driver on every call, whose reverse phase restarts in place.
	Iter() ActionIterator

	// FinalizeForward tells the schedule the forward pass reached maxN
	// total steps. H-Revolve already knows max_n at construction and
	// treats this as a consistency check; the two-level schedule uses it
	// to end its open-ended forward phase.
	FinalizeForward(maxN int64) error

	// IsExhausted reports whether the schedule can produce further
	// useful output.
	IsExhausted() bool

	// UsesStorageType reports whether the schedule ever places a
	// checkpoint in the given storage.
	UsesStorageType(s StorageType) bool
}
