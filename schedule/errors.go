package schedule

import "errors"

// Sentinel errors for the taxonomy of failures a schedule can raise.
// Callers should use errors.Is against these; the wrapping message carries
// the offending detail.
var (
	// ErrConfig marks a configuration error detected at construction time:
	// non-positive period, invalid storage kind, both slot counts zero, or
	// mismatched cvect/wvect/rvect lengths.
	ErrConfig = errors.New("checkpoint schedule: configuration error")

	// ErrNoMemory marks an impossible schedule: the cost-table recurrence
	// reached l > 0 with K = 0 and m = 0 (no memory anywhere).
	ErrNoMemory = errors.New("checkpoint schedule: no memory available for non-trivial schedule")

	// ErrInvalidSchedule marks an ordering violation detected while the
	// action adapter walks the raw operation stream (unmatched Discard,
	// non-increasing Forwards range, unknown operation kind).
	ErrInvalidSchedule = errors.New("checkpoint schedule: invalid schedule")

	// ErrInvalidCheckpointState marks a divergence between engine state and
	// what the next operation or action presumes.
	ErrInvalidCheckpointState = errors.New("checkpoint schedule: invalid checkpointing state")
)
