package schedule

import "fmt"

// StorageType identifies where a checkpoint, or a piece of live solver
// state, resides. RAM and Disk are persistent checkpoint levels; FwdRestart
// and AdjDeps are ephemeral slots scoped to a single forward/adjoint step.
type StorageType int

const (
	// RAM is the fastest persistent checkpoint level (level index 0).
	RAM StorageType = iota
	// Disk is the slowest persistent checkpoint level (level index 1 in the
	// two-level schemes this engine targets).
	Disk
	// FwdRestart holds the live forward state used to restart the forward
	// solver; it is never a DP-table level, only an action-protocol target.
	FwdRestart
	// AdjDeps holds the state captured at a step for that step's adjoint.
	AdjDeps
)

func (s StorageType) String() string {
	switch s {
	case RAM:
		return "RAM"
	case Disk:
		return "Disk"
	case FwdRestart:
		return "FwdRestart"
	case AdjDeps:
		return "AdjDeps"
	default:
		return fmt.Sprintf("StorageType(%d)", int(s))
	}
}

// levelStorage maps a DP-table level index (0 = fastest) to its StorageType.
// H-Revolve only ever indexes two persistent levels; the engine is written
// generically over K levels but the façade in hrevolve.go fixes K=2.
func levelStorage(level int) StorageType {
	if level == 0 {
		return RAM
	}
	return Disk
}

func storageLevel(s StorageType) (int, error) {
	switch s {
	case RAM:
		return 0, nil
	case Disk:
		return 1, nil
	default:
		return 0, fmt.Errorf("storage type %s has no DP-table level: %w", s, ErrConfig)
	}
}

// LevelVectors groups the per-level memory-hierarchy parameters shared by
// the cost-table builder (Component A) and the sequence builder
// (Component B): slot capacity, write cost, and read cost, one entry per
// level, fastest first.
type LevelVectors struct {
	Cvect []int64   // slot capacity per level
	Wvect []float64 // write cost per level
	Rvect []float64 // read cost per level
}

// NumLevels returns K, the number of memory-hierarchy levels.
func (v LevelVectors) NumLevels() int { return len(v.Cvect) }

// Validate checks the length-matching and non-negativity invariants spec'd
// for a configuration error (cvect/wvect/rvect length mismatch, negative
// slot counts).
func (v LevelVectors) Validate() error {
	if len(v.Cvect) == 0 {
		return fmt.Errorf("cvect must name at least one level: %w", ErrConfig)
	}
	if len(v.Wvect) != len(v.Cvect) || len(v.Rvect) != len(v.Cvect) {
		return fmt.Errorf("cvect/wvect/rvect length mismatch (%d/%d/%d): %w",
			len(v.Cvect), len(v.Wvect), len(v.Rvect), ErrConfig)
	}
	for k, c := range v.Cvect {
		if c < 0 {
			return fmt.Errorf("cvect[%d]=%d must be non-negative: %w", k, c, ErrConfig)
		}
	}
	return nil
}

// Params groups the scalar and per-level costs used by both the cost-table
// builder and the sequence builder, matching the "Configuration recognized
// by cost/sequence builders" keyword bag in the external interfaces.
type Params struct {
	Cfwd   float64 // forward step cost, default uf = 1.0
	Cbwd   float64 // backward step cost, default ub = 2.0
	Concat int     // accepted for the keyword bag; not read: sequences are always flat
	Levels LevelVectors
}

// Wd and Rd echo the write/read vectors into params for inspection, per the
// external-interfaces keyword bag (wd, rd).
func (p Params) Wd() []float64 { return p.Levels.Wvect }
func (p Params) Rd() []float64 { return p.Levels.Rvect }
