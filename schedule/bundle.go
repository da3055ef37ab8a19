package schedule

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScheduleBundle is the on-disk configuration selecting and parameterizing
// one of the two checkpointing strategies this engine builds. Only the
// section matching Strategy is consulted.
type ScheduleBundle struct {
	Strategy string `yaml:"strategy"`

	HRevolve HRevolveConfig `yaml:"hrevolve"`
	TwoLevel TwoLevelConfig `yaml:"two_level"`
}

// HRevolveConfig parameterizes an H-Revolve schedule build.
type HRevolveConfig struct {
	MaxN             int64   `yaml:"max_n"`
	SnapshotsInRAM   int     `yaml:"snapshots_in_ram"`
	SnapshotsOnDisk  int     `yaml:"snapshots_on_disk"`
	WriteCostRAM     float64 `yaml:"write_cost_ram"`
	WriteCostDisk    float64 `yaml:"write_cost_disk"`
	ReadCostRAM      float64 `yaml:"read_cost_ram"`
	ReadCostDisk     float64 `yaml:"read_cost_disk"`
	ForwardStepCost  float64 `yaml:"forward_step_cost"`
	BackwardStepCost float64 `yaml:"backward_step_cost"`
}

// TwoLevelConfig parameterizes a two-level schedule build.
type TwoLevelConfig struct {
	Period             int64  `yaml:"period"`
	BinomialSnapshots  int    `yaml:"binomial_snapshots"`
	BinomialStorage    string `yaml:"binomial_storage"`
	BinomialTrajectory string `yaml:"binomial_trajectory"`
}

var (
	validStrategies       = map[string]bool{"hrevolve": true, "two-level": true}
	validBinomialStorages = map[string]bool{"RAM": true, "disk": true}
)

// LoadScheduleBundle reads and strictly parses a YAML schedule configuration
// file, rejecting unrecognized keys, then validates it.
func LoadScheduleBundle(path string) (*ScheduleBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule config: %w", err)
	}
	var bundle ScheduleBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing schedule config: %v: %w", err, ErrConfig)
	}
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// Validate checks the selected strategy's section for configuration errors
// before a Schedule is built from it.
func (b *ScheduleBundle) Validate() error {
	if !validStrategies[b.Strategy] {
		return fmt.Errorf("unknown strategy %q; valid options: hrevolve, two-level: %w", b.Strategy, ErrConfig)
	}
	switch b.Strategy {
	case "hrevolve":
		if b.HRevolve.MaxN <= 0 {
			return fmt.Errorf("hrevolve.max_n must be positive: %w", ErrConfig)
		}
		if b.HRevolve.SnapshotsInRAM < 0 || b.HRevolve.SnapshotsOnDisk < 0 {
			return fmt.Errorf("hrevolve snapshot counts must be non-negative: %w", ErrConfig)
		}
		if b.HRevolve.SnapshotsInRAM == 0 && b.HRevolve.SnapshotsOnDisk == 0 {
			return fmt.Errorf("hrevolve must have at least one of snapshots_in_ram/snapshots_on_disk positive: %w", ErrConfig)
		}
	case "two-level":
		if b.TwoLevel.Period < 1 {
			return fmt.Errorf("two_level.period must be positive: %w", ErrConfig)
		}
		if b.TwoLevel.BinomialSnapshots < 1 {
			return fmt.Errorf("two_level.binomial_snapshots must be positive: %w", ErrConfig)
		}
		if !validBinomialStorages[b.TwoLevel.BinomialStorage] {
			return fmt.Errorf("two_level.binomial_storage must be RAM or disk, got %q: %w", b.TwoLevel.BinomialStorage, ErrConfig)
		}
	}
	return nil
}

// Build constructs the Schedule the bundle describes.
func (b *ScheduleBundle) Build() (Schedule, error) {
	switch b.Strategy {
	case "hrevolve":
		c := b.HRevolve
		fwd, bwd := c.ForwardStepCost, c.BackwardStepCost
		if fwd == 0 {
			fwd = 1.0
		}
		if bwd == 0 {
			bwd = 2.0
		}
		return NewHRevolveSchedule(c.MaxN, c.SnapshotsInRAM, c.SnapshotsOnDisk,
			[2]float64{c.WriteCostRAM, c.WriteCostDisk},
			[2]float64{c.ReadCostRAM, c.ReadCostDisk}, fwd, bwd)
	case "two-level":
		c := b.TwoLevel
		storage := RAM
		if c.BinomialStorage == "disk" {
			storage = Disk
		}
		trajectory := TrajectoryMaximum
		if c.BinomialTrajectory != "" {
			trajectory = Trajectory(c.BinomialTrajectory)
		}
		return NewTwoLevelSchedule(c.Period, c.BinomialSnapshots, storage, trajectory)
	default:
		return nil, fmt.Errorf("unknown strategy %q: %w", b.Strategy, ErrConfig)
	}
}
