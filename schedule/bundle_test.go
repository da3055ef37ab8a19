package schedule

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadScheduleBundle_HRevolve(t *testing.T) {
	path := writeConfig(t, `
strategy: hrevolve
hrevolve:
  max_n: 10
  snapshots_in_ram: 3
  snapshots_on_disk: 1
  write_cost_disk: 0.2
  read_cost_disk: 0.2
`)
	bundle, err := LoadScheduleBundle(path)
	require.NoError(t, err)
	assert.Equal(t, "hrevolve", bundle.Strategy)
	assert.Equal(t, int64(10), bundle.HRevolve.MaxN)
	assert.Equal(t, 3, bundle.HRevolve.SnapshotsInRAM)

	sched, err := bundle.Build()
	require.NoError(t, err)
	hr, ok := sched.(*HRevolveSchedule)
	require.True(t, ok)
	assert.True(t, hr.UsesDiskStorage())
}

func TestLoadScheduleBundle_TwoLevel(t *testing.T) {
	path := writeConfig(t, `
strategy: two-level
two_level:
  period: 5
  binomial_snapshots: 2
  binomial_storage: RAM
`)
	bundle, err := LoadScheduleBundle(path)
	require.NoError(t, err)

	sched, err := bundle.Build()
	require.NoError(t, err)
	tl, ok := sched.(*TwoLevelSchedule)
	require.True(t, ok)
	assert.True(t, tl.UsesStorageType(RAM))
}

func TestLoadScheduleBundle_RejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
strategy: hrevolve
hrevolve:
  max_n: 10
  bogus_field: 1
`)
	_, err := LoadScheduleBundle(path)
	assert.Error(t, err)
}

func TestLoadScheduleBundle_RejectsUnknownStrategy(t *testing.T) {
	path := writeConfig(t, `
strategy: three-level
`)
	_, err := LoadScheduleBundle(path)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestScheduleBundle_ValidateHRevolveBadMaxN(t *testing.T) {
	b := &ScheduleBundle{Strategy: "hrevolve", HRevolve: HRevolveConfig{MaxN: 0}}
	assert.ErrorIs(t, b.Validate(), ErrConfig)
}

func TestScheduleBundle_ValidateHRevolveBothSlotCountsZero(t *testing.T) {
	b := &ScheduleBundle{Strategy: "hrevolve", HRevolve: HRevolveConfig{
		MaxN: 10, SnapshotsInRAM: 0, SnapshotsOnDisk: 0,
	}}
	assert.ErrorIs(t, b.Validate(), ErrConfig)
	assert.False(t, errors.Is(b.Validate(), ErrNoMemory))
}

func TestScheduleBundle_ValidateTwoLevelBadStorage(t *testing.T) {
	b := &ScheduleBundle{Strategy: "two-level", TwoLevel: TwoLevelConfig{
		Period: 2, BinomialSnapshots: 1, BinomialStorage: "tape",
	}}
	assert.ErrorIs(t, b.Validate(), ErrConfig)
}

func TestLoadScheduleBundle_MissingFile(t *testing.T) {
	_, err := LoadScheduleBundle(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
