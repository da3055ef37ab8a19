package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelVectors_Validate(t *testing.T) {
	good := LevelVectors{Cvect: []int64{2, 4}, Wvect: []float64{0, 0.1}, Rvect: []float64{0, 0.1}}
	require.NoError(t, good.Validate())
	assert.Equal(t, 2, good.NumLevels())

	empty := LevelVectors{}
	err := empty.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))

	mismatched := LevelVectors{Cvect: []int64{2}, Wvect: []float64{0, 0.1}, Rvect: []float64{0}}
	assert.True(t, errors.Is(mismatched.Validate(), ErrConfig))

	negative := LevelVectors{Cvect: []int64{-1}, Wvect: []float64{0}, Rvect: []float64{0}}
	assert.True(t, errors.Is(negative.Validate(), ErrConfig))
}

func TestStorageLevelRoundTrip(t *testing.T) {
	assert.Equal(t, RAM, levelStorage(0))
	assert.Equal(t, Disk, levelStorage(1))
	assert.Equal(t, Disk, levelStorage(2)) // every level past 0 maps to Disk in this two-level engine

	lvl, err := storageLevel(RAM)
	require.NoError(t, err)
	assert.Equal(t, 0, lvl)

	lvl, err = storageLevel(Disk)
	require.NoError(t, err)
	assert.Equal(t, 1, lvl)

	_, err = storageLevel(FwdRestart)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestStorageTypeString(t *testing.T) {
	assert.Equal(t, "RAM", RAM.String())
	assert.Equal(t, "Disk", Disk.String())
	assert.Equal(t, "FwdRestart", FwdRestart.String())
	assert.Equal(t, "AdjDeps", AdjDeps.String())
}
