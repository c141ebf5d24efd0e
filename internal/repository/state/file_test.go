package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lcdwatch/alarm-face/internal/domain/alarm"
)

// TestLoadMissingFile returns ErrNotFound for an absent state file.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "absent.json"))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

// TestSaveLoadRoundtrip persists a table and reads it back unchanged.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	repo := NewFileRepository(path)

	var snapshot Snapshot
	for i := range snapshot.Slots {
		snapshot.Slots[i] = alarm.DefaultSlot()
	}

	snapshot.Slots[2] = alarm.Slot{
		Hour:    7,
		Minute:  30,
		Day:     alarm.Tuesday,
		Pitch:   alarm.PitchHigh,
		Beeps:   8,
		Enabled: true,
	}
	snapshot.SavedAt = time.Now().UTC().Truncate(time.Second)

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &snapshot))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, snapshot.Slots, loaded.Slots)
	require.True(t, snapshot.SavedAt.Equal(loaded.SavedAt))
}

// TestLoadRejectsOutOfRangeValues ensures a damaged file cannot smuggle
// values outside the face's domains.
func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	contents := `{"slots":[{"hour":25,"minute":0,"day":0,"pitch":0,"beeps":0,"enabled":true}]}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	repo := NewFileRepository(path)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
}

// TestLoadShortTableFillsDefaults pads a truncated table with defaults.
func TestLoadShortTableFillsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	contents := `{"slots":[{"hour":6,"minute":15,"day":7,"pitch":1,"beeps":5,"enabled":true}]}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	repo := NewFileRepository(path)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.True(t, loaded.Slots[0].Enabled)
	require.Equal(t, alarm.DefaultSlot(), loaded.Slots[9])
}
