package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lcdwatch/alarm-face/internal/config"
	"github.com/lcdwatch/alarm-face/internal/domain/alarm"
)

// Snapshot is the persisted form of the alarm table.
type Snapshot struct {
	// Slots is the saved alarm table, index order preserved.
	Slots [alarm.SlotCount]alarm.Slot
	// SavedAt is when the snapshot was written.
	SavedAt time.Time
}

// Repository defines persistence operations for the alarm table.
type Repository interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
}

// FileRepository persists the alarm table to a JSON file on disk. The
// real firmware keeps the table in RAM for the powered session; the file
// substitutes for that session across simulator runs.
type FileRepository struct {
	// path is the filesystem location of the JSON state file.
	path string
	// mu protects concurrent access to the state file.
	mu sync.Mutex
}

// ErrNotFound is returned when the state file does not exist yet.
var ErrNotFound = errors.New("state not found")

// errSlotOutOfRange is returned when a stored slot carries a value the
// face could never produce.
var errSlotOutOfRange = errors.New("slot value out of range")

// slotRecord is the file shape of one slot, decoupled from the domain type.
type slotRecord struct {
	Hour    uint8 `json:"hour"`
	Minute  uint8 `json:"minute"`
	Day     uint8 `json:"day"`
	Pitch   uint8 `json:"pitch"`
	Beeps   uint8 `json:"beeps"`
	Enabled bool  `json:"enabled"`
}

// fileSnapshot is the on-disk document.
type fileSnapshot struct {
	Slots   []slotRecord `json:"slots"`
	SavedAt time.Time    `json:"saved_at"`
}

// NewFileRepository creates a repository that reads and writes JSON at the
// provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the alarm table from disk.
func (r *FileRepository) Load(_ context.Context) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read state file: %w", err)
	}

	var doc fileSnapshot
	if err = json.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	return fromFile(&doc)
}

// Save writes the alarm table to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, snapshot *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(toFile(snapshot), "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// fromFile converts the on-disk document into a Snapshot, rejecting values
// outside the face's value ranges.
func fromFile(doc *fileSnapshot) (*Snapshot, error) {
	snapshot := &Snapshot{SavedAt: doc.SavedAt}

	for i := range snapshot.Slots {
		snapshot.Slots[i] = alarm.DefaultSlot()
	}

	if len(doc.Slots) > alarm.SlotCount {
		return nil, fmt.Errorf("decode state file: %d slots, want at most %d", len(doc.Slots), alarm.SlotCount)
	}

	for i, rec := range doc.Slots {
		if rec.Hour > 23 || rec.Minute > 59 || rec.Day >= alarm.DayStates ||
			rec.Pitch > uint8(alarm.PitchHigh) || rec.Beeps >= alarm.MaxBeepRounds {
			return nil, fmt.Errorf("slot %d: %w", i, errSlotOutOfRange)
		}

		snapshot.Slots[i] = alarm.Slot{
			Hour:    rec.Hour,
			Minute:  rec.Minute,
			Day:     alarm.Day(rec.Day),
			Pitch:   alarm.Pitch(rec.Pitch),
			Beeps:   rec.Beeps,
			Enabled: rec.Enabled,
		}
	}

	return snapshot, nil
}

// toFile converts a Snapshot into the on-disk document.
func toFile(snapshot *Snapshot) *fileSnapshot {
	doc := &fileSnapshot{
		Slots:   make([]slotRecord, 0, alarm.SlotCount),
		SavedAt: snapshot.SavedAt,
	}

	for _, s := range snapshot.Slots {
		doc.Slots = append(doc.Slots, slotRecord{
			Hour:    s.Hour,
			Minute:  s.Minute,
			Day:     uint8(s.Day),
			Pitch:   uint8(s.Pitch),
			Beeps:   s.Beeps,
			Enabled: s.Enabled,
		})
	}

	return doc
}
