package config

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/waterwise/waterwise/internal/engine"
)

// journalVersion is the on-disk format version for the usage journal.
const journalVersion = 1

// JournalEntry is one recorded day of water usage.
type JournalEntry struct {
	// ID is a ULID assigned when the entry is appended. Lexicographic
	// order of IDs matches append order.
	ID string `json:"id"`

	// RecordedAt is when the entry was appended.
	RecordedAt time.Time `json:"recorded_at"`

	// Counters are the raw activity counts for the day.
	Counters engine.UsageCounters `json:"counters"`

	// DailyLiters is the computed daily total at record time.
	DailyLiters int `json:"daily_liters"`
}

// journalFile is the serialized form of the journal.
type journalFile struct {
	Version int            `json:"version"`
	Entries []JournalEntry `json:"entries"`
}

// Journal is an append-only log of daily usage entries.
//
// It is safe for concurrent use and writes atomically like
// ImplementedStore.
type Journal struct {
	mu      sync.Mutex
	path    string
	entries []JournalEntry
	entropy *ulid.MonotonicEntropy
}

// NewJournal opens the journal at path, loading existing entries if the
// file exists.
func NewJournal(path string) (*Journal, error) {
	j := &Journal{
		path:    path,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
	if err := j.load(); err != nil {
		return nil, err
	}
	return j, nil
}

// DefaultJournal opens the journal at its standard location under the
// user state directory.
func DefaultJournal() (*Journal, error) {
	dir, err := UserDir()
	if err != nil {
		return nil, err
	}
	return NewJournal(filepath.Join(dir, "journal.json"))
}

func (j *Journal) load() error {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", j.path, err)
	}

	var file journalFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStoreCorrupted, j.path, err)
	}
	if file.Version > journalVersion {
		return fmt.Errorf("%w: %s: unknown version %d", ErrStoreCorrupted, j.path, file.Version)
	}
	j.entries = file.Entries
	return nil
}

// Append records a day's usage and persists the journal, returning the
// stored entry.
func (j *Journal) Append(counters engine.UsageCounters) (JournalEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now().UTC()
	entry := JournalEntry{
		ID:          ulid.MustNew(ulid.Timestamp(now), j.entropy).String(),
		RecordedAt:  now,
		Counters:    counters,
		DailyLiters: engine.ComputeTotals(counters).Daily,
	}
	j.entries = append(j.entries, entry)

	if err := j.save(); err != nil {
		j.entries = j.entries[:len(j.entries)-1]
		return JournalEntry{}, err
	}
	return entry, nil
}

// Entries returns a copy of all journal entries in append order.
func (j *Journal) Entries() []JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]JournalEntry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Recent returns up to n most recent entries, oldest first.
func (j *Journal) Recent(n int) []JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()

	if n <= 0 || len(j.entries) == 0 {
		return nil
	}
	start := len(j.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]JournalEntry, len(j.entries)-start)
	copy(out, j.entries[start:])
	return out
}

// save writes the journal atomically. Callers must hold j.mu.
func (j *Journal) save() error {
	file := journalFile{
		Version: journalVersion,
		Entries: j.entries,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding journal: %w", err)
	}
	return writeFileAtomic(j.path, data)
}
