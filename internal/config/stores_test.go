package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waterwise/waterwise/internal/engine"
)

func TestImplementedStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "implemented.json")

	store, err := NewImplementedStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Mark("fix-leaks"))
	require.NoError(t, store.Mark("shorter-showers"))
	assert.True(t, store.IsImplemented("fix-leaks"))
	assert.False(t, store.IsImplemented("rainwater-harvesting"))
	assert.Equal(t, []string{"fix-leaks", "shorter-showers"}, store.IDs())

	// Reopen and confirm state survived.
	reopened, err := NewImplementedStore(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"fix-leaks", "shorter-showers"}, reopened.IDs())

	require.NoError(t, reopened.Unmark("fix-leaks"))
	assert.Equal(t, []string{"shorter-showers"}, reopened.IDs())
}

func TestImplementedStoreIdempotentOps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "implemented.json")

	store, err := NewImplementedStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Mark("fix-leaks"))
	require.NoError(t, store.Mark("fix-leaks"))
	assert.Equal(t, []string{"fix-leaks"}, store.IDs())

	require.NoError(t, store.Unmark("never-marked"))
	assert.Equal(t, []string{"fix-leaks"}, store.IDs())
}

func TestImplementedStoreSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "implemented.json")

	store, err := NewImplementedStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Mark("turn-off-tap"))

	set := store.Set()
	assert.Equal(t, map[string]bool{"turn-off-tap": true}, set)

	// Mutating the returned set must not affect the store.
	set["fix-leaks"] = true
	assert.False(t, store.IsImplemented("fix-leaks"))
}

func TestImplementedStoreCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "implemented.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewImplementedStore(path)
	assert.ErrorIs(t, err, ErrStoreCorrupted)
}

func TestJournalAppendAndRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	journal, err := NewJournal(path)
	require.NoError(t, err)

	first, err := journal.Append(engine.UsageCounters{Showers: 1, Buckets: 3, Bottles: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 212, first.DailyLiters)

	second, err := journal.Append(engine.UsageCounters{Showers: 2, Buckets: 0, Bottles: 0})
	require.NoError(t, err)
	assert.Equal(t, 300, second.DailyLiters)

	entries := journal.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
	// ULIDs sort in append order.
	assert.Less(t, entries[0].ID, entries[1].ID)

	recent := journal.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, second.ID, recent[0].ID)

	assert.Len(t, journal.Recent(10), 2)
	assert.Nil(t, journal.Recent(0))
}

func TestJournalPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	journal, err := NewJournal(path)
	require.NoError(t, err)
	_, err = journal.Append(engine.UsageCounters{Showers: 1})
	require.NoError(t, err)

	reopened, err := NewJournal(path)
	require.NoError(t, err)
	assert.Len(t, reopened.Entries(), 1)
}

func TestJournalCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	_, err := NewJournal(path)
	assert.ErrorIs(t, err, ErrStoreCorrupted)
}
