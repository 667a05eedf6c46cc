package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// ErrStoreCorrupted indicates a state file exists but cannot be parsed.
var ErrStoreCorrupted = errors.New("state store corrupted")

// implementedStoreVersion is the on-disk format version for the
// implemented-suggestions store.
const implementedStoreVersion = 1

// implementedFile is the serialized form of the store.
type implementedFile struct {
	Version     int                  `json:"version"`
	Suggestions map[string]time.Time `json:"suggestions"`
}

// ImplementedStore persists the set of suggestion IDs the user has
// marked as implemented, with the time each was marked.
//
// The store is safe for concurrent use. Writes go through a temp file
// and rename so a crash never leaves a half-written store.
type ImplementedStore struct {
	mu   sync.Mutex
	path string
	ids  map[string]time.Time
}

// NewImplementedStore opens the store at path, loading existing state if
// the file exists. A missing file yields an empty store.
func NewImplementedStore(path string) (*ImplementedStore, error) {
	s := &ImplementedStore{
		path: path,
		ids:  make(map[string]time.Time),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultImplementedStore opens the store at its standard location under
// the user state directory.
func DefaultImplementedStore() (*ImplementedStore, error) {
	dir, err := UserDir()
	if err != nil {
		return nil, err
	}
	return NewImplementedStore(filepath.Join(dir, "implemented.json"))
}

func (s *ImplementedStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", s.path, err)
	}

	var file implementedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStoreCorrupted, s.path, err)
	}
	if file.Version > implementedStoreVersion {
		return fmt.Errorf("%w: %s: unknown version %d", ErrStoreCorrupted, s.path, file.Version)
	}
	if file.Suggestions != nil {
		s.ids = file.Suggestions
	}
	return nil
}

// Mark records a suggestion ID as implemented and persists the store.
// Marking an already implemented ID is a no-op.
func (s *ImplementedStore) Mark(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; ok {
		return nil
	}
	s.ids[id] = time.Now().UTC()
	return s.save()
}

// Unmark removes a suggestion ID from the implemented set and persists
// the store. Unmarking an absent ID is a no-op.
func (s *ImplementedStore) Unmark(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; !ok {
		return nil
	}
	delete(s.ids, id)
	return s.save()
}

// IsImplemented reports whether the ID has been marked implemented.
func (s *ImplementedStore) IsImplemented(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Set returns the implemented IDs as a set suitable for savings math.
func (s *ImplementedStore) Set() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := make(map[string]bool, len(s.ids))
	for id := range s.ids {
		set[id] = true
	}
	return set
}

// IDs returns the implemented IDs in sorted order.
func (s *ImplementedStore) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// save writes the store atomically. Callers must hold s.mu.
func (s *ImplementedStore) save() error {
	file := implementedFile{
		Version:     implementedStoreVersion,
		Suggestions: s.ids,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

// writeFileAtomic writes data to path via a temp file and rename,
// creating parent directories as needed.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s: %w", tmpName, err)
	}
	return nil
}
