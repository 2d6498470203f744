package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"

	"github.com/reckeep/reckeep/types"
)

// JSONStorage implements the Storage interface using a single JSON file.
// The whole collection is read and rewritten on every call; a sibling
// lock file guards against torn reads and writes from other processes.
type JSONStorage struct {
	filePath string
	fileLock *flock.Flock
}

// NewJSONStorage creates a new JSON file storage backed by filePath.
func NewJSONStorage(filePath string) *JSONStorage {
	lockPath := filePath + ".lock"
	return &JSONStorage{
		filePath: filePath,
		fileLock: flock.New(lockPath),
	}
}

// Load reads the entire store from the JSON file. A missing or empty
// file yields an empty store, not an error.
func (s *JSONStorage) Load() (*StoreData, error) {
	unlock, err := s.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return NewStoreData(), nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return NewStoreData(), nil
	}

	var store StoreData
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if store.Records == nil {
		store.Records = []types.Record{}
	}

	return &store, nil
}

// Save atomically replaces the persisted store. The data is written to
// a temp file first and renamed into place, so a partial write never
// replaces the previous state. Save persists exactly what it is given;
// saving a freshly loaded store reproduces the same bytes.
func (s *JSONStorage) Save(data *StoreData) error {
	unlock, err := s.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	raw, err := Marshal(data)
	if err != nil {
		return err
	}

	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, raw, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.filePath); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// Marshal renders store data in the persisted representation. Backup
// snapshots use the same serialization as the store file itself.
func Marshal(data *StoreData) ([]byte, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return raw, nil
}

// Close releases resources and removes the lock file.
func (s *JSONStorage) Close() error {
	_ = os.Remove(s.filePath + ".lock")
	return nil
}

// acquireLock takes the file lock with a bounded wait. The returned
// function releases it.
func (s *JSONStorage) acquireLock() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock")
	}
	return func() { _ = s.fileLock.Unlock() }, nil
}
