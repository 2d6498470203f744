// Package storage provides the persistence layer for reckeep.
// It defines the interface for durable collection storage and provides
// a JSON file implementation.
package storage

import (
	"time"

	"github.com/reckeep/reckeep/types"
)

// StoreData is the complete data structure persisted by a backend.
// The whole collection is read and rewritten as a single unit.
type StoreData struct {
	Records  []types.Record `json:"records"`
	Metadata Metadata       `json:"metadata"`
}

// Metadata contains storage metadata.
type Metadata struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStoreData returns an empty store with fresh metadata.
func NewStoreData() *StoreData {
	now := time.Now()
	return &StoreData{
		Records: []types.Record{},
		Metadata: Metadata{
			Version:   "1.0",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// Storage defines the low-level interface for wholesale persistence.
// Load re-reads from the medium on every call; there is no caching
// between calls, so operations always observe the latest persisted state.
type Storage interface {
	// Load reads the entire store data from the backend. A missing or
	// empty backing file yields an empty store, not an error.
	Load() (*StoreData, error)

	// Save atomically replaces the persisted store data.
	Save(data *StoreData) error

	// Close releases any resources held by the storage.
	Close() error
}
