// Package mirror keeps an optional document database in best-effort
// sync with the primary file store. The mirror is never part of the
// durability contract: every call may fail without affecting the
// primary operation, and callers are expected to log and move on.
package mirror

import (
	"github.com/reckeep/reckeep/types"
)

// Mirror replicates record mutations into a secondary store.
type Mirror interface {
	InsertRecord(rec types.Record) error
	UpdateRecord(rec types.Record) error
	DeleteRecord(id int64) error
	Close() error
}

// Config holds the connection settings for the secondary store.
type Config struct {
	// URL is the RPC endpoint, e.g. "ws://localhost:8000/rpc".
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// noop is the Mirror used when no secondary store is reachable; the
// store then runs in file-only mode.
type noop struct{}

func (noop) InsertRecord(types.Record) error { return nil }
func (noop) UpdateRecord(types.Record) error { return nil }
func (noop) DeleteRecord(int64) error        { return nil }
func (noop) Close() error                    { return nil }

// Noop returns a Mirror that silently discards every call.
func Noop() Mirror {
	return noop{}
}
