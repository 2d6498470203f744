// Package reckeep implements a small personal record store. Records
// (id, name, value, timestamps) are persisted wholesale to a single
// JSON file; every mutation snapshots the post-mutation collection to a
// timestamped backup and is optionally mirrored, best effort, into a
// secondary document database.
package reckeep

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/reckeep/reckeep/reckeep/mirror"
	"github.com/reckeep/reckeep/reckeep/storage"
)

// Option configures a Store.
type Option func(*Store)

// WithBackupDir sets the directory that receives backup snapshots.
// It defaults to a "backups" directory next to the store file.
func WithBackupDir(dir string) Option {
	return func(s *Store) { s.backups.dir = dir }
}

// WithExportPath sets the fixed-name export artifact path. It defaults
// to "records-export.txt" next to the store file.
func WithExportPath(path string) Option {
	return func(s *Store) { s.exportPath = path }
}

// WithMirror attaches a secondary mirror store. Mirror calls are
// fire-and-forget; failures never surface to callers.
func WithMirror(m mirror.Mirror) Option {
	return func(s *Store) { s.mirror = m }
}

// WithLogger sets the logger used for best-effort failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
		s.backups.logger = logger
	}
}

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
		s.backups.now = now
	}
}

// WithStorage replaces the JSON file backend with a custom Storage
// implementation.
func WithStorage(st storage.Storage) Option {
	return func(s *Store) { s.storage = st }
}

// New creates a Store persisting to the JSON file at path. The file is
// created lazily on the first mutation; a missing file reads as an
// empty collection.
func New(path string, opts ...Option) (*Store, error) {
	dir := filepath.Dir(path)
	s := &Store{
		storage:    storage.NewJSONStorage(path),
		mirror:     mirror.Noop(),
		events:     newEventBus(),
		lock:       newLockManager(),
		logger:     slog.Default(),
		now:        time.Now,
		exportPath: filepath.Join(dir, "records-export.txt"),
	}
	s.backups = &backupWriter{
		dir:    filepath.Join(dir, "backups"),
		logger: s.logger,
		now:    s.now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
