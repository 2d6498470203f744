package reckeep

import (
	"log/slog"
	"sync"
	"time"

	"github.com/reckeep/reckeep/internal/validation"
	"github.com/reckeep/reckeep/reckeep/mirror"
	"github.com/reckeep/reckeep/reckeep/storage"
	"github.com/reckeep/reckeep/types"
)

// Store is the record store. Every public operation loads the entire
// collection from durable storage, computes its result, persists the
// new collection for mutations, snapshots a backup, and emits a
// notification. There is no in-memory cache between operations.
type Store struct {
	storage    storage.Storage
	backups    *backupWriter
	mirror     mirror.Mirror
	events     *eventBus
	lock       *lockManager
	logger     *slog.Logger
	now        func() time.Time
	exportPath string

	mirrorWG sync.WaitGroup
}

// Add validates the input, appends a new record with a fresh id and
// returns it. Both timestamps are set to the same instant.
func (s *Store) Add(name, value string) (*types.Record, error) {
	if err := validation.ValidateRecordInput(name, value); err != nil {
		return nil, err
	}

	var rec types.Record
	err := s.lock.execute(writeOperation, func() error {
		data, err := s.storage.Load()
		if err != nil {
			return &StoreError{Op: "add", Err: err}
		}
		now := s.now()
		rec = types.Record{
			ID:        nextID(data.Records),
			Name:      name,
			Value:     value,
			CreatedAt: now,
			UpdatedAt: now,
		}
		data.Records = append(data.Records, rec)
		data.Metadata.UpdatedAt = now
		if err := s.storage.Save(data); err != nil {
			return &StoreError{Op: "add", Err: err}
		}
		s.backups.snapshotBestEffort(data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.publish(types.Event{Kind: types.RecordAdded, Record: rec})
	s.mirrorDo("insert", rec.ID, func() error { return s.mirror.InsertRecord(rec) })
	return &rec, nil
}

// List returns the full collection in stored order. No side effects.
func (s *Store) List() ([]types.Record, error) {
	var records []types.Record
	err := s.lock.execute(readOperation, func() error {
		data, err := s.storage.Load()
		if err != nil {
			return &StoreError{Op: "list", Err: err}
		}
		records = data.Records
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Update overwrites the name and value of the record with the given id
// and refreshes its UpdatedAt. A missing id returns (nil, nil) without
// mutating anything.
func (s *Store) Update(id int64, name, value string) (*types.Record, error) {
	if err := validation.ValidateRecordInput(name, value); err != nil {
		return nil, err
	}

	var rec *types.Record
	err := s.lock.execute(writeOperation, func() error {
		data, err := s.storage.Load()
		if err != nil {
			return &StoreError{Op: "update", Err: err}
		}
		idx := indexOf(data.Records, id)
		if idx < 0 {
			return nil
		}
		r := &data.Records[idx]
		r.Name = name
		r.Value = value
		r.UpdatedAt = s.now()
		data.Metadata.UpdatedAt = r.UpdatedAt
		if err := s.storage.Save(data); err != nil {
			return &StoreError{Op: "update", Err: err}
		}
		s.backups.snapshotBestEffort(data)
		updated := *r
		rec = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	s.events.publish(types.Event{Kind: types.RecordUpdated, Record: *rec})
	r := *rec
	s.mirrorDo("update", r.ID, func() error { return s.mirror.UpdateRecord(r) })
	return rec, nil
}

// Delete removes the record with the given id, preserving the relative
// order of the remaining records. A missing id returns (nil, nil).
// The returned record is the pre-removal copy.
func (s *Store) Delete(id int64) (*types.Record, error) {
	var rec *types.Record
	err := s.lock.execute(writeOperation, func() error {
		data, err := s.storage.Load()
		if err != nil {
			return &StoreError{Op: "delete", Err: err}
		}
		idx := indexOf(data.Records, id)
		if idx < 0 {
			return nil
		}
		removed := data.Records[idx]
		data.Records = append(data.Records[:idx], data.Records[idx+1:]...)
		data.Metadata.UpdatedAt = s.now()
		if err := s.storage.Save(data); err != nil {
			return &StoreError{Op: "delete", Err: err}
		}
		s.backups.snapshotBestEffort(data)
		rec = &removed
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	s.events.publish(types.Event{Kind: types.RecordDeleted, Record: *rec})
	s.mirrorDo("delete", id, func() error { return s.mirror.DeleteRecord(id) })
	return rec, nil
}

// Close waits for in-flight mirror calls, then releases the mirror and
// storage resources.
func (s *Store) Close() error {
	s.mirrorWG.Wait()
	if err := s.mirror.Close(); err != nil {
		s.logger.Warn("mirror close failed", "error", err)
	}
	return s.storage.Close()
}

// mirrorDo runs a mirror call fire-and-forget. The call never blocks,
// delays, or fails the primary operation; errors are logged only.
func (s *Store) mirrorDo(op string, id int64, fn func() error) {
	s.mirrorWG.Add(1)
	go func() {
		defer s.mirrorWG.Done()
		if err := fn(); err != nil {
			s.logger.Warn("mirror call failed", "op", op, "id", id, "error", err)
		}
	}()
}

// nextID returns max existing id + 1, starting at 1. This keeps ids
// unique within the collection even after deletions.
func nextID(records []types.Record) int64 {
	var max int64
	for _, r := range records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

func indexOf(records []types.Record, id int64) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
