package reckeep

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reckeep/reckeep/reckeep/storage"
)

// backupNameReplacer makes RFC 3339 timestamps filesystem safe.
var backupNameReplacer = strings.NewReplacer(":", "-", ".", "-")

// backupWriter snapshots the post-mutation collection into a dedicated
// directory, one uniquely named artifact per mutation. Snapshots are
// append-only: nothing here ever overwrites or prunes an existing one.
type backupWriter struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// snapshot writes a timestamped copy of the collection and returns its
// path. The serialization is identical to the Durable Store's.
func (w *backupWriter) snapshot(data *storage.StoreData) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	raw, err := storage.Marshal(data)
	if err != nil {
		return "", err
	}

	stamp := backupNameReplacer.Replace(w.now().Format(time.RFC3339))
	path := filepath.Join(w.dir, fmt.Sprintf("records-%s.json", stamp))

	// Same-second mutations get a numeric suffix so no snapshot is
	// ever overwritten.
	for n := 2; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(w.dir, fmt.Sprintf("records-%s-%d.json", stamp, n))
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return path, nil
}

// snapshotBestEffort runs snapshot and logs on failure. Backup failures
// never abort or roll back the mutation that triggered them.
func (w *backupWriter) snapshotBestEffort(data *storage.StoreData) {
	if _, err := w.snapshot(data); err != nil {
		w.logger.Warn("backup snapshot failed", "dir", w.dir, "error", err)
	}
}
