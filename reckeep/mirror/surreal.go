package mirror

import (
	"fmt"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/reckeep/reckeep/types"
)

// recordRow is the mirrored schema: exactly the Record shape, one row
// per record in the "record" table keyed by the integer id.
type recordRow struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// surrealMirror replicates records into a SurrealDB instance.
type surrealMirror struct {
	db *surrealdb.DB
}

// Connect attempts a single connection to the secondary store. Callers
// treat failure as non-fatal and fall back to Noop.
func Connect(cfg Config) (Mirror, error) {
	db, err := surrealdb.New(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mirror: %w", err)
	}
	if _, err := db.SignIn(&surrealdb.Auth{
		Username: cfg.Username,
		Password: cfg.Password,
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to sign in to mirror: %w", err)
	}
	if err := db.Use(cfg.Namespace, cfg.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to select mirror namespace: %w", err)
	}
	return &surrealMirror{db: db}, nil
}

func (m *surrealMirror) InsertRecord(rec types.Record) error {
	if _, err := surrealdb.Create[recordRow](m.db, recordID(rec.ID), toRow(rec)); err != nil {
		return fmt.Errorf("mirror insert failed: %w", err)
	}
	return nil
}

func (m *surrealMirror) UpdateRecord(rec types.Record) error {
	if _, err := surrealdb.Update[recordRow](m.db, recordID(rec.ID), toRow(rec)); err != nil {
		return fmt.Errorf("mirror update failed: %w", err)
	}
	return nil
}

func (m *surrealMirror) DeleteRecord(id int64) error {
	if _, err := surrealdb.Delete[recordRow](m.db, recordID(id)); err != nil {
		return fmt.Errorf("mirror delete failed: %w", err)
	}
	return nil
}

func (m *surrealMirror) Close() error {
	return m.db.Close()
}

func recordID(id int64) models.RecordID {
	return models.NewRecordID("record", id)
}

func toRow(rec types.Record) recordRow {
	return recordRow{
		ID:        rec.ID,
		Name:      rec.Name,
		Value:     rec.Value,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
