package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reckeep/reckeep/reckeep/storage"
	"github.com/reckeep/reckeep/types"
)

func newStorage(t *testing.T) (storage.Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	st := storage.NewJSONStorage(path)
	t.Cleanup(func() { _ = st.Close() })
	return st, path
}

func sampleData() *storage.StoreData {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data := storage.NewStoreData()
	data.Records = []types.Record{
		{ID: 1, Name: "wifi", Value: "secret1", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "pin", Value: "1234", CreatedAt: now.Add(time.Minute), UpdatedAt: now.Add(time.Hour)},
	}
	return data
}

func TestLoadMissingFile(t *testing.T) {
	st, _ := newStorage(t)

	data, err := st.Load()
	if err != nil {
		t.Fatalf("missing file must load as empty store: %v", err)
	}
	if len(data.Records) != 0 {
		t.Errorf("expected empty records, got %d", len(data.Records))
	}
	if data.Records == nil {
		t.Error("records slice should be non-nil")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	st, path := newStorage(t)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	data, err := st.Load()
	if err != nil {
		t.Fatalf("empty file must load as empty store: %v", err)
	}
	if len(data.Records) != 0 {
		t.Errorf("expected empty records, got %d", len(data.Records))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	st, path := newStorage(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Load(); err == nil {
		t.Fatal("expected error on corrupt file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, path := newStorage(t)

	if err := st.Save(sampleData()); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(loaded.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(loaded.Records))
	}
	if loaded.Records[0].Name != "wifi" || loaded.Records[1].Value != "1234" {
		t.Errorf("round trip lost record data: %+v", loaded.Records)
	}
	if !loaded.Records[1].UpdatedAt.Equal(sampleData().Records[1].UpdatedAt) {
		t.Error("round trip lost timestamp precision")
	}

	// save(load()) is a no-op on the persisted representation.
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Save(loaded); err != nil {
		t.Fatal(err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("save(load()) changed the persisted representation")
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	st, path := newStorage(t)
	if err := st.Save(sampleData()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind, stat err = %v", err)
	}
}

func TestCloseRemovesLockFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	st := storage.NewJSONStorage(path)
	if err := st.Save(sampleData()); err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Errorf("lock file left behind, stat err = %v", err)
	}
}
