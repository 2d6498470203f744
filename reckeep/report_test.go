package reckeep_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/reckeep/reckeep/reckeep"
)

func TestExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.json")
	exportPath := filepath.Join(dir, "records-export.txt")
	st, err := reckeep.New(path,
		reckeep.WithExportPath(exportPath),
		reckeep.WithClock(newTickingClock().Now),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = st.Close() }()

	seedRecords(t, st,
		[2]string{"wifi", "secret1"},
		[2]string{"email account", "hunter2"},
	)

	got, err := st.Export()
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}
	if got != exportPath {
		t.Errorf("expected export at %s, got %s", exportPath, got)
	}

	content, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatal(err)
	}
	g := goldie.New(t)
	g.Assert(t, "export", content)
}

func TestExportOverwritesPriorArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.json")
	exportPath := filepath.Join(dir, "records-export.txt")
	st, err := reckeep.New(path, reckeep.WithExportPath(exportPath))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = st.Close() }()

	if _, err := st.Export(); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatal(err)
	}

	seedRecords(t, st, [2]string{"wifi", "secret1"})
	if _, err := st.Export(); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) == string(second) {
		t.Error("expected the export artifact to be overwritten")
	}
}

func TestStatistics(t *testing.T) {
	t.Run("empty collection reports no data", func(t *testing.T) {
		st, _ := newTestStore(t)
		stats, err := st.Statistics()
		if err != nil {
			t.Fatalf("statistics on empty collection must not fail: %v", err)
		}
		if stats.Available {
			t.Error("expected Available=false on empty collection")
		}
		if stats.Total != 0 {
			t.Errorf("expected total 0, got %d", stats.Total)
		}
	})

	t.Run("aggregates", func(t *testing.T) {
		st, _ := newTestStore(t, reckeep.WithClock(newTickingClock().Now))
		seeded := seedRecords(t, st,
			[2]string{"wifi", "secret1"},
			[2]string{"longest name here", "v"},
			[2]string{"same length name!", "v"},
			[2]string{"pin", "1234"},
		)

		// Touch an older record so it becomes the most recently updated.
		if _, err := st.Update(seeded[0].ID, "wifi-home", "secret2"); err != nil {
			t.Fatal(err)
		}

		stats, err := st.Statistics()
		if err != nil {
			t.Fatal(err)
		}
		if !stats.Available {
			t.Fatal("expected Available=true")
		}
		if stats.Total != 4 {
			t.Errorf("expected total 4, got %d", stats.Total)
		}
		// Ties on name length break to the first occurrence.
		if stats.LongestName.ID != seeded[1].ID {
			t.Errorf("expected longest name id %d, got %d", seeded[1].ID, stats.LongestName.ID)
		}
		if !stats.EarliestCreated.Equal(seeded[0].CreatedAt) {
			t.Errorf("unexpected earliest created %v", stats.EarliestCreated)
		}
		if !stats.LatestCreated.Equal(seeded[3].CreatedAt) {
			t.Errorf("unexpected latest created %v", stats.LatestCreated)
		}
		if stats.MostRecentlyUpdated.ID != seeded[0].ID {
			t.Errorf("expected most recently updated id %d, got %d", seeded[0].ID, stats.MostRecentlyUpdated.ID)
		}
	})

	t.Run("longest name counts characters, not bytes", func(t *testing.T) {
		st, _ := newTestStore(t)
		// "üüü" is 3 characters but 6 bytes; "abcde" must win.
		seeded := seedRecords(t, st,
			[2]string{"üüü", "v"},
			[2]string{"abcde", "v"},
		)

		stats, err := st.Statistics()
		if err != nil {
			t.Fatal(err)
		}
		if stats.LongestName.ID != seeded[1].ID {
			t.Errorf("expected longest name %q (id %d), got %q (id %d)",
				seeded[1].Name, seeded[1].ID, stats.LongestName.Name, stats.LongestName.ID)
		}
	})
}
