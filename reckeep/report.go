package reckeep

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/reckeep/reckeep/types"
)

// Export serializes the full collection to the fixed-name text
// artifact, overwriting any prior export. The report is human-readable
// and not meant for re-import. Returns the artifact path.
func (s *Store) Export() (string, error) {
	records, err := s.List()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Record export\n")
	fmt.Fprintf(&b, "Generated: %s\n", s.now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Total records: %d\n", len(records))
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 40))
	for _, r := range records {
		fmt.Fprintf(&b, "[%d] %s = %s (created %s)\n",
			r.ID, r.Name, r.Value, r.CreatedAt.Format(time.RFC3339))
	}

	if err := os.WriteFile(s.exportPath, []byte(b.String()), 0644); err != nil {
		return "", &StoreError{Op: "export", Err: err}
	}
	return s.exportPath, nil
}

// Statistics computes aggregates over the current collection: total
// count, the record with the longest name measured in characters (first
// occurrence wins ties),
// the earliest and latest creation times, and the most recently updated
// record. An empty collection reports Available=false and no error.
func (s *Store) Statistics() (*types.Stats, error) {
	records, err := s.List()
	if err != nil {
		return nil, err
	}

	stats := &types.Stats{Total: len(records)}
	if len(records) == 0 {
		return stats, nil
	}
	stats.Available = true

	stats.LongestName = records[0]
	stats.EarliestCreated = records[0].CreatedAt
	stats.LatestCreated = records[0].CreatedAt
	stats.MostRecentlyUpdated = records[0]
	for _, r := range records[1:] {
		if utf8.RuneCountInString(r.Name) > utf8.RuneCountInString(stats.LongestName.Name) {
			stats.LongestName = r
		}
		if r.CreatedAt.Before(stats.EarliestCreated) {
			stats.EarliestCreated = r.CreatedAt
		}
		if r.CreatedAt.After(stats.LatestCreated) {
			stats.LatestCreated = r.CreatedAt
		}
		if r.UpdatedAt.After(stats.MostRecentlyUpdated.UpdatedAt) {
			stats.MostRecentlyUpdated = r
		}
	}
	return stats, nil
}
