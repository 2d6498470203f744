package reckeep

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/reckeep/reckeep/types"
)

// Supported sort fields and orders. Any other field value returns the
// collection unsorted; any other order value sorts ascending.
const (
	SortByName = "name"
	SortByDate = "date"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Search returns the records whose name contains the keyword
// (case-insensitive) or whose decimal id contains it, preserving the
// stored order.
func (s *Store) Search(keyword string) ([]types.Record, error) {
	records, err := s.List()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	var matches []types.Record
	for _, r := range records {
		if matchesRecord(r, needle) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

func matchesRecord(r types.Record, needle string) bool {
	if strings.Contains(strings.ToLower(r.Name), needle) {
		return true
	}
	return strings.Contains(strconv.FormatInt(r.ID, 10), needle)
}

// Sort returns a sorted copy of the collection. The persisted order is
// never touched. Field "name" sorts lexicographically with locale-aware
// collation, "date" chronologically by creation time; an unrecognized
// field returns the collection as stored. Order "desc" reverses the
// ascending result.
func (s *Store) Sort(field, order string) ([]types.Record, error) {
	records, err := s.List()
	if err != nil {
		return nil, err
	}

	sorted := make([]types.Record, len(records))
	copy(sorted, records)

	switch field {
	case SortByName:
		// Names compare with locale-aware collation rather than raw
		// bytes. Collators are not safe for concurrent use, so each
		// call gets its own.
		c := collate.New(language.Und)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortByDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	default:
		// Unrecognized fields deliberately leave the order as stored.
		return sorted, nil
	}

	if order == OrderDesc {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return sorted, nil
}
