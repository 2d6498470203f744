package types

import "time"

// Record is a single stored entry. The ID is assigned at creation and
// never changes; CreatedAt is set once, UpdatedAt is refreshed on every
// successful mutation.
type Record struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventKind names a completed mutation.
type EventKind string

const (
	RecordAdded   EventKind = "recordAdded"
	RecordUpdated EventKind = "recordUpdated"
	RecordDeleted EventKind = "recordDeleted"
)

// Event announces a completed mutation to in-process observers.
// For deletions the Record carries the pre-removal copy.
type Event struct {
	Kind   EventKind
	Record Record
}

// Stats summarizes the current collection. Available is false when the
// collection is empty, in which case no other field is meaningful.
type Stats struct {
	Available           bool      `json:"available"`
	Total               int       `json:"total"`
	LongestName         Record    `json:"longest_name"`
	EarliestCreated     time.Time `json:"earliest_created"`
	LatestCreated       time.Time `json:"latest_created"`
	MostRecentlyUpdated Record    `json:"most_recently_updated"`
}
