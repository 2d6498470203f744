package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reckeep/reckeep/types"
)

// renderRecords writes records in the requested output format.
func renderRecords(w io.Writer, records []types.Record, format string, quiet bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(records)
	default:
		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		if !quiet {
			fmt.Fprintln(tw, "ID\tNAME\tVALUE\tCREATED\tUPDATED")
		}
		for _, r := range records {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
				r.ID, r.Name, r.Value,
				r.CreatedAt.Format(time.RFC3339),
				r.UpdatedAt.Format(time.RFC3339))
		}
		return tw.Flush()
	}
}

// renderStats writes collection statistics in the requested format.
func renderStats(w io.Writer, stats *types.Stats, format string) error {
	if !stats.Available {
		_, err := fmt.Fprintln(w, "No records stored yet; no statistics available.")
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(stats)
	default:
		fmt.Fprintf(w, "Total records:        %d\n", stats.Total)
		fmt.Fprintf(w, "Longest name:         %s (id %d)\n", stats.LongestName.Name, stats.LongestName.ID)
		fmt.Fprintf(w, "Earliest created:     %s\n", stats.EarliestCreated.Format(time.RFC3339))
		fmt.Fprintf(w, "Latest created:       %s\n", stats.LatestCreated.Format(time.RFC3339))
		fmt.Fprintf(w, "Most recently updated: %s (id %d)\n", stats.MostRecentlyUpdated.Name, stats.MostRecentlyUpdated.ID)
		return nil
	}
}
