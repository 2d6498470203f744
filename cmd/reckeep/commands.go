package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reckeep/reckeep/reckeep"
)

var addCmd = &cobra.Command{
	Use:   "add NAME VALUE",
	Short: "Add a new record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return NewStoreError("add", err)
		}
		defer func() { _ = st.Close() }()

		rec, err := st.Add(args[0], args[1])
		if err != nil {
			return wrapStoreErr("add", err)
		}
		if !quiet {
			fmt.Printf("Added record %d: %s\n", rec.ID, rec.Name)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all records in stored order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return NewStoreError("list", err)
		}
		defer func() { _ = st.Close() }()

		records, err := st.List()
		if err != nil {
			return wrapStoreErr("list", err)
		}
		return renderRecords(os.Stdout, records, format, quiet)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update ID NAME VALUE",
	Short: "Overwrite a record's name and value",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		st, err := openStore()
		if err != nil {
			return NewStoreError("update", err)
		}
		defer func() { _ = st.Close() }()

		rec, err := st.Update(id, args[1], args[2])
		if err != nil {
			return wrapStoreErr("update", err)
		}
		if rec == nil {
			return NewNotFoundError("update", id)
		}
		if !quiet {
			fmt.Printf("Updated record %d: %s\n", rec.ID, rec.Name)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		st, err := openStore()
		if err != nil {
			return NewStoreError("delete", err)
		}
		defer func() { _ = st.Close() }()

		rec, err := st.Delete(id)
		if err != nil {
			return wrapStoreErr("delete", err)
		}
		if rec == nil {
			return NewNotFoundError("delete", id)
		}
		if !quiet {
			fmt.Printf("Deleted record %d: %s\n", rec.ID, rec.Name)
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search KEYWORD",
	Short: "Find records by name or id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return NewStoreError("search", err)
		}
		defer func() { _ = st.Close() }()

		matches, err := st.Search(args[0])
		if err != nil {
			return wrapStoreErr("search", err)
		}
		if len(matches) == 0 {
			if !quiet {
				fmt.Printf("No records matching %q.\n", args[0])
			}
			return nil
		}
		return renderRecords(os.Stdout, matches, format, quiet)
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort FIELD [ORDER]",
	Short: "List records sorted by name or date",
	Long: `List records sorted by the given field without touching the stored
order. FIELD is "name" or "date"; any other value lists records as
stored. ORDER is "asc" (default) or "desc".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		order := ""
		if len(args) == 2 {
			order = args[1]
		}
		st, err := openStore()
		if err != nil {
			return NewStoreError("sort", err)
		}
		defer func() { _ = st.Close() }()

		records, err := st.Sort(args[0], order)
		if err != nil {
			return wrapStoreErr("sort", err)
		}
		return renderRecords(os.Stdout, records, format, quiet)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the collection to a plain-text report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return NewStoreError("export", err)
		}
		defer func() { _ = st.Close() }()

		path, err := st.Export()
		if err != nil {
			return wrapStoreErr("export", err)
		}
		if !quiet {
			fmt.Printf("Exported to %s\n", path)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return NewStoreError("stats", err)
		}
		defer func() { _ = st.Close() }()

		stats, err := st.Statistics()
		if err != nil {
			return wrapStoreErr("stats", err)
		}
		return renderStats(os.Stdout, stats, format)
	},
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, &CLIError{
			Operation:   "parse id",
			Cause:       fmt.Sprintf("%q is not a numeric record id", arg),
			Suggestions: []string{"Run 'reckeep list' to see record ids"},
		}
	}
	return id, nil
}

// wrapStoreErr keeps validation errors as-is (their message already
// names the offending field) and wraps everything else for the console.
func wrapStoreErr(operation string, err error) error {
	if err == nil {
		return nil
	}
	if reckeep.IsValidation(err) {
		return err
	}
	return NewStoreError(operation, err)
}
