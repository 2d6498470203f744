package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reckeep",
	Short: "reckeep - personal record keeper",
	Long: `reckeep stores small named records (name + value) in a local JSON
file, with automatic timestamped backups on every change and optional
best-effort mirroring into a SurrealDB instance.

Examples:
  # Add a record
  reckeep add wifi secret1

  # List everything
  reckeep list

  # Find records by name or id
  reckeep search wifi

  # Sorted listing
  reckeep sort name desc`,
	SilenceUsage: true,
}

var (
	// Global flags that apply to all commands
	storePath string
	format    string
	quiet     bool
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&storePath, "store", "s", "", "Store file path (default records.json)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "table", "Output format: table|json|yaml")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress headers")

	rootCmd.AddCommand(
		addCmd,
		listCmd,
		updateCmd,
		deleteCmd,
		searchCmd,
		sortCmd,
		exportCmd,
		statsCmd,
	)
}
