// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/timeconv/internal/history"
	"github.com/pdiddy/timeconv/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, export, or clear recorded conversions",
	Long: `History manages the local SQLite ledger written by convert --record
(or history.enabled in the config file).`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent conversions",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(cmd.OutOrStdout(), entries, jsonOutput)
}

func formatHistoryOutput(w io.Writer, entries []types.HistoryEntry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-6s  %-20s  %-12s  %-16s  %s\n", "ID", "Recorded", "Input", "Days", "Seconds")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, e := range entries {
		input := fmt.Sprint(e.Input)
		if len(input) > 12 {
			input = input[:9] + "..."
		}
		fmt.Fprintf(w, "%-6d  %-20s  %-12s  %-16g  %g\n",
			e.ID, e.RecordedAt.Format("2006-01-02 15:04:05"), input, e.Days, e.Seconds)
	}
	fmt.Fprintf(w, "\n%d entries\n", len(entries))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history to YAML or JSON",
	Long: `Export writes every recorded conversion to export.yaml or export.json
in the history directory.`,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(cmd.Context())
	case "json":
		path, err = store.ExportJSON(cmd.Context())
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded conversion",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", n)
		return nil
	},
}

// --- shared helpers ---

func openHistory(cmd *cobra.Command) (*history.Store, error) {
	if err := bindFlags(cmd.Flags(), map[string]string{
		"history-dir": "history.dir",
		"max-results": "history.max_results",
	}); err != nil {
		return nil, err
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return history.NewStore(cfg.History)
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	historyCmd.PersistentFlags().String("history-dir", "", "directory for the history database (default ~/.local/share/timeconv)")
	historyCmd.PersistentFlags().Int("max-results", 20, "default number of entries listed")

	historyListCmd.Flags().Int("limit", 0, "maximum entries (0 = use default, -1 = all)")
	historyListCmd.Flags().Bool("json", false, "output entries as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
