// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/timeconv/internal/convert"
	"github.com/pdiddy/timeconv/internal/history"
	"github.com/pdiddy/timeconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [years...]",
	Short: "Convert year counts to days, hours, minutes, and seconds",
	Long: `Convert prints, for each year count, the equivalent number of days,
hours, minutes, and seconds. Year counts come from the arguments and from a
YAML file given with --file (a list of values). With neither, the configured
default_years value is converted.

Values that are not numbers are reported on stderr with their type; the
command exits non-zero when any value failed.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd.Flags(), map[string]string{
		"format":      "format",
		"record":      "history.enabled",
		"history-dir": "history.dir",
	}); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := types.ParseOutputFormat(string(cfg.Format))
	if err != nil {
		return err
	}

	inputs, err := collectInputs(cmd, args, cfg.DefaultYears)
	if err != nil {
		return err
	}

	opts := convert.BatchOptions{Format: format}
	if cfg.History.Enabled {
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Recorder = store
	}

	result, err := convert.ConvertBatch(cmd.Context(), inputs, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d input(s) failed conversion", result.Failed)
	}
	return nil
}

// collectInputs gathers file values first, then arguments. Arguments stay
// strings; their coercion happens in the converter.
func collectInputs(cmd *cobra.Command, args []string, fallback string) ([]any, error) {
	var inputs []any

	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		vals, err := convert.LoadInputs(file)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, vals...)
	}
	for _, a := range args {
		inputs = append(inputs, a)
	}

	if len(inputs) == 0 {
		inputs = append(inputs, fallback)
	}
	return inputs, nil
}

func init() {
	convertCmd.Flags().String("file", "", "YAML file holding a list of year values")
	convertCmd.Flags().String("format", "text", "output format: text, yaml, or json")
	convertCmd.Flags().Bool("record", false, "record successful conversions in the history database")
	convertCmd.Flags().String("history-dir", "", "directory for the history database (default ~/.local/share/timeconv)")

	rootCmd.AddCommand(convertCmd)
}
