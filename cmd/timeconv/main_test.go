// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/timeconv/pkg/types"
)

// execute runs the CLI in a scratch home and working directory.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	viper.Reset()
	resetFlags(rootCmd)

	var out, errb bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errb)
	rootCmd.SetArgs(args)
	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

// resetFlags restores every flag to its default so runs do not leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestConvertCommand(t *testing.T) {
	stdout, _, err := execute(t, "convert", "60")
	require.NoError(t, err)
	assert.Equal(t, "60 is:\n   21900 days\n   525600 hours\n   31536000 minutes\n   1892160000 seconds\n", stdout)
}

func TestConvertCommand_DefaultYears(t *testing.T) {
	stdout, _, err := execute(t, "convert")
	require.NoError(t, err)
	assert.Contains(t, stdout, "60 is:")
	assert.Contains(t, stdout, "1892160000 seconds")
}

func TestConvertCommand_InvalidInput(t *testing.T) {
	stdout, stderr, err := execute(t, "convert", "abc", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 input(s) failed conversion")
	assert.Contains(t, stderr, "Expecting a number for years, got abc, a string.")
	assert.Contains(t, stdout, "2 is:", "valid inputs still convert")
}

func TestConvertCommand_JSON(t *testing.T) {
	stdout, _, err := execute(t, "convert", "--format", "json", "1")
	require.NoError(t, err)

	var got []types.Conversion
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 31536000.0, got[0].Seconds)
}

func TestConvertCommand_FormatFromEnv(t *testing.T) {
	t.Setenv("TIMECONV_FORMAT", "yaml")
	stdout, _, err := execute(t, "convert", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "input_type: string")
	assert.Contains(t, stdout, "seconds:")
}

func TestConvertCommand_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "convert", "--format", "csv", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestConvertCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "years.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- 1\n- true\n"), 0o644))

	stdout, stderr, err := execute(t, "convert", "--file", path)
	require.Error(t, err)
	assert.Contains(t, stdout, "1 is:")
	assert.Contains(t, stderr, "got true, a bool.")
}

func TestHistoryRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "history")

	_, _, err := execute(t, "convert", "--record", "--history-dir", dir, "1", "2")
	require.NoError(t, err)

	stdout, _, err := execute(t, "history", "list", "--history-dir", dir, "--json")
	require.NoError(t, err)

	var entries []types.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 2.0, entries[0].Years)

	stdout, _, err = execute(t, "history", "export", "--history-dir", dir, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, "export.json"))

	stdout, _, err = execute(t, "history", "clear", "--history-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed 2 entries")
}

func TestHistoryList_Table(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "history")
	stdout, _, err := execute(t, "history", "list", "--history-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No conversions recorded.")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "timeconv dev\n", stdout)
}

func TestConfigFlagUsageNamesSearchedFile(t *testing.T) {
	usage := rootCmd.PersistentFlags().Lookup("config").Usage
	assert.Contains(t, usage, "~/.config/timeconv/timeconv.yaml")
	assert.NotContains(t, usage, "config.yaml")
}

func TestConvertCommand_OutOfRange(t *testing.T) {
	stdout, stderr, err := execute(t, "convert", "--format", "json", "1", "1e305")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 input(s) failed conversion")
	assert.Contains(t, stderr, "got 1e305, a string.")

	var got []types.Conversion
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 1)
}
