// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the timeconv CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/timeconv/internal/logging"
	"github.com/pdiddy/timeconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the timeconv CLI.
var rootCmd = &cobra.Command{
	Use:   "timeconv",
	Short: "Convert a number of years into days, hours, minutes, and seconds",
	Long: `timeconv converts year counts into the equivalent days, hours, minutes,
and seconds (365 days per year). Inputs that are not numbers are reported
with their value and type and do not stop the remaining conversions.

Conversions can optionally be recorded to a local SQLite history that is
listed and exported with the history subcommand.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd.Flags(), map[string]string{"log-level": "log_level"}); err != nil {
			return err
		}
		logger, err := logging.New(viper.GetString("log_level"), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Info("using config file", zap.String("path", used))
		}
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./timeconv.yaml or ~/.config/timeconv/timeconv.yaml)")
	rootCmd.PersistentFlags().String("log-level", "error", "log level: debug, info, warn, error")
}

func initConfig() {
	viper.SetDefault("format", string(types.FormatText))
	viper.SetDefault("log_level", "error")
	viper.SetDefault("default_years", "60")
	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.dir", defaultHistoryDir())
	viper.SetDefault("history.max_results", 20)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("timeconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "timeconv"))
		}
	}

	viper.SetEnvPrefix("TIMECONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; PersistentPreRunE logs the one in use.
	_ = viper.ReadInConfig()
}

func defaultHistoryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".timeconv"
	}
	return filepath.Join(home, ".local", "share", "timeconv")
}

// bindFlags binds the named flags of fs, where present, to viper keys so
// that an explicitly set flag overrides config and environment values.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// loadConfig decodes the merged viper settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
