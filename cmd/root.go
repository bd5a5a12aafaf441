// Package cmd implements the pangan CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/pangan/internal/config"
	"github.com/theirongolddev/pangan/internal/dataset"
	"github.com/theirongolddev/pangan/internal/logging"
	"github.com/theirongolddev/pangan/internal/model"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

var (
	flagData  string
	flagQuiet bool
	flagTheme string
)

// cfg is the configuration resolved by the root pre-run hook.
var (
	cfg       = config.DefaultConfig()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "pangan",
	Short: "Food security dashboard",
	Long: "Dashboard Ketahanan Pangan Nasional: food availability, accessibility,\n" +
		"affordability and acceptability indicators, fiscal policy and risks.",
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagData, "data", "d", "", "Dashboard payload JSON (default: $"+config.DataEnv+", config, built-in)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme for this run")
}

// initRuntime loads .env and the config file, then points logrus at the log
// file. A broken config is reported and replaced by defaults.
func initRuntime(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "  Ignoring .env: %v\n", err)
	}

	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  %v (using defaults)\n", err)
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	if flagTheme != "" {
		if !theme.Valid(flagTheme) {
			return fmt.Errorf("unknown theme %q (available: %v)", flagTheme, theme.Names())
		}
		cfg.Appearance.Theme = flagTheme
	}
	theme.SetActive(cfg.Appearance.Theme)

	closer, err := logging.Setup(config.LogPath(cfg), cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Logging disabled: %v\n", err)
		closer, _ = logging.Setup("", "")
	}
	logCloser = closer
	log.Debugf("pangan starting, config %s", config.ConfigPath())
	return nil
}

// dataPath resolves the payload file: flag, then env, then config.
func dataPath() string {
	if flagData != "" {
		return flagData
	}
	return config.DataFile(cfg)
}

// loadDashboard is the shared data loading path used by all commands.
func loadDashboard() (*model.Dashboard, dataset.Result, error) {
	res, err := dataset.Load(dataPath())
	if err != nil {
		return nil, res, err
	}
	if res.Fallback && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Could not use %s: %v\n  Showing built-in data.\n", dataPath(), res.Err)
	}
	return res.Dashboard, res, nil
}
