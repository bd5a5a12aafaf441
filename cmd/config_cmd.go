package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/pangan/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Default tab: %s\n", cfg.General.DefaultTab)
	if cfg.General.DataFile != "" {
		fmt.Fprintf(out, "    Data file:   %s\n", cfg.General.DataFile)
	} else {
		fmt.Fprintln(out, "    Data file:   built-in")
	}
	if p := config.DataFile(cfg); p != cfg.General.DataFile {
		fmt.Fprintf(out, "    Effective:   %s (from $%s)\n", p, config.DataEnv)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Log]")
	fmt.Fprintf(out, "    Level: %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "    File:  %s\n", config.LogPath(cfg))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `pangan setup` to reconfigure.")
	return nil
}
