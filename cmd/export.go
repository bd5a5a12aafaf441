package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/pangan/internal/export"
)

var (
	flagFormat string
	flagOut    string
	flagTable  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export dashboard data to CSV or SQLite",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "csv", "Output format: csv or sqlite")
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (csv defaults to stdout)")
	exportCmd.Flags().StringVar(&flagTable, "table", "budget", "CSV table: budget or kpis")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	d, res, err := loadDashboard()
	if err != nil {
		return err
	}

	switch flagFormat {
	case "csv":
		table, err := export.ParseTable(flagTable)
		if err != nil {
			return err
		}
		if flagOut == "" {
			return export.WriteCSV(cmd.OutOrStdout(), d, table)
		}
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagOut, err)
		}
		if err := export.WriteCSV(f, d, table); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", flagOut, err)
		}

	case "sqlite":
		if flagOut == "" {
			return fmt.Errorf("--out is required for sqlite export")
		}
		store, err := export.Open(flagOut)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if err := store.SaveDashboard(d, res.Source); err != nil {
			return fmt.Errorf("exporting to %s: %w", flagOut, err)
		}

	default:
		return fmt.Errorf("unknown format %q (want csv or sqlite)", flagFormat)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exported to %s\n", flagOut)
	}
	return nil
}
