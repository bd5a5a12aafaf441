package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/pangan/internal/cli"
	"github.com/theirongolddev/pangan/internal/model"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Executive summary and headline indicators",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	d, res, err := loadDashboard()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(strings.ToUpper(d.Title)))
	fmt.Fprintf(out, "  %s\n  %s · %s\n\n", d.Subtitle, cli.FormatDateID(res.LoadedAt), res.Source)

	for _, s := range d.Summary {
		fmt.Fprintf(out, "  %s\n", s.Title)
		fmt.Fprintf(out, "    %s\n\n", s.Text)
	}

	fmt.Fprint(out, cli.RenderTable(kpiTable(d.Overview.Title, d.Overview.KPIs)))

	if len(d.TrafficSummary) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Status Indikator")
		for _, ts := range d.TrafficSummary {
			fmt.Fprintf(out, "    %s %-24s %d\n", cli.RenderLight(ts.Light), ts.Label, ts.Count)
		}
	}

	if len(d.Recommendations) > 0 && !flagQuiet {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Rekomendasi Kebijakan Fiskal")
		for _, r := range d.Recommendations {
			fmt.Fprintf(out, "    • %s\n", r)
		}
	}
	fmt.Fprintln(out)

	if res.Fallback {
		fmt.Fprintf(os.Stderr, "  Built-in data shown (%v)\n", res.Err)
	}
	return nil
}

// kpiTable lays out KPI cards as table rows.
func kpiTable(title string, kpis []model.KPI) cli.Table {
	rows := make([][]string, 0, len(kpis))
	for _, k := range kpis {
		rows = append(rows, []string{k.Label, k.Value, cli.FormatChange(k)})
	}
	return cli.Table{
		Title:   title,
		Headers: []string{"Indikator", "Nilai", "Perubahan"},
		Rows:    rows,
	}
}
