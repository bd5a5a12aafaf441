package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/pangan/internal/cli"
	"github.com/theirongolddev/pangan/internal/model"
)

var sectionCmd = &cobra.Command{
	Use:   "section <id>",
	Short: "Indicators, traffic lights and alerts for one section",
	Long: "Print one dashboard section. IDs come from the payload, e.g.\n" +
		"availability, accessibility, affordability, acceptability, fiscal, risks.",
	Args: cobra.ExactArgs(1),
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}

func runSection(cmd *cobra.Command, args []string) error {
	d, _, err := loadDashboard()
	if err != nil {
		return err
	}

	sec, ok := d.Section(args[0])
	if !ok {
		ids := append([]string{d.Overview.ID}, d.SectionIDs()...)
		return fmt.Errorf("unknown section %q (available: %s)", args[0], strings.Join(ids, ", "))
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(sec.Title))
	fmt.Fprintln(out)
	if len(sec.KPIs) > 0 {
		fmt.Fprint(out, cli.RenderTable(kpiTable("Indikator Utama", sec.KPIs)))
	}

	if len(sec.TrafficLights) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Status")
		for _, tl := range sec.TrafficLights {
			fmt.Fprintf(out, "    %s %s\n", cli.RenderLight(tl.Status), tl.Name)
		}
	}

	if len(sec.Alerts) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Peringatan")
		for _, a := range sec.Alerts {
			fmt.Fprintf(out, "    %s %s\n", alertTag(a.Type), a.Title)
			fmt.Fprintf(out, "        %s\n", a.Desc)
		}
	}

	if !flagQuiet {
		for _, c := range sec.Charts {
			switch {
			case c.Kind == model.ChartBar && len(c.Series) == 1:
				fmt.Fprintln(out)
				fmt.Fprint(out, renderBarChart(c))
			case c.Kind == model.ChartLine:
				fmt.Fprintln(out)
				fmt.Fprint(out, renderSparklines(c))
			}
		}
	}
	fmt.Fprintln(out)
	return nil
}

func alertTag(t model.AlertType) string {
	switch t {
	case model.AlertDanger:
		return "[!!]"
	case model.AlertWarning:
		return "[! ]"
	default:
		return "[i ]"
	}
}

// renderBarChart prints a single-series bar chart as horizontal bars.
func renderBarChart(c model.Chart) string {
	labelW := 0
	for _, l := range c.Labels {
		labelW = max(labelW, len([]rune(l)))
	}
	peak := c.Peak()

	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", c.Title)
	vals := c.Series[0].Values
	for i, l := range c.Labels {
		if i >= len(vals) {
			break
		}
		b.WriteString(cli.RenderHorizontalBar(l, vals[i], peak, labelW, 30))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSparklines prints one sparkline per series of a line chart.
func renderSparklines(c model.Chart) string {
	nameW := 0
	for _, sr := range c.Series {
		nameW = max(nameW, len([]rune(sr.Name)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", c.Title)
	for _, sr := range c.Series {
		name := sr.Name + strings.Repeat(" ", nameW-len([]rune(sr.Name)))
		fmt.Fprintf(&b, "    %s  %s\n", name, cli.RenderSparkline(sr.Values))
	}
	return b.String()
}
