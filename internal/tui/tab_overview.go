package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/theirongolddev/pangan/internal/tui/components"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	d := a.dash
	compact := a.isCompactLayout()

	var b strings.Builder

	// Row 1: executive summary
	if len(d.Summary) > 0 {
		b.WriteString(a.renderSummaryCards(cw))
		b.WriteString("\n")
	}

	// Row 2: overview KPIs
	if len(d.Overview.KPIs) > 0 {
		b.WriteString(components.KPIRow(d.Overview.KPIs, cw, compact))
		b.WriteString("\n")
	}

	// Row 3: charts
	if charts := a.renderCharts(d.Overview.Charts, cw); charts != "" {
		b.WriteString(charts)
		b.WriteString("\n")
	}

	// Row 4: recommendations + traffic-light roll-up
	bulletStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var cards []string
	widths := components.LayoutRow(cw, 2)
	if compact {
		widths = []int{cw, cw}
	}

	if len(d.Recommendations) > 0 {
		inner := components.CardInnerWidth(widths[0])
		wrap := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(max(inner-2, 1))
		lines := make([]string, 0, len(d.Recommendations))
		for _, r := range d.Recommendations {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				bulletStyle.Render("•")+space.Render(" "), wrap.Render(r)))
		}
		cards = append(cards, components.ContentCard("Rekomendasi Kebijakan Fiskal", strings.Join(lines, "\n"), widths[0]))
	}

	if len(d.TrafficSummary) > 0 {
		w := widths[len(cards)%2]
		cards = append(cards, components.ContentCard("Status Indikator",
			components.TrafficSummary(d.TrafficSummary, components.CardInnerWidth(w)), w))
	}

	if len(cards) > 0 {
		if compact || len(cards) == 1 {
			b.WriteString(strings.Join(cards, "\n"))
		} else {
			b.WriteString(components.CardRow(cards))
		}
	}

	return b.String()
}

// renderSummaryCards lays out the executive summary, three per row (two in
// compact layout).
func (a App) renderSummaryCards(cw int) string {
	t := theme.Active
	perRow := 3
	if a.isCompactLayout() {
		perRow = 2
	}

	var rows []string
	items := a.dash.Summary
	for start := 0; start < len(items); start += perRow {
		end := min(start+perRow, len(items))
		widths := components.LayoutRow(cw, end-start)
		cards := make([]string, 0, end-start)
		for i, it := range items[start:end] {
			inner := components.CardInnerWidth(widths[i])
			text := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(inner).
				Render(ansi.Truncate(it.Text, inner*4, "…"))
			cards = append(cards, components.ContentCard(it.Title, text, widths[i]))
		}
		rows = append(rows, components.CardRow(cards))
	}
	return strings.Join(rows, "\n")
}
