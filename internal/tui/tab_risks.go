package tui

import (
	"strings"

	"github.com/theirongolddev/pangan/internal/tui/components"
)

// renderRisksTab renders the risk KPIs, alert cards and projection charts.
func (a App) renderRisksTab(cw int) string {
	sec, _ := a.dash.Section("risks")
	compact := a.isCompactLayout()

	var b strings.Builder
	if len(sec.KPIs) > 0 {
		b.WriteString(components.KPIRow(sec.KPIs, cw, compact))
		b.WriteString("\n")
	}

	if n := len(sec.Alerts); n > 0 {
		if compact {
			cards := make([]string, 0, n)
			for _, al := range sec.Alerts {
				cards = append(cards, components.AlertCard(al, cw))
			}
			b.WriteString(strings.Join(cards, "\n"))
		} else {
			widths := components.LayoutRow(cw, n)
			cards := make([]string, 0, n)
			for i, al := range sec.Alerts {
				cards = append(cards, components.AlertCard(al, widths[i]))
			}
			b.WriteString(components.CardRow(cards))
		}
		b.WriteString("\n")
	}

	b.WriteString(a.renderCharts(sec.Charts, cw))
	return b.String()
}
