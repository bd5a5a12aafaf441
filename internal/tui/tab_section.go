package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/pangan/internal/model"
	"github.com/theirongolddev/pangan/internal/tui/components"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

const (
	chartHeight        = 12
	compactChartHeight = 10
)

// renderSectionTab renders a pillar section: KPI cards, the traffic-light
// card and the section charts.
func (a App) renderSectionTab(id string, cw int) string {
	t := theme.Active
	sec, ok := a.dash.Section(id)
	if !ok {
		return components.ContentCard("", lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("Section "+id+" is not in this payload"), cw)
	}

	var b strings.Builder
	if len(sec.KPIs) > 0 {
		b.WriteString(components.KPIRow(sec.KPIs, cw, a.isCompactLayout()))
		b.WriteString("\n")
	}
	if len(sec.TrafficLights) > 0 {
		b.WriteString(components.ContentCard(sec.Title+" · Status",
			components.TrafficLights(sec.TrafficLights, components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
	}
	b.WriteString(a.renderCharts(sec.Charts, cw))
	return b.String()
}

// renderCharts lays charts out two per row, or stacked in compact layout.
func (a App) renderCharts(charts []model.Chart, cw int) string {
	if len(charts) == 0 {
		return ""
	}

	h := chartHeight
	perRow := 2
	if a.isCompactLayout() {
		h = compactChartHeight
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(charts); start += perRow {
		end := min(start+perRow, len(charts))
		widths := components.LayoutRow(cw, end-start)
		cards := make([]string, 0, end-start)
		for i, c := range charts[start:end] {
			cards = append(cards, chartCard(c, widths[i], h))
		}
		rows = append(rows, components.CardRow(cards))
	}
	return strings.Join(rows, "\n")
}

func chartCard(c model.Chart, outerWidth, height int) string {
	title := c.Title
	if c.YTitle != "" && !strings.Contains(title, c.YTitle) {
		title += " · " + c.YTitle
	}
	return components.ContentCard(title, components.Chart(c, components.CardInnerWidth(outerWidth), height), outerWidth)
}
