// Package components provides reusable TUI widgets for the pangan dashboard.
package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/theirongolddev/pangan/internal/model"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// TrendColor maps a KPI trend to its theme color.
func TrendColor(tr model.Trend) lipgloss.Color {
	t := theme.Active
	switch tr {
	case model.TrendPositive:
		return t.Green
	case model.TrendNegative:
		return t.Red
	default:
		return t.TextMuted
	}
}

// KPICard renders one KPI: label, bold value, and the change with its trend
// arrow. outerWidth is the total rendered width including border.
func KPICard(k model.KPI, outerWidth int) string {
	t := theme.Active

	contentWidth := max(outerWidth-2, 10) // subtract border
	inner := max(contentWidth-2, 1)       // subtract padding

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	valueStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(true)

	changeStyle := lipgloss.NewStyle().
		Foreground(TrendColor(k.Trend)).
		Background(t.Surface)

	content := labelStyle.Render(ansi.Truncate(k.Label, inner, "…")) + "\n" +
		valueStyle.Render(ansi.Truncate(k.Value, inner, "…")) + "\n" +
		changeStyle.Render(ansi.Truncate(k.Trend.Arrow()+" "+k.Change, inner, "…"))

	return cardStyle.Render(content)
}

// KPIRow renders KPI cards side by side. In compact mode the cards wrap two
// per row.
func KPIRow(kpis []model.KPI, totalWidth int, compact bool) string {
	if len(kpis) == 0 {
		return ""
	}

	perRow := len(kpis)
	if compact && perRow > 2 {
		perRow = 2
	}

	var rows []string
	for start := 0; start < len(kpis); start += perRow {
		end := min(start+perRow, len(kpis))
		widths := LayoutRow(totalWidth, end-start)
		var rendered []string
		for i, k := range kpis[start:end] {
			rendered = append(rendered, KPICard(k, widths[i]))
		}
		rows = append(rows, CardRow(rendered))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := max(outerWidth-2, 10) // subtract border chars

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(ansi.Truncate(title, CardInnerWidth(outerWidth), "…")) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered card strings horizontally. Shorter cards are
// padded with the theme background so the row stays rectangular.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	t := theme.Active

	tallest := 0
	for _, c := range cards {
		tallest = max(tallest, lipgloss.Height(c))
	}

	padded := make([]string, len(cards))
	for i, c := range cards {
		padded[i] = lipgloss.Place(lipgloss.Width(c), tallest, lipgloss.Left, lipgloss.Top, c,
			lipgloss.WithWhitespaceBackground(t.Background))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-4, 10) // 2 border + 2 padding
}
