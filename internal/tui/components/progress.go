package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/pangan/internal/cli"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

// ProgressBar renders a progress bar with percentage. pct is 0-1.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	filled := min(max(int(pct*float64(width)), 0), width)

	// Color gradient based on progress
	var barColor lipgloss.Color
	switch {
	case pct >= 0.8:
		barColor = t.AccentBright
	case pct >= 0.5:
		barColor = t.Accent
	default:
		barColor = t.Cyan
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ColorForRealization returns green/yellow/orange/red for a 0-1 realization
// level; higher is better.
func ColorForRealization(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.85:
		return string(t.Green)
	case pct >= 0.7:
		return string(t.Yellow)
	case pct >= 0.5:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// RealizationBar renders a realization percentage (0-100 scale) as a solid
// bar followed by the raw value. The bar is clamped; the label is not.
func RealizationBar(realization float64, barWidth int) string {
	t := theme.Active

	pct := min(max(realization/100, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(ColorForRealization(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForRealization(pct))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%4s", cli.FormatRealization(realization)))
}
