package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/theirongolddev/pangan/internal/model"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

// LightColor maps a traffic light to its theme color. Unknown values read
// as red.
func LightColor(l model.Light) lipgloss.Color {
	t := theme.Active
	switch l {
	case model.LightGreen:
		return t.Green
	case model.LightYellow:
		return t.Yellow
	default:
		return t.Red
	}
}

// StatusColor maps a budget status to its badge color.
func StatusColor(s model.Status) lipgloss.Color {
	t := theme.Active
	switch s {
	case model.StatusOnTrack:
		return t.Green
	case model.StatusAtRisk:
		return t.Yellow
	default:
		return t.Red
	}
}

// StatusBadge renders a budget status label in its color.
func StatusBadge(s model.Status) string {
	t := theme.Active
	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(StatusColor(s)).
		Bold(true).
		Padding(0, 1).
		Render(s.Label())
}

// TrafficLights lays out named indicators in columns that fit innerWidth.
func TrafficLights(lights []model.TrafficLight, innerWidth int) string {
	if len(lights) == 0 {
		return ""
	}
	t := theme.Active

	nameW := 0
	for _, l := range lights {
		nameW = max(nameW, ansi.StringWidth(l.Name))
	}
	cellW := nameW + 4 // dot, spaces, gutter
	cols := max(1, min(len(lights), innerWidth/cellW))

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, l := range lights {
		dot := lipgloss.NewStyle().Foreground(LightColor(l.Status)).Background(t.Surface).Render("●")
		name := ansi.Truncate(l.Name, max(1, innerWidth-2), "…")
		b.WriteString(dot + spaceStyle.Render(" ") + nameStyle.Render(name))

		last := i == len(lights)-1
		if (i+1)%cols == 0 || last {
			if !last {
				b.WriteString("\n")
			}
			continue
		}
		b.WriteString(spaceStyle.Render(strings.Repeat(" ", cellW-2-ansi.StringWidth(name))))
	}
	return b.String()
}

// TrafficSummary renders the light roll-up as "● Label  count" lines.
func TrafficSummary(items []model.TrafficSummary, innerWidth int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	lines := make([]string, 0, len(items))
	for _, it := range items {
		dot := lipgloss.NewStyle().Foreground(LightColor(it.Light)).Background(t.Surface).Render("●")
		count := fmt.Sprintf("%d", it.Count)
		gap := max(1, innerWidth-2-ansi.StringWidth(it.Label)-len(count))
		lines = append(lines, dot+spaceStyle.Render(" ")+labelStyle.Render(it.Label)+
			spaceStyle.Render(strings.Repeat(" ", gap))+countStyle.Render(count))
	}
	return strings.Join(lines, "\n")
}

// AlertColor maps an alert type to its accent color.
func AlertColor(a model.AlertType) lipgloss.Color {
	t := theme.Active
	switch a {
	case model.AlertInfo:
		return t.Blue
	case model.AlertDanger:
		return t.Red
	default:
		return t.Orange
	}
}

// AlertCard renders a risk alert with a colored border and wrapped text.
func AlertCard(a model.Alert, outerWidth int) string {
	t := theme.Active
	color := AlertColor(a.Type)
	inner := CardInnerWidth(outerWidth)

	titleStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Width(inner)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)

	body := titleStyle.Render(ansi.Truncate(a.Title, inner, "…")) + "\n" + descStyle.Render(a.Desc)
	return cardStyle.Render(body)
}
