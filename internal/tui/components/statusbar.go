package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/theirongolddev/pangan/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, data
// info on the right. The right side is dropped first when space runs out.
func RenderStatusBar(width int, hints, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " " + hints
	right := ""
	if info != "" {
		right = info + " "
	}

	padding := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if padding < 1 {
		right = ""
		padding = max(0, width-ansi.StringWidth(left))
	}

	bar := ansi.Truncate(left+strings.Repeat(" ", padding)+right, width, "")
	return style.Render(bar)
}
