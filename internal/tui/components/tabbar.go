package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/pangan/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	ID     string // section ID, or "settings"
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{ID: "overview", Name: "Overview", Key: 'o', KeyPos: 0},
	{ID: "availability", Name: "Availability", Key: 'v', KeyPos: 1},
	{ID: "accessibility", Name: "Accessibility", Key: 'c', KeyPos: 1},
	{ID: "affordability", Name: "Affordability", Key: 'd', KeyPos: 5},
	{ID: "acceptability", Name: "Acceptability", Key: 'p', KeyPos: 4},
	{ID: "fiscal", Name: "Fiscal", Key: 'f', KeyPos: 0},
	{ID: "risks", Name: "Risks", Key: 'r', KeyPos: 0},
	{ID: "settings", Name: "Settings", Key: 'x', KeyPos: -1}, // x is not in "Settings"
}

// TabPos is where a tab lands in the rendered bar.
type TabPos struct {
	Row   int
	X     int
	Width int
}

// TabVisualWidth is the rendered width of a tab: one column of padding on
// each side, plus the bracketed shortcut when inactive.
func TabVisualWidth(tab Tab, active bool) int {
	w := lipgloss.Width(tab.Name) + 2
	if !active {
		if tab.KeyPos >= 0 {
			w += 2 // "[" and "]" around the letter
		} else {
			w += 3 // "[x]" appended
		}
	}
	return w
}

// LayoutTabs places tabs left to right, wrapping to a new row when the next
// tab would not fit in width. Tabs are separated by one column and rows
// start after a one-column margin.
func LayoutTabs(activeIdx, width int) []TabPos {
	pos := make([]TabPos, len(Tabs))
	row, x := 0, 1
	for i, tab := range Tabs {
		w := TabVisualWidth(tab, i == activeIdx)
		if x > 1 && x+w > width {
			row++
			x = 1
		}
		pos[i] = TabPos{Row: row, X: x, Width: w}
		x += w + 1
	}
	return pos
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	barStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(width)

	layout := LayoutTabs(activeIdx, width)
	rows := make([]strings.Builder, layout[len(layout)-1].Row+1)
	for i := range rows {
		rows[i].WriteString(inactiveStyle.Render(" "))
	}

	for i, tab := range Tabs {
		var rendered string
		switch {
		case i == activeIdx:
			rendered = activeStyle.Render(" " + tab.Name + " ")
		case tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name):
			before := tab.Name[:tab.KeyPos]
			key := string(tab.Name[tab.KeyPos])
			after := tab.Name[tab.KeyPos+1:]
			rendered = inactiveStyle.Render(" "+before) +
				dimKeyStyle.Render("[") + keyStyle.Render(key) + dimKeyStyle.Render("]") +
				inactiveStyle.Render(after+" ")
		default:
			// Key not in name (e.g., "Settings" with 'x')
			rendered = inactiveStyle.Render(" "+tab.Name) +
				dimKeyStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimKeyStyle.Render("]") +
				inactiveStyle.Render(" ")
		}

		r := &rows[layout[i].Row]
		if r.Len() > 0 && i > 0 && layout[i-1].Row == layout[i].Row {
			r.WriteString(inactiveStyle.Render(" "))
		}
		r.WriteString(rendered)
	}

	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = barStyle.Render(rows[i].String())
	}
	return strings.Join(lines, "\n")
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// TabIdxByID returns the tab index for a section ID, or -1.
func TabIdxByID(id string) int {
	for i, tab := range Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}
