package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/pangan/internal/tui/theme"
)

// keyMap holds the dashboard bindings. Tab shortcuts come from
// components.Tabs and are not listed here.
type keyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Reload    key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Down      key.Binding
	Up        key.Binding
	Top       key.Binding
	Bottom    key.Binding
	ScrollDn  key.Binding
	ScrollUp  key.Binding
	HalfDown  key.Binding
	HalfUp    key.Binding
	Search    key.Binding
	Sort      key.Binding
	ClearTerm key.Binding
	Edit      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Reload:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
		NextTab:   key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "prev tab")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "move")),
		Up:        key.NewBinding(key.WithKeys("k", "up")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g/G", "top/bottom")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end")),
		ScrollDn:  key.NewBinding(key.WithKeys("J", "pgdown"), key.WithHelp("J/K", "scroll")),
		ScrollUp:  key.NewBinding(key.WithKeys("K", "pgup")),
		HalfDown:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("^d/^u", "half page")),
		HalfUp:    key.NewBinding(key.WithKeys("ctrl+u")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:      key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "sort")),
		ClearTerm: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// hints renders bindings as "key desc" pairs for the status bar.
func hints(bindings ...key.Binding) string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space.Render(" ")+descStyle.Render(h.Desc))
	}
	return strings.Join(parts, space.Render("  "))
}
