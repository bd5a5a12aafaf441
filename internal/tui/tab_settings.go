package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/pangan/internal/cli"
	"github.com/theirongolddev/pangan/internal/config"
	"github.com/theirongolddev/pangan/internal/tui/components"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

const (
	settingsFieldTheme = iota
	settingsFieldDefaultTab
	settingsFieldDataFile
	settingsFieldLogLevel
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

// updateSettingsKeys handles field navigation. ok is false when the key is
// not a settings key.
func (a App) updateSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keys.Down):
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return a, nil, true
	case key.Matches(msg, a.keys.Up):
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil, true
	case key.Matches(msg, a.keys.Edit):
		m, cmd := a.settingsStartEdit()
		return m, cmd, true
	}
	return a, nil, false
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldDefaultTab:
		ti.Placeholder = "overview, availability, ..., fiscal, risks"
		ti.SetValue(cfg.General.DefaultTab)
	case settingsFieldDataFile:
		ti.Placeholder = "path to payload JSON (empty for built-in)"
		ti.SetValue(cfg.General.DataFile)
	case settingsFieldLogLevel:
		ti.Placeholder = "debug, info, warn, error"
		ti.SetValue(cfg.Log.Level)
	}

	a.settings.input = ti
	return a, a.settings.input.Focus()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case key.Matches(msg, a.keys.Cancel):
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave validates the edited value and persists it. Invalid values
// are reported and not written.
func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		if !theme.Valid(val) {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldDefaultTab:
		if components.TabIdxByID(val) < 0 {
			a.settings.saveErr = fmt.Errorf("unknown tab %q", val)
			return
		}
		cfg.General.DefaultTab = val
	case settingsFieldDataFile:
		// Takes effect on the next reload.
		cfg.General.DataFile = val
		a.dataPath = config.DataFile(cfg)
	case settingsFieldLogLevel:
		lvl, err := log.ParseLevel(val)
		if err != nil {
			a.settings.saveErr = err
			return
		}
		cfg.Log.Level = val
		log.SetLevel(lvl)
	}

	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr != nil {
		log.Errorf("saving settings: %v", a.settings.saveErr)
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	dataFile := cfg.General.DataFile
	if dataFile == "" {
		dataFile = "(built-in)"
	}

	fields := []struct{ label, value string }{
		{"Theme", cfg.Appearance.Theme},
		{"Default Tab", cfg.General.DefaultTab},
		{"Data File", dataFile},
		{"Log Level", cfg.Log.Level},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-14s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-14s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			used := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if pad := components.CardInnerWidth(cw) - used; pad > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-14s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	source := a.result.Source
	if a.result.Fallback {
		source += " (fallback: " + a.result.Err.Error() + ")"
	}
	var info strings.Builder
	info.WriteString(labelStyle.Render("Data source:   ") + valueStyle.Render(source) + "\n")
	if a.dash != nil {
		info.WriteString(labelStyle.Render("Sections:      ") + valueStyle.Render(fmt.Sprintf("%d", len(a.dash.Sections))) + "\n")
		info.WriteString(labelStyle.Render("Budget lines:  ") + valueStyle.Render(fmt.Sprintf("%d", len(a.dash.Budget))) + "\n")
	}
	info.WriteString(labelStyle.Render("Loaded:        ") + valueStyle.Render(cli.FormatDateID(a.result.LoadedAt)) + "\n")
	info.WriteString(labelStyle.Render("Config file:   ") + valueStyle.Render(config.ConfigPath()) + "\n")
	info.WriteString(labelStyle.Render("Log file:      ") + valueStyle.Render(config.LogPath(cfg)))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", info.String(), cw))
	return b.String()
}
