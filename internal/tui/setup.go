package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/pangan/internal/config"
	"github.com/theirongolddev/pangan/internal/tui/components"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

// SetupValues are the answers collected by the setup form.
type SetupValues struct {
	Theme      string
	DefaultTab string
	DataFile   string
}

// SetupValuesFrom seeds the form from an existing configuration.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:      cfg.Appearance.Theme,
		DefaultTab: cfg.General.DefaultTab,
		DataFile:   cfg.General.DataFile,
	}
}

// Apply copies the answers into cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	if theme.Valid(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
	if components.TabIdxByID(v.DefaultTab) >= 0 {
		cfg.General.DefaultTab = v.DefaultTab
	}
	cfg.General.DataFile = strings.TrimSpace(v.DataFile)
}

// NewSetupForm builds the setup form bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	tabOpts := make([]huh.Option[string], 0, len(components.Tabs))
	for _, tab := range components.Tabs {
		if tab.ID == "settings" {
			continue
		}
		tabOpts = append(tabOpts, huh.NewOption(tab.Name, tab.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to pangan").
				Description("Dashboard Ketahanan Pangan Nasional.\nA few settings, saved to "+config.ConfigPath()+"."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewSelect[string]().
				Title("Open on tab").
				Options(tabOpts...).
				Value(&vals.DefaultTab),
			huh.NewInput().
				Title("Payload file").
				Description("JSON payload to load. Leave empty for the built-in data.").
				Placeholder("~/pangan/dashboard.json").
				Validate(validateDataFile).
				Value(&vals.DataFile),
		),
	).WithTheme(huh.ThemeDracula())
}

// validateDataFile accepts an empty path or an existing regular file.
func validateDataFile(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}

func newSetupForm(vals *SetupValues, dataPath string) *huh.Form {
	*vals = SetupValuesFrom(loadConfigOrDefault())
	if vals.DataFile == "" {
		vals.DataFile = dataPath
	}
	return NewSetupForm(vals)
}

// saveSetupConfig persists the setup answers and applies them to the
// running dashboard.
func (a *App) saveSetupConfig() error {
	cfg := loadConfigOrDefault()
	a.setupVals.Apply(&cfg)

	theme.SetActive(cfg.Appearance.Theme)
	if idx := components.TabIdxByID(cfg.General.DefaultTab); idx >= 0 {
		a.selectTab(idx)
	}

	return config.Save(cfg)
}
