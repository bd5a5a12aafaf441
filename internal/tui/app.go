// Package tui provides the interactive Bubble Tea dashboard for pangan.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/pangan/internal/cli"
	"github.com/theirongolddev/pangan/internal/config"
	"github.com/theirongolddev/pangan/internal/dataset"
	"github.com/theirongolddev/pangan/internal/model"
	"github.com/theirongolddev/pangan/internal/tui/components"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

// DataLoadedMsg is sent when a payload load (initial or reload) finishes.
type DataLoadedMsg struct {
	Result   dataset.Result
	LoadTime time.Duration
	Err      error
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	dash     *model.Dashboard
	result   dataset.Result
	loadErr  error
	loaded   bool
	loading  bool
	loadTime time.Duration
	dataPath string

	// Per-tab state. fiscal is shared by every copy of App so the budget
	// controller's render callback lands in the live model.
	fiscal   *fiscalState
	settings settingsState
	scroll   int

	// First-run setup (huh form). The form writes through setupVals, so it
	// is a pointer shared by every copy of App.
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	spinner spinner.Model
	keys    keyMap

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	now func() time.Time
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
)

// loadConfigOrDefault loads config, returning defaults on error so the TUI
// can always start.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Warnf("config unreadable, using defaults: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model reading the payload at dataPath (empty
// for the built-in payload).
func NewApp(dataPath string, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	active := components.TabIdxByID(cfg.General.DefaultTab)
	if active < 0 {
		active = 0
	}

	return App{
		dataPath:  dataPath,
		needSetup: !config.Exists(),
		activeTab: active,
		spinner:   sp,
		keys:      newKeyMap(),
		now:       time.Now,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.dataPath),
		a.spinner.Tick,
	)
}

// loadDataCmd reads the payload off the UI goroutine.
func loadDataCmd(path string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		res, err := dataset.Load(path)
		return DataLoadedMsg{Result: res, LoadTime: time.Since(start), Err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		a.scroll = min(a.scroll, a.maxScroll())
		return a, nil

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.loaded {
			return a, nil
		}

		// First-run setup form intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.loadErr != nil {
			if key.Matches(msg, a.keys.Quit) {
				return a, tea.Quit
			}
			return a, nil
		}

		// Text inputs own the keyboard while focused
		if a.currentTabID() == "settings" && a.settings.editing {
			return a.updateSettingsInput(msg)
		}
		if a.currentTabID() == "fiscal" && a.fiscal.searching {
			return a.updateFiscalSearch(msg)
		}

		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Reload) {
			if a.loading {
				return a, nil
			}
			a.loading = true
			log.Debugf("reloading payload from %q", a.dataPath)
			return a, loadDataCmd(a.dataPath)
		}

		switch a.currentTabID() {
		case "fiscal":
			if m, cmd, ok := a.updateFiscalKeys(msg); ok {
				return m, cmd
			}
		case "settings":
			if m, cmd, ok := a.updateSettingsKeys(msg); ok {
				return m, cmd
			}
		}

		if a.updateScroll(msg) {
			return a, nil
		}

		switch {
		case key.Matches(msg, a.keys.NextTab):
			a.selectTab((a.activeTab + 1) % len(components.Tabs))
			return a, nil
		case key.Matches(msg, a.keys.PrevTab):
			a.selectTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
			return a, nil
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.selectTab(idx)
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.loading = false
		a.loaded = true
		a.loadTime = msg.LoadTime
		if msg.Err != nil {
			log.Errorf("loading payload: %v", msg.Err)
			a.loadErr = msg.Err
			return a, nil
		}
		a.applyResult(msg.Result)

		if a.needSetup && a.setupForm == nil {
			a.setupVals = &SetupValues{}
			a.setupForm = newSetupForm(a.setupVals, a.dataPath)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// applyResult installs a freshly loaded payload. The budget controller is
// created once and fed replacements afterwards.
func (a *App) applyResult(res dataset.Result) {
	a.result = res
	a.dash = res.Dashboard
	a.loadErr = nil

	var lines []model.BudgetLine
	if a.dash != nil {
		lines = a.dash.Budget
	}
	if a.fiscal == nil {
		a.fiscal = newFiscalState(lines)
	} else {
		a.fiscal.ctrl.Replace(lines)
		a.fiscal.filtered = false
	}

	if res.Fallback {
		log.Warnf("showing built-in payload, %s unusable: %v", a.dataPath, res.Err)
	} else {
		log.Infof("loaded %d budget lines from %s in %s", len(lines), res.Source, a.loadTime)
	}
	a.scroll = min(a.scroll, a.maxScroll())
}

func (a *App) selectTab(idx int) {
	if idx == a.activeTab {
		return
	}
	a.activeTab = idx
	a.scroll = 0
}

func (a App) currentTabID() string {
	if a.activeTab < 0 || a.activeTab >= len(components.Tabs) {
		return ""
	}
	return components.Tabs[a.activeTab].ID
}

// updateScroll moves the content viewport. It reports whether msg was a
// scroll key.
func (a *App) updateScroll(msg tea.KeyMsg) bool {
	half := max(1, a.contentHeight()/2)
	switch {
	case key.Matches(msg, a.keys.Down), key.Matches(msg, a.keys.ScrollDn):
		a.scroll++
	case key.Matches(msg, a.keys.Up), key.Matches(msg, a.keys.ScrollUp):
		a.scroll--
	case key.Matches(msg, a.keys.HalfDown):
		a.scroll += half
	case key.Matches(msg, a.keys.HalfUp):
		a.scroll -= half
	case key.Matches(msg, a.keys.Top):
		a.scroll = 0
	case key.Matches(msg, a.keys.Bottom):
		a.scroll = a.maxScroll()
	default:
		return false
	}
	a.scroll = max(0, min(a.scroll, a.maxScroll()))
	return true
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.loaded || a.loadErr != nil || a.showHelp || (a.needSetup && a.setupForm != nil) {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.currentTabID() == "fiscal" {
			a.fiscal.moveCursor(-1)
		} else {
			a.scroll = max(0, a.scroll-1)
		}
	case tea.MouseButtonWheelDown:
		if a.currentTabID() == "fiscal" {
			a.fiscal.moveCursor(1)
		} else {
			a.scroll = min(a.scroll+1, a.maxScroll())
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		if tab := a.tabAt(msg.X, msg.Y); tab >= 0 {
			a.selectTab(tab)
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.saveSetupConfig(); err != nil {
			log.Errorf("saving setup: %v", err)
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.loadErr != nil {
		return a.viewError()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  pangan needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spinnerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	source := a.dataPath
	if source == "" {
		source = dataset.SourceBuiltin
	}

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ pangan"))
	b.WriteString(subtitleStyle.Render(" · Ketahanan Pangan Nasional"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Loading " + source + "..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3).
		Width(min(a.width-4, 72))

	titleStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := titleStyle.Render("Could not load dashboard data") + "\n\n" +
		textStyle.Render(a.loadErr.Error()) + "\n\n" +
		textStyle.Render("Press q to quit")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	tabKeys := make([]string, 0, len(components.Tabs))
	for _, tab := range components.Tabs {
		tabKeys = append(tabKeys, string(tab.Key))
	}

	groups := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{strings.Join(tabKeys, " "), "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k J K", "Scroll content"},
			{"^d ^u", "Half-page scroll"},
			{"g G", "Top / Bottom"},
		}},
		{"Fiscal", []struct{ key, desc string }{
			{"/", "Search programs"},
			{"1 2 3 4", "Sort by column (again to reverse)"},
			{"j k", "Move row cursor"},
			{"Esc", "Clear search"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"Enter", "Edit setting / Confirm"},
			{"R", "Reload data"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, g := range groups {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(g.title))
		b.WriteString("\n")
		for _, bind := range g.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-16s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderHeader renders the tab bar and the title/date/source line.
func (a App) renderHeader() string {
	t := theme.Active
	w := a.width

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface)

	left := space.Render(" ")
	if a.dash != nil {
		left += titleStyle.Render(a.dash.Title)
		if a.dash.Subtitle != "" && !a.isCompactLayout() {
			left += dimStyle.Render(" · ") + mutedStyle.Render(a.dash.Subtitle)
		}
	}

	source := mutedStyle.Render(a.result.Source)
	if a.result.Fallback {
		source = warnStyle.Render("⚠ " + a.result.Source)
	}
	right := mutedStyle.Render(cli.FormatDateID(a.now())) + dimStyle.Render(" │ ") + source + space.Render(" ")

	gap := w - ansi.StringWidth(left) - ansi.StringWidth(right)
	var line string
	if gap >= 1 {
		line = left + space.Render(strings.Repeat(" ", gap)) + right
	} else {
		line = ansi.Truncate(left, max(0, w-ansi.StringWidth(right)-1), "…")
		line += space.Render(strings.Repeat(" ", max(0, w-ansi.StringWidth(line)-ansi.StringWidth(right)))) + right
		line = ansi.Truncate(line, w, "")
	}

	return components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(line)
}

func (a App) renderStatusBar() string {
	k := a.keys
	var h string
	switch a.currentTabID() {
	case "fiscal":
		if a.fiscal != nil && a.fiscal.searching {
			h = hints(k.Confirm, k.Cancel)
		} else {
			h = hints(k.Search, k.Sort, k.Down, k.ClearTerm, k.Help, k.Quit)
		}
	case "settings":
		if a.settings.editing {
			h = hints(k.Confirm, k.Cancel)
		} else {
			h = hints(k.Down, k.Edit, k.Help, k.Quit)
		}
	default:
		h = hints(k.NextTab, k.ScrollDn, k.Reload, k.Help, k.Quit)
	}

	info := fmt.Sprintf("loaded in %dms", a.loadTime.Milliseconds())
	if a.loading {
		info = "reloading..."
	}
	return components.RenderStatusBar(a.width, h, info)
}

// contentHeight is the number of lines between the header and status bar.
func (a App) contentHeight() int {
	headerH := components.LayoutTabs(a.activeTab, a.width)[len(components.Tabs)-1].Row + 2
	return max(a.height-headerH-1, minContentHeight)
}

// renderContent renders the active tab at content width.
func (a App) renderContent(cw int) string {
	if a.dash == nil {
		return ""
	}
	switch id := a.currentTabID(); id {
	case "overview":
		return a.renderOverviewTab(cw)
	case "fiscal":
		return a.renderFiscalTab(cw)
	case "risks":
		return a.renderRisksTab(cw)
	case "settings":
		return a.renderSettingsTab(cw)
	default:
		return a.renderSectionTab(id, cw)
	}
}

// maxScroll is how far the content can scroll before its last line reaches
// the bottom of the viewport.
func (a App) maxScroll() int {
	if a.width < minTerminalWidth || a.dash == nil {
		return 0
	}
	lines := strings.Count(a.renderContent(a.contentWidth()), "\n") + 1
	return max(0, lines-a.contentHeight())
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := a.renderHeader()
	statusBar := a.renderStatusBar()
	contentH := a.contentHeight()

	content := scrollLines(a.renderContent(cw), a.scroll)
	content = padHeight(truncateHeight(content, contentH), contentH)

	// Fill each line to full width so gaps between cards carry the background
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func scrollLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if n >= len(lines) {
		return ""
	}
	return strings.Join(lines[n:], "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAt returns the tab index under the cell (x, y), or -1. Hitboxes come
// from the same layout RenderTabBar uses.
func (a App) tabAt(x, y int) int {
	for i, p := range components.LayoutTabs(a.activeTab, a.width) {
		if p.Row == y && x >= p.X && x < p.X+p.Width {
			return i
		}
	}
	return -1
}
