package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/pangan/internal/budget"
	"github.com/theirongolddev/pangan/internal/cli"
	"github.com/theirongolddev/pangan/internal/model"
	"github.com/theirongolddev/pangan/internal/tui/components"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

// fiscalState holds the budget table: the controller and the rows it last
// rendered, plus the search box and row cursor.
type fiscalState struct {
	ctrl      *budget.Controller
	rows      []model.BudgetLine
	cursor    int
	searching bool
	input     textinput.Model
	err       error // last rejected sort
	filtered  bool  // rows reflect the stored search term
}

func newFiscalState(lines []model.BudgetLine) *fiscalState {
	fs := &fiscalState{input: newSearchInput()}
	fs.ctrl = budget.New(lines, fs.render)
	return fs
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "nama program..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// render is the controller's RenderFunc.
func (fs *fiscalState) render(rows []model.BudgetLine) {
	fs.rows = rows
	fs.cursor = max(0, min(fs.cursor, len(rows)-1))
}

func (fs *fiscalState) moveCursor(delta int) {
	fs.cursor = max(0, min(fs.cursor+delta, len(fs.rows)-1))
}

func (fs *fiscalState) sortBy(col budget.Column) {
	if err := fs.ctrl.ActivateSort(col); err != nil {
		fs.err = err
		log.Debugf("sort rejected: %v", err)
		return
	}
	fs.err = nil
	fs.filtered = false
	log.Debugf("budget sorted by %s %s", fs.ctrl.SortColumn(), fs.ctrl.SortDirection())
}

func (fs *fiscalState) search(term string) {
	fs.ctrl.SetSearchTerm(term)
	fs.filtered = fs.ctrl.SearchTerm() != ""
	log.Debugf("budget search %q matched %d rows", fs.ctrl.SearchTerm(), len(fs.rows))
}

// filterApplied reports whether the rows on screen come from the stored
// term. A sort or reload shows every record and leaves the term unapplied.
func (fs *fiscalState) filterApplied() bool {
	return fs.filtered
}

// updateFiscalKeys handles table keys outside search mode. ok is false when
// the key is not a table key.
func (a App) updateFiscalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	fs := a.fiscal
	k := a.keys

	switch {
	case key.Matches(msg, k.Search):
		fs.searching = true
		return a, fs.input.Focus(), true
	case key.Matches(msg, k.Sort):
		col, err := budget.ParseColumn(msg.String())
		if err != nil {
			fs.err = err
			return a, nil, true
		}
		fs.sortBy(col)
		return a, nil, true
	case key.Matches(msg, k.ClearTerm):
		if fs.input.Value() == "" && fs.ctrl.SearchTerm() == "" {
			return a, nil, true
		}
		fs.input.SetValue("")
		fs.search("")
		return a, nil, true
	case key.Matches(msg, k.Down):
		fs.moveCursor(1)
		return a, nil, true
	case key.Matches(msg, k.Up):
		fs.moveCursor(-1)
		return a, nil, true
	case key.Matches(msg, k.Top):
		fs.cursor = 0
		return a, nil, true
	case key.Matches(msg, k.Bottom):
		fs.cursor = max(0, len(fs.rows)-1)
		return a, nil, true
	}
	return a, nil, false
}

// updateFiscalSearch feeds keys to the search box, filtering on every change.
// Enter and Esc leave search mode and keep the term.
func (a App) updateFiscalSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fs := a.fiscal

	if key.Matches(msg, a.keys.Confirm) || key.Matches(msg, a.keys.Cancel) {
		fs.searching = false
		fs.input.Blur()
		return a, nil
	}

	prev := fs.input.Value()
	var cmd tea.Cmd
	fs.input, cmd = fs.input.Update(msg)
	if v := fs.input.Value(); v != prev {
		fs.search(v)
	}
	return a, cmd
}

var columnTitles = map[budget.Column]string{
	budget.ColumnProgram:            "Program",
	budget.ColumnBudgetAmount:       "Anggaran (M Rp)",
	budget.ColumnRealizationPercent: "Realisasi",
	budget.ColumnStatus:             "Status",
}

// columnHeader renders "n Title" with the sort arrow on the active column.
func columnHeader(fs *fiscalState, n int, col budget.Column) string {
	h := fmt.Sprintf("%d %s", n, columnTitles[col])
	if fs.ctrl.SortColumn() == col {
		h += " " + fs.ctrl.SortDirection().Arrow()
	}
	return h
}

func (a App) renderFiscalTab(cw int) string {
	sec, _ := a.dash.Section("fiscal")

	var b strings.Builder
	if len(sec.KPIs) > 0 {
		b.WriteString(components.KPIRow(sec.KPIs, cw, a.isCompactLayout()))
		b.WriteString("\n")
	}
	b.WriteString(a.renderBudgetTable(cw))
	if charts := a.renderCharts(sec.Charts, cw); charts != "" {
		b.WriteString("\n")
		b.WriteString(charts)
	}
	return b.String()
}

func (a App) renderBudgetTable(cw int) string {
	t := theme.Active
	fs := a.fiscal
	inner := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	barW := 12
	if a.isCompactLayout() {
		barW = 8
	}
	const (
		markerW = 2
		amountW = 20
		statusW = 10
	)
	realW := barW + 6
	programW := max(12, inner-markerW-amountW-realW-statusW-3)

	var body strings.Builder

	// Search line
	switch {
	case fs.searching:
		body.WriteString(fs.input.View())
	case fs.ctrl.SearchTerm() != "" && !fs.filterApplied():
		body.WriteString(dimStyle.Render("Filter: "+fs.input.Value()+"  (not applied, / to search again)"))
	case fs.ctrl.SearchTerm() != "":
		body.WriteString(mutedStyle.Render("Filter: ") + rowStyle.Render(fs.input.Value()) +
			dimStyle.Render("  (esc to clear)"))
	default:
		body.WriteString(dimStyle.Render("[/] search  [1-4] sort  [j/k] move"))
	}
	body.WriteString("\n")
	if fs.err != nil {
		msg := fs.err.Error()
		if errors.Is(fs.err, budget.ErrInvalidColumn) {
			msg = "Cannot sort: " + msg
		}
		body.WriteString(errStyle.Render(msg))
		body.WriteString("\n")
	}
	body.WriteString("\n")

	// Header
	body.WriteString(space.Render(strings.Repeat(" ", markerW)))
	body.WriteString(headerStyle.Render(padText(columnHeader(fs, 1, budget.ColumnProgram), programW)))
	body.WriteString(space.Render(" "))
	body.WriteString(headerStyle.Render(padLeftText(columnHeader(fs, 2, budget.ColumnBudgetAmount), amountW)))
	body.WriteString(space.Render(" "))
	body.WriteString(headerStyle.Render(padText(columnHeader(fs, 3, budget.ColumnRealizationPercent), realW)))
	body.WriteString(space.Render(" "))
	body.WriteString(headerStyle.Render(padText(columnHeader(fs, 4, budget.ColumnStatus), statusW)))
	body.WriteString("\n")
	body.WriteString(dimStyle.Render(strings.Repeat("─", min(inner, markerW+programW+amountW+realW+statusW+3))))
	body.WriteString("\n")

	if len(fs.rows) == 0 {
		body.WriteString(mutedStyle.Render("  No programs match"))
		body.WriteString("\n")
	}
	for i, r := range fs.rows {
		style := rowStyle
		marker := space.Render(strings.Repeat(" ", markerW))
		if i == fs.cursor {
			style = selStyle
			marker = markerStyle.Render("▸ ")
		}
		body.WriteString(marker)
		body.WriteString(style.Render(padText(r.Program, programW)))
		body.WriteString(space.Render(" "))
		body.WriteString(style.Render(padLeftText(cli.FormatNumber(r.BudgetAmount), amountW)))
		body.WriteString(space.Render(" "))
		body.WriteString(components.RealizationBar(r.RealizationPercent, barW))
		body.WriteString(space.Render(strings.Repeat(" ", max(1, realW-barW-5+1))))
		body.WriteString(components.StatusBadge(r.Status))
		body.WriteString("\n")
	}

	// Footer
	body.WriteString(dimStyle.Render(strings.Repeat("─", min(inner, markerW+programW+amountW+realW+statusW+3))))
	body.WriteString("\n")
	footer := fmt.Sprintf("%d of %d programs · Total %s miliar Rp",
		len(fs.rows), len(fs.ctrl.Records()), cli.FormatDecimal(budget.Total(fs.rows)))
	if len(fs.rows) > 0 {
		footer += fmt.Sprintf(" · Avg realisasi %s%%", budget.AverageRealization(fs.rows).String())
	}
	body.WriteString(mutedStyle.Render(ansi.Truncate(footer, inner, "…")))

	return components.ContentCard("Alokasi Anggaran Program Pangan", body.String(), cw)
}

func padText(s string, w int) string {
	s = ansi.Truncate(s, w, "…")
	return s + strings.Repeat(" ", max(0, w-ansi.StringWidth(s)))
}

func padLeftText(s string, w int) string {
	s = ansi.Truncate(s, w, "…")
	return strings.Repeat(" ", max(0, w-ansi.StringWidth(s))) + s
}
