// Package budget implements the fiscal budget table: a search filter and a
// toggling column sort over an owned set of budget lines.
package budget

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/theirongolddev/pangan/internal/model"
)

// ErrInvalidColumn is returned when a sort is requested on a column the
// table does not have.
var ErrInvalidColumn = errors.New("invalid budget column")

// Column identifies a sortable table column.
type Column int

// Column order matches the table header.
const (
	ColumnNone Column = iota - 1
	ColumnProgram
	ColumnBudgetAmount
	ColumnRealizationPercent
	ColumnStatus
)

// Columns lists the sortable columns in header order.
var Columns = []Column{ColumnProgram, ColumnBudgetAmount, ColumnRealizationPercent, ColumnStatus}

func (c Column) String() string {
	switch c {
	case ColumnNone:
		return "none"
	case ColumnProgram:
		return "program"
	case ColumnBudgetAmount:
		return "budgetAmount"
	case ColumnRealizationPercent:
		return "realizationPercent"
	case ColumnStatus:
		return "status"
	default:
		return "column(" + strconv.Itoa(int(c)) + ")"
	}
}

// Valid reports whether c is one of the four sortable columns.
func (c Column) Valid() bool {
	return c >= ColumnProgram && c <= ColumnStatus
}

// ParseColumn maps a column identifier to a Column. It accepts the canonical
// names, short aliases and the 1-based header position.
func ParseColumn(s string) (Column, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "program", "1":
		return ColumnProgram, nil
	case "budgetamount", "budget", "2":
		return ColumnBudgetAmount, nil
	case "realizationpercent", "realization", "3":
		return ColumnRealizationPercent, nil
	case "status", "4":
		return ColumnStatus, nil
	}
	return ColumnNone, fmt.Errorf("%w: %q", ErrInvalidColumn, s)
}

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Arrow returns the header indicator for the direction.
func (d Direction) Arrow() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// RenderFunc receives the displayed sequence whenever it changes.
type RenderFunc func([]model.BudgetLine)

// Controller owns the budget lines and derives the displayed rows from the
// latest search or sort. The two are never composed: a search filters the
// current record order, a sort reorders every record and drops the filter
// from view. It is not safe for concurrent use.
type Controller struct {
	records   []model.BudgetLine
	displayed []model.BudgetLine
	column    Column
	direction Direction
	term      string
	render    RenderFunc
}

// New returns a controller over a copy of records and renders the full
// sequence once. render may be nil.
func New(records []model.BudgetLine, render RenderFunc) *Controller {
	c := &Controller{
		records:   cloneLines(records),
		column:    ColumnNone,
		direction: Ascending,
		render:    render,
	}
	c.show(cloneLines(c.records))
	return c
}

// SetSearchTerm filters the records by a case-insensitive substring match on
// the program name. The empty term matches every record.
func (c *Controller) SetSearchTerm(term string) {
	c.term = strings.ToLower(term)

	filtered := make([]model.BudgetLine, 0, len(c.records))
	for _, r := range c.records {
		if strings.Contains(strings.ToLower(r.Program), c.term) {
			filtered = append(filtered, r)
		}
	}
	c.show(filtered)
}

// ActivateSort sorts every record by col. Activating the current column
// flips the direction; any other column starts ascending.
func (c *Controller) ActivateSort(col Column) error {
	if !col.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidColumn, col)
	}

	if col == c.column {
		if c.direction == Ascending {
			c.direction = Descending
		} else {
			c.direction = Ascending
		}
	} else {
		c.column = col
		c.direction = Ascending
	}

	less := lessFor(col)
	if c.direction == Descending {
		asc := less
		less = func(a, b model.BudgetLine) bool { return asc(b, a) }
	}
	sort.SliceStable(c.records, func(i, j int) bool {
		return less(c.records[i], c.records[j])
	})

	c.show(cloneLines(c.records))
	return nil
}

// Replace swaps in a new record set. The sort cursor and search term are
// kept but not reapplied; the display resets to the new load order.
func (c *Controller) Replace(records []model.BudgetLine) {
	c.records = cloneLines(records)
	c.show(cloneLines(c.records))
}

// Displayed returns a copy of the rows currently on screen.
func (c *Controller) Displayed() []model.BudgetLine {
	return cloneLines(c.displayed)
}

// Records returns a copy of all records in their current order.
func (c *Controller) Records() []model.BudgetLine {
	return cloneLines(c.records)
}

// SortColumn returns the active sort column, or ColumnNone.
func (c *Controller) SortColumn() Column { return c.column }

// SortDirection returns the active sort direction.
func (c *Controller) SortDirection() Direction { return c.direction }

// SearchTerm returns the stored (lower-cased) search term.
func (c *Controller) SearchTerm() string { return c.term }

func (c *Controller) show(lines []model.BudgetLine) {
	c.displayed = lines
	if c.render != nil {
		c.render(cloneLines(lines))
	}
}

// lessFor returns the ascending comparator for a valid column. Strings
// compare by raw byte order, so upper case sorts before lower case.
func lessFor(col Column) func(a, b model.BudgetLine) bool {
	switch col {
	case ColumnProgram:
		return func(a, b model.BudgetLine) bool { return a.Program < b.Program }
	case ColumnBudgetAmount:
		return func(a, b model.BudgetLine) bool { return a.BudgetAmount < b.BudgetAmount }
	case ColumnRealizationPercent:
		return func(a, b model.BudgetLine) bool { return a.RealizationPercent < b.RealizationPercent }
	default:
		return func(a, b model.BudgetLine) bool { return a.Status < b.Status }
	}
}

func cloneLines(lines []model.BudgetLine) []model.BudgetLine {
	out := make([]model.BudgetLine, len(lines))
	copy(out, lines)
	return out
}
