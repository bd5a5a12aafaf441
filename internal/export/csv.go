// Package export writes dashboard data to CSV or a SQLite database.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/pangan/internal/model"
)

// Table selects which dataset a CSV export contains.
type Table string

const (
	TableBudget Table = "budget"
	TableKPIs   Table = "kpis"
)

// ParseTable validates a CSV table name.
func ParseTable(s string) (Table, error) {
	switch Table(s) {
	case TableBudget, TableKPIs:
		return Table(s), nil
	}
	return "", fmt.Errorf("unknown table %q (want budget or kpis)", s)
}

// WriteCSV writes the chosen table of d to w.
func WriteCSV(w io.Writer, d *model.Dashboard, table Table) error {
	var rows [][]string
	switch table {
	case TableBudget:
		rows = budgetRows(d.Budget)
	case TableKPIs:
		rows = kpiRows(d)
	default:
		return fmt.Errorf("unknown table %q", table)
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return err
	}
	log.Infof("exported %d %s rows to csv", len(rows)-1, table)
	return nil
}

func budgetRows(lines []model.BudgetLine) [][]string {
	rows := make([][]string, 0, len(lines)+1)
	rows = append(rows, []string{"program", "budget", "realization", "status"})
	for _, l := range lines {
		rows = append(rows, []string{
			l.Program,
			strconv.FormatFloat(l.BudgetAmount, 'f', -1, 64),
			strconv.FormatFloat(l.RealizationPercent, 'f', -1, 64),
			string(l.Status),
		})
	}
	return rows
}

func kpiRows(d *model.Dashboard) [][]string {
	rows := [][]string{{"section", "label", "value", "change", "trend"}}
	for _, s := range append([]model.Section{d.Overview}, d.Sections...) {
		for _, k := range s.KPIs {
			rows = append(rows, []string{s.ID, k.Label, k.Value, k.Change, string(k.Trend)})
		}
	}
	return rows
}
