package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/pangan/internal/budget"
	"github.com/theirongolddev/pangan/internal/cli"
	"github.com/theirongolddev/pangan/internal/model"
)

var (
	flagSearch string
	flagSort   string
	flagDesc   bool
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Program budget allocation table",
	Long: "Print the food program budget table. --sort takes a column name\n" +
		"(program, budget, realization, status) or its position 1-4.",
	RunE: runBudget,
}

func init() {
	budgetCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "Filter programs by name (case-insensitive)")
	budgetCmd.Flags().StringVar(&flagSort, "sort", "", "Sort by column")
	budgetCmd.Flags().BoolVar(&flagDesc, "desc", false, "Sort descending")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	d, _, err := loadDashboard()
	if err != nil {
		return err
	}

	rows, err := budgetView(d.Budget, flagSort, flagDesc, flagSearch)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(budgetTable(rows, len(d.Budget))))
	return nil
}

// budgetView runs the table controller the way the dashboard does: sort
// first, then search within the sorted order.
func budgetView(lines []model.BudgetLine, sortCol string, desc bool, search string) ([]model.BudgetLine, error) {
	var rows []model.BudgetLine
	ctrl := budget.New(lines, func(r []model.BudgetLine) { rows = r })

	if sortCol != "" {
		col, err := budget.ParseColumn(sortCol)
		if err != nil {
			return nil, err
		}
		if err := ctrl.ActivateSort(col); err != nil {
			return nil, err
		}
		if desc {
			if err := ctrl.ActivateSort(col); err != nil {
				return nil, err
			}
		}
	}
	if search != "" {
		ctrl.SetSearchTerm(search)
	}
	return rows, nil
}

func budgetTable(rows []model.BudgetLine, total int) cli.Table {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Program,
			cli.FormatNumber(r.BudgetAmount),
			cli.RenderProgressBar(r.RealizationPercent, 10),
			cli.RenderStatus(r.Status),
		})
	}

	footer := []string{
		fmt.Sprintf("%d of %d programs", len(rows), total),
		cli.FormatDecimal(budget.Total(rows)),
		"avg " + budget.AverageRealization(rows).String() + "%",
		"",
	}
	return cli.Table{
		Title:   "Alokasi Anggaran Program Pangan (miliar Rp)",
		Headers: []string{"Program", "Anggaran", "Realisasi", "Status"},
		Rows:    out,
		Footer:  footer,
	}
}
