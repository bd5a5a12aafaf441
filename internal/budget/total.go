package budget

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/pangan/internal/model"
)

// Total sums the budget amounts exactly.
func Total(lines []model.BudgetLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.BudgetAmount))
	}
	return sum
}

// AverageRealization returns the budget-weighted realization percentage.
// Lines with no budget contribute nothing; an empty or zero-budget set
// returns zero.
func AverageRealization(lines []model.BudgetLine) decimal.Decimal {
	total := Total(lines)
	if total.IsZero() {
		return decimal.Zero
	}
	weighted := decimal.Zero
	for _, l := range lines {
		weighted = weighted.Add(decimal.NewFromFloat(l.BudgetAmount).Mul(decimal.NewFromFloat(l.RealizationPercent)))
	}
	return weighted.Div(total).Round(1)
}
