package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/asfiqazi/expense-tracker/internal/expense"
)

// Summary is the spend breakdown over a date window. Both maps are sparse:
// a category or month with no matched expenses is absent, not zero.
type Summary struct {
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
	ExpensesByMonth    map[string]decimal.Decimal `json:"expensesByMonth"`
}

// ZeroSummary is the reduction of an empty expense set.
func ZeroSummary() Summary {
	return Summary{
		TotalExpenses:      decimal.Zero,
		ExpensesByCategory: map[string]decimal.Decimal{},
		ExpensesByMonth:    map[string]decimal.Decimal{},
	}
}

// Summarize reduces a set of expenses into total spend, spend keyed by
// category display name, and spend keyed by calendar month (YYYY-MM from the
// stored date). Decimal accumulation, no floating drift.
func Summarize(expenses []expense.Expense) Summary {
	s := ZeroSummary()

	for _, e := range expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)

		categoryName := e.CategoryID
		if e.Category != nil {
			categoryName = e.Category.Name
		}
		s.ExpensesByCategory[categoryName] = s.ExpensesByCategory[categoryName].Add(e.Amount)

		month := e.Date.Format("2006-01")
		s.ExpensesByMonth[month] = s.ExpensesByMonth[month].Add(e.Amount)
	}

	return s
}
