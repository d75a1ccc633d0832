package reports

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/asfiqazi/expense-tracker/internal/analytics"
)

// BuildSpendPDF renders a spend report for a date range: total, per-category
// and per-month tables, largest buckets first.
func BuildSpendPDF(userName, from, to string, sum analytics.Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Expense Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Expense Report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", from, to))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("User: %s", userName))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Total Spend: %s", sum.TotalExpenses.StringFixed(2)))
	pdf.Ln(10)

	writeTable(pdf, "By Category", sum.ExpensesByCategory)
	pdf.Ln(4)
	writeTable(pdf, "By Month", sum.ExpensesByMonth)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTable(pdf *gofpdf.Fpdf, title string, buckets map[string]decimal.Decimal) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return buckets[keys[i]].GreaterThan(buckets[keys[j]])
	})

	pdf.SetFont("Helvetica", "", 11)
	if len(keys) == 0 {
		pdf.Cell(0, 7, "No expenses in this period")
		pdf.Ln(7)
		return
	}
	for _, k := range keys {
		pdf.Cell(90, 7, k)
		pdf.Cell(50, 7, buckets[k].StringFixed(2))
		pdf.Ln(7)
	}
}
