package analytics

import (
	"context"
	"time"

	"github.com/asfiqazi/expense-tracker/internal/expense"
)

// Service computes summaries fresh on every request from the owner's
// current expense set. No caching, no incremental maintenance.
type Service struct {
	Expenses expense.Store
}

func NewService(expenses expense.Store) *Service {
	return &Service{Expenses: expenses}
}

// Summarize reduces the owner's expenses with date in [start, end]. An
// inverted range is not an error; it yields the zero summary.
func (s *Service) Summarize(ctx context.Context, ownerID string, start, end time.Time) (Summary, error) {
	if start.After(end) {
		return ZeroSummary(), nil
	}

	rows, err := s.Expenses.List(ctx, ownerID, expense.Filter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return Summary{}, err
	}

	return Summarize(rows), nil
}
