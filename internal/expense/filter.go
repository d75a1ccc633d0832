package expense

import (
	"strings"
	"time"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
)

// Filter is the typed query description for listing expenses. Non-zero fields
// combine with AND semantics; date bounds are inclusive on both ends.
type Filter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	CategoryID    string
	PaymentMethod string
	Search        string
}

// ParseFilter builds a Filter from raw query-string values. Empty values
// leave the corresponding field unset.
func ParseFilter(startDate, endDate, categoryID, paymentMethod, search string) (Filter, error) {
	var f Filter

	if s := strings.TrimSpace(startDate); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return Filter{}, apperr.Invalid("startDate", "must be YYYY-MM-DD")
		}
		f.StartDate = &t
	}
	if s := strings.TrimSpace(endDate); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return Filter{}, apperr.Invalid("endDate", "must be YYYY-MM-DD")
		}
		f.EndDate = &t
	}

	f.CategoryID = strings.TrimSpace(categoryID)
	f.PaymentMethod = strings.TrimSpace(paymentMethod)
	f.Search = strings.TrimSpace(search)

	return f, nil
}

// Matches reports whether an expense satisfies every set filter field. This
// is the reference predicate; the Postgres store translates the same
// semantics into SQL.
func (f Filter) Matches(e *Expense) bool {
	if f.StartDate != nil && e.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && e.Date.After(*f.EndDate) {
		return false
	}
	if f.CategoryID != "" && e.CategoryID != f.CategoryID {
		return false
	}
	if f.PaymentMethod != "" && e.PaymentMethod != f.PaymentMethod {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Name), needle) &&
			!strings.Contains(strings.ToLower(e.Description), needle) {
			return false
		}
	}
	return true
}
