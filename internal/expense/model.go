package expense

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
	"github.com/asfiqazi/expense-tracker/internal/category"
)

type Expense struct {
	ID            string             `json:"id"`
	UserID        string             `json:"userId"`
	Name          string             `json:"name"`
	Amount        decimal.Decimal    `json:"amount"`
	Date          time.Time          `json:"date"`
	Description   string             `json:"description,omitempty"`
	CategoryID    string             `json:"categoryId"`
	PaymentMethod string             `json:"paymentMethod"`
	Category      *category.Category `json:"category,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// Draft is the client-supplied expense payload, used for both create and
// full-replace update.
type Draft struct {
	Name          string `json:"name"`
	Amount        Amount `json:"amount"`
	Date          string `json:"date"` // YYYY-MM-DD
	Description   string `json:"description"`
	CategoryID    string `json:"categoryId"`
	PaymentMethod string `json:"paymentMethod"`
}

// Amount decodes the draft amount field. It accepts JSON numbers and numeric
// strings; an absent or unparseable amount surfaces from ValidateDraft as a
// field error rather than a body decode failure.
type Amount struct {
	decimal.Decimal
	present bool
	invalid bool
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	a.present = true
	if err := a.Decimal.UnmarshalJSON(b); err != nil {
		a.invalid = true
	}
	return nil
}

// ValidateDraft checks required fields and returns the parsed calendar date.
func ValidateDraft(d *Draft) (time.Time, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.CategoryID = strings.TrimSpace(d.CategoryID)
	d.PaymentMethod = strings.TrimSpace(d.PaymentMethod)

	if d.Name == "" {
		return time.Time{}, apperr.Invalid("name", "required")
	}
	if !d.Amount.present {
		return time.Time{}, apperr.Invalid("amount", "required")
	}
	if d.Amount.invalid {
		return time.Time{}, apperr.Invalid("amount", "must be a number")
	}
	if d.CategoryID == "" {
		return time.Time{}, apperr.Invalid("categoryId", "required")
	}
	if d.PaymentMethod == "" {
		return time.Time{}, apperr.Invalid("paymentMethod", "required")
	}

	date, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return time.Time{}, apperr.Invalid("date", "must be YYYY-MM-DD")
	}
	return date, nil
}
