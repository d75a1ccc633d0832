package expense

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
)

func testExpense(name, description, categoryID, method string, date time.Time) *Expense {
	return &Expense{
		Name:          name,
		Description:   description,
		Amount:        decimal.NewFromInt(10),
		Date:          date,
		CategoryID:    categoryID,
		PaymentMethod: method,
	}
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("2024-03-01", "2024-04-30", "cat-1", "Cash", "lunch")
	require.NoError(t, err)

	require.NotNil(t, f.StartDate)
	require.NotNil(t, f.EndDate)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *f.StartDate)
	assert.Equal(t, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), *f.EndDate)
	assert.Equal(t, "cat-1", f.CategoryID)
	assert.Equal(t, "Cash", f.PaymentMethod)
	assert.Equal(t, "lunch", f.Search)
}

func TestParseFilterEmptyFieldsUnset(t *testing.T) {
	f, err := ParseFilter("", "", "", "", "")
	require.NoError(t, err)

	assert.Nil(t, f.StartDate)
	assert.Nil(t, f.EndDate)
	assert.Empty(t, f.CategoryID)
	assert.Empty(t, f.PaymentMethod)
	assert.Empty(t, f.Search)
}

func TestParseFilterBadDate(t *testing.T) {
	_, err := ParseFilter("03/01/2024", "", "", "", "")

	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "startDate", vErr.Field)
}

func TestMatchesEmptyFilterMatchesEverything(t *testing.T) {
	e := testExpense("Lunch", "", "cat-1", "Cash", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	assert.True(t, Filter{}.Matches(e))
}

func TestMatchesDateBoundsInclusive(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	f := Filter{StartDate: &start, EndDate: &end}

	assert.True(t, f.Matches(testExpense("a", "", "c", "Cash", start)))
	assert.True(t, f.Matches(testExpense("b", "", "c", "Cash", end)))
	assert.False(t, f.Matches(testExpense("c", "", "c", "Cash", start.AddDate(0, 0, -1))))
	assert.False(t, f.Matches(testExpense("d", "", "c", "Cash", end.AddDate(0, 0, 1))))
}

func TestMatchesConjunction(t *testing.T) {
	f := Filter{CategoryID: "cat-food", PaymentMethod: "Cash"}

	assert.True(t, f.Matches(testExpense("Lunch", "", "cat-food", "Cash", time.Now())))
	assert.False(t, f.Matches(testExpense("Lunch", "", "cat-food", "Credit Card", time.Now())))
	assert.False(t, f.Matches(testExpense("Bus", "", "cat-transport", "Cash", time.Now())))
}

func TestMatchesSearchTreatsWildcardsLiterally(t *testing.T) {
	f := Filter{Search: "100%"}

	assert.True(t, f.Matches(testExpense("100% cotton shirt", "", "c", "Cash", time.Now())))
	assert.False(t, f.Matches(testExpense("100 dollars", "", "c", "Cash", time.Now())))
}

func TestTranslateEscapesSearchWildcards(t *testing.T) {
	cond, args := translate("owner-1", Filter{Search: `100%_off\`})

	assert.Contains(t, cond, "ILIKE")
	require.Len(t, args, 2)
	assert.Equal(t, `%100\%\_off\\%`, args[1])
}

func TestMatchesSearchCaseInsensitiveNameOrDescription(t *testing.T) {
	f := Filter{Search: "LUNCH"}

	assert.True(t, f.Matches(testExpense("Team lunch", "", "c", "Cash", time.Now())))
	assert.True(t, f.Matches(testExpense("Meal", "lunch with client", "c", "Cash", time.Now())))
	assert.False(t, f.Matches(testExpense("Dinner", "evening meal", "c", "Cash", time.Now())))
}
