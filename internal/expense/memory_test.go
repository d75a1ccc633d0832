package expense

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
	"github.com/asfiqazi/expense-tracker/internal/category"
)

// StoreTestSuite exercises the memory Store, which mirrors the semantics the
// Postgres store expresses in SQL.
type StoreTestSuite struct {
	suite.Suite
	ctx        context.Context
	categories *category.MemoryStore
	store      *MemoryStore

	food      *category.Category
	transport *category.Category
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.categories = category.NewMemoryStore()
	s.store = NewMemoryStore(s.categories)

	var err error
	s.food, err = s.categories.CreateCategory(s.ctx, "owner-a", "Food")
	require.NoError(s.T(), err)
	s.transport, err = s.categories.CreateCategory(s.ctx, "owner-a", "Transport")
	require.NoError(s.T(), err)
}

func (s *StoreTestSuite) insert(ownerID, name, amount string, date time.Time, categoryID, method string) *Expense {
	created, err := s.store.Insert(s.ctx, &Expense{
		UserID:        ownerID,
		Name:          name,
		Amount:        decimal.RequireFromString(amount),
		Date:          date,
		CategoryID:    categoryID,
		PaymentMethod: method,
	})
	require.NoError(s.T(), err)
	return created
}

func (s *StoreTestSuite) TestCreateThenGetRoundTrips() {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	created := s.insert("owner-a", "Lunch", "12.50", date, s.food.ID, "Cash")

	assert.NotEmpty(s.T(), created.ID)
	assert.False(s.T(), created.CreatedAt.IsZero())
	assert.False(s.T(), created.UpdatedAt.IsZero())
	require.NotNil(s.T(), created.Category)
	assert.Equal(s.T(), "Food", created.Category.Name)

	got, err := s.store.Get(s.ctx, "owner-a", created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Lunch", got.Name)
	assert.Equal(s.T(), "12.50", got.Amount.StringFixed(2))
	assert.True(s.T(), got.Date.Equal(date))
	assert.Equal(s.T(), "Cash", got.PaymentMethod)
	require.NotNil(s.T(), got.Category)
	assert.Equal(s.T(), "Food", got.Category.Name)
}

func (s *StoreTestSuite) TestCrossTenantIsolation() {
	created := s.insert("owner-a", "Lunch", "12.50", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), s.food.ID, "Cash")

	_, err := s.store.Get(s.ctx, "owner-b", created.ID)
	assert.ErrorIs(s.T(), err, apperr.ErrNotFound)

	_, err = s.store.Update(s.ctx, "owner-b", created.ID, &Expense{Name: "Hijack"})
	assert.ErrorIs(s.T(), err, apperr.ErrNotFound)

	err = s.store.Delete(s.ctx, "owner-b", created.ID)
	assert.ErrorIs(s.T(), err, apperr.ErrNotFound)

	items, err := s.store.List(s.ctx, "owner-b", Filter{})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), items)

	// The record is untouched for its owner.
	got, err := s.store.Get(s.ctx, "owner-a", created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Lunch", got.Name)
}

func (s *StoreTestSuite) TestListOrderedByDateDescending() {
	s.insert("owner-a", "Oldest", "1.00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), s.food.ID, "Cash")
	s.insert("owner-a", "Newest", "2.00", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), s.food.ID, "Cash")
	s.insert("owner-a", "Middle", "3.00", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), s.food.ID, "Cash")

	items, err := s.store.List(s.ctx, "owner-a", Filter{})
	require.NoError(s.T(), err)
	require.Len(s.T(), items, 3)
	assert.Equal(s.T(), "Newest", items[0].Name)
	assert.Equal(s.T(), "Middle", items[1].Name)
	assert.Equal(s.T(), "Oldest", items[2].Name)
}

func (s *StoreTestSuite) TestListSameDateKeepsInsertionOrder() {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	s.insert("owner-a", "First", "1.00", date, s.food.ID, "Cash")
	s.insert("owner-a", "Second", "2.00", date, s.food.ID, "Cash")
	s.insert("owner-a", "Third", "3.00", date, s.food.ID, "Cash")

	items, err := s.store.List(s.ctx, "owner-a", Filter{})
	require.NoError(s.T(), err)
	require.Len(s.T(), items, 3)
	assert.Equal(s.T(), "First", items[0].Name)
	assert.Equal(s.T(), "Second", items[1].Name)
	assert.Equal(s.T(), "Third", items[2].Name)
}

func (s *StoreTestSuite) TestListFilterConjunction() {
	s.insert("owner-a", "Lunch", "12.50", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), s.food.ID, "Cash")
	s.insert("owner-a", "Bus", "2.75", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), s.transport.ID, "Cash")
	s.insert("owner-a", "Dinner", "30.00", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), s.food.ID, "Credit Card")

	items, err := s.store.List(s.ctx, "owner-a", Filter{
		CategoryID:    s.food.ID,
		PaymentMethod: "Cash",
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), items, 1)
	assert.Equal(s.T(), "Lunch", items[0].Name)
}

func (s *StoreTestSuite) TestListSearchFilter() {
	s.insert("owner-a", "Team Lunch", "12.50", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), s.food.ID, "Cash")
	bus := s.insert("owner-a", "Bus", "2.75", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), s.transport.ID, "Cash")
	_, err := s.store.Update(s.ctx, "owner-a", bus.ID, &Expense{
		Name:          "Bus",
		Amount:        bus.Amount,
		Date:          bus.Date,
		Description:   "ride after LUNCH",
		CategoryID:    bus.CategoryID,
		PaymentMethod: bus.PaymentMethod,
	})
	require.NoError(s.T(), err)
	s.insert("owner-a", "Dinner", "30.00", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), s.food.ID, "Credit Card")

	items, err := s.store.List(s.ctx, "owner-a", Filter{Search: "lunch"})
	require.NoError(s.T(), err)
	require.Len(s.T(), items, 2)
}

func (s *StoreTestSuite) TestListNoMatchesReturnsEmptySlice() {
	items, err := s.store.List(s.ctx, "owner-a", Filter{Search: "nothing"})
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), items)
	assert.Empty(s.T(), items)
}

func (s *StoreTestSuite) TestUpdateReplacesAllFields() {
	created := s.insert("owner-a", "Lunch", "12.50", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), s.food.ID, "Cash")

	updated, err := s.store.Update(s.ctx, "owner-a", created.ID, &Expense{
		Name:          "Late Lunch",
		Amount:        decimal.RequireFromString("14.00"),
		Date:          time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		Description:   "moved a day",
		CategoryID:    s.transport.ID,
		PaymentMethod: "Debit Card",
	})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), created.ID, updated.ID)
	assert.Equal(s.T(), "Late Lunch", updated.Name)
	assert.Equal(s.T(), "14.00", updated.Amount.StringFixed(2))
	assert.Equal(s.T(), "moved a day", updated.Description)
	assert.Equal(s.T(), s.transport.ID, updated.CategoryID)
	assert.Equal(s.T(), "Debit Card", updated.PaymentMethod)
	require.NotNil(s.T(), updated.Category)
	assert.Equal(s.T(), "Transport", updated.Category.Name)
}

func (s *StoreTestSuite) TestDeleteIsNotIdempotent() {
	created := s.insert("owner-a", "Lunch", "12.50", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), s.food.ID, "Cash")

	require.NoError(s.T(), s.store.Delete(s.ctx, "owner-a", created.ID))

	err := s.store.Delete(s.ctx, "owner-a", created.ID)
	assert.ErrorIs(s.T(), err, apperr.ErrNotFound)

	_, err = s.store.Get(s.ctx, "owner-a", created.ID)
	assert.ErrorIs(s.T(), err, apperr.ErrNotFound)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
