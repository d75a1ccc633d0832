package expense

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
	"github.com/asfiqazi/expense-tracker/internal/category"
)

// MemoryStore is an in-memory Store used in tests and in the memory backend.
// Filtering goes through Filter.Matches, the same predicate the Postgres
// store expresses in SQL.
type MemoryStore struct {
	mu         sync.RWMutex
	expenses   map[string]*Expense
	seq        int
	Categories category.Store
}

func NewMemoryStore(categories category.Store) *MemoryStore {
	return &MemoryStore{
		expenses:   make(map[string]*Expense),
		Categories: categories,
	}
}

func (s *MemoryStore) resolve(ctx context.Context, e *Expense) (*Expense, error) {
	cp := *e
	cat, err := s.Categories.CategoryByID(ctx, e.UserID, e.CategoryID)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	cp.Category = cat
	return &cp, nil
}

func (s *MemoryStore) Insert(ctx context.Context, exp *Expense) (*Expense, error) {
	s.mu.Lock()
	s.seq++
	now := time.Now().UTC().Add(time.Duration(s.seq)) // strictly increasing created_at
	e := *exp
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	e.Category = nil
	s.expenses[e.ID] = &e
	s.mu.Unlock()

	return s.resolve(ctx, &e)
}

func (s *MemoryStore) List(ctx context.Context, ownerID string, f Filter) ([]Expense, error) {
	s.mu.RLock()
	matched := make([]*Expense, 0)
	for _, e := range s.expenses {
		if e.UserID == ownerID && f.Matches(e) {
			matched = append(matched, e)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	out := make([]Expense, 0, len(matched))
	for _, e := range matched {
		resolved, err := s.resolve(ctx, e)
		if err != nil {
			return nil, err
		}
		out = append(out, *resolved)
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, ownerID, id string) (*Expense, error) {
	s.mu.RLock()
	e, ok := s.expenses[id]
	if !ok || e.UserID != ownerID {
		s.mu.RUnlock()
		return nil, apperr.ErrNotFound
	}
	cp := *e
	s.mu.RUnlock()

	return s.resolve(ctx, &cp)
}

func (s *MemoryStore) Update(ctx context.Context, ownerID, id string, exp *Expense) (*Expense, error) {
	s.mu.Lock()
	e, ok := s.expenses[id]
	if !ok || e.UserID != ownerID {
		s.mu.Unlock()
		return nil, apperr.ErrNotFound
	}

	e.Name = exp.Name
	e.Amount = exp.Amount
	e.Date = exp.Date
	e.Description = exp.Description
	e.CategoryID = exp.CategoryID
	e.PaymentMethod = exp.PaymentMethod
	e.UpdatedAt = time.Now().UTC()
	cp := *e
	s.mu.Unlock()

	return s.resolve(ctx, &cp)
}

func (s *MemoryStore) Delete(_ context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.expenses[id]
	if !ok || e.UserID != ownerID {
		return apperr.ErrNotFound
	}
	delete(s.expenses, id)
	return nil
}
