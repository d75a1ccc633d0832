package category

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
)

// MemoryStore is an in-memory Store used in tests and in the memory backend.
type MemoryStore struct {
	mu         sync.RWMutex
	categories map[string]*Category
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{categories: make(map[string]*Category)}
}

func (s *MemoryStore) CreateCategory(_ context.Context, ownerID, name string) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cat := range s.categories {
		if cat.UserID == ownerID && cat.Name == name {
			return nil, apperr.ErrConflict
		}
	}

	cat := &Category{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	s.categories[cat.ID] = cat

	cp := *cat
	return &cp, nil
}

func (s *MemoryStore) CategoriesByUser(_ context.Context, ownerID string) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, 0)
	for _, cat := range s.categories {
		if cat.UserID == ownerID {
			out = append(out, *cat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) CategoryByID(_ context.Context, ownerID, id string) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cat, ok := s.categories[id]
	if !ok || cat.UserID != ownerID {
		return nil, apperr.ErrNotFound
	}
	cp := *cat
	return &cp, nil
}
