package expense

import (
	"context"
)

// Store provides owner-scoped CRUD and filtered query access to expenses.
// Every method takes the owning user id; a row owned by another user is
// indistinguishable from an absent one (apperr.ErrNotFound both ways).
type Store interface {
	// Insert persists a new expense and returns it with id, timestamps and
	// resolved category.
	Insert(ctx context.Context, exp *Expense) (*Expense, error)

	// List returns every expense owned by ownerID that matches the filter,
	// ordered by date descending with created_at then id as tie-breaks.
	// Returns an empty slice, never an error, when nothing matches.
	List(ctx context.Context, ownerID string, f Filter) ([]Expense, error)

	// Get returns a single owned expense or apperr.ErrNotFound.
	Get(ctx context.Context, ownerID, id string) (*Expense, error)

	// Update replaces all mutable fields of an owned expense. Partial
	// updates are not supported; the full draft is required upstream.
	Update(ctx context.Context, ownerID, id string, exp *Expense) (*Expense, error)

	// Delete removes an owned expense. A second delete of the same id fails
	// with apperr.ErrNotFound.
	Delete(ctx context.Context, ownerID, id string) error
}
