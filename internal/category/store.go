package category

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
)

// Store provides owner-scoped access to category buckets. A category owned
// by another user is indistinguishable from a missing one.
type Store interface {
	CreateCategory(ctx context.Context, ownerID, name string) (*Category, error)
	CategoriesByUser(ctx context.Context, ownerID string) ([]Category, error)
	CategoryByID(ctx context.Context, ownerID, id string) (*Category, error)
}

type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{Pool: pool}
}

func (s *PostgresStore) CreateCategory(ctx context.Context, ownerID, name string) (*Category, error) {
	var cat Category
	err := s.Pool.QueryRow(
		ctx,
		`INSERT INTO categories (user_id, name)
         VALUES ($1, $2)
         RETURNING id, user_id, name, created_at`,
		ownerID, name,
	).Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperr.ErrConflict
		}
		return nil, err
	}
	return &cat, nil
}

func (s *PostgresStore) CategoriesByUser(ctx context.Context, ownerID string) ([]Category, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, user_id, name, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CategoryByID(ctx context.Context, ownerID, id string) (*Category, error) {
	var cat Category
	err := s.Pool.QueryRow(
		ctx,
		`SELECT id, user_id, name, created_at
         FROM categories
         WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	).Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
