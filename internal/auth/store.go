package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
)

// UserStore is the credential store adapter: user lookup and creation against
// the persistence layer.
type UserStore interface {
	CreateUser(ctx context.Context, email, name, passwordHash string) (*User, error)
	UserByEmail(ctx context.Context, email string) (*User, error)
	UserByID(ctx context.Context, id string) (*User, error)
}

type PostgresUserStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{Pool: pool}
}

func (s *PostgresUserStore) CreateUser(ctx context.Context, email, name, passwordHash string) (*User, error) {
	var u User
	err := s.Pool.QueryRow(
		ctx,
		`INSERT INTO users (email, name, password_hash)
         VALUES ($1, $2, $3)
         RETURNING id, email, name, password_hash, created_at`,
		email, name, passwordHash,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperr.ErrConflict
		}
		return nil, err
	}
	return &u, nil
}

func (s *PostgresUserStore) UserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.Pool.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, created_at
         FROM users
         WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresUserStore) UserByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.Pool.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, created_at
         FROM users
         WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
