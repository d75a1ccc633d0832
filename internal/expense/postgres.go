package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
	"github.com/asfiqazi/expense-tracker/internal/category"
)

type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{Pool: pool}
}

const selectColumns = `
	e.id, e.user_id, e.name, e.amount, e.date, e.description,
	e.category_id, e.payment_method, e.created_at, e.updated_at,
	c.id, c.user_id, c.name, c.created_at`

func scanExpense(row pgx.Row) (*Expense, error) {
	var e Expense
	var cat category.Category
	err := row.Scan(
		&e.ID, &e.UserID, &e.Name, &e.Amount, &e.Date, &e.Description,
		&e.CategoryID, &e.PaymentMethod, &e.CreatedAt, &e.UpdatedAt,
		&cat.ID, &cat.UserID, &cat.Name, &cat.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Category = &cat
	return &e, nil
}

func (s *PostgresStore) Insert(ctx context.Context, exp *Expense) (*Expense, error) {
	var id string
	err := s.Pool.QueryRow(
		ctx,
		`INSERT INTO expenses (user_id, name, amount, date, description, category_id, payment_method)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
         RETURNING id`,
		exp.UserID, exp.Name, exp.Amount, exp.Date, exp.Description,
		exp.CategoryID, exp.PaymentMethod,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, exp.UserID, id)
}

// likeEscaper quotes LIKE metacharacters so search tokens match literally,
// the same way Filter.Matches treats them.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// translate turns the typed filter into SQL conditions. The same semantics
// live in Filter.Matches for the memory store.
func translate(ownerID string, f Filter) (string, []any) {
	where := []string{"e.user_id = $1"}
	args := []any{ownerID}

	add := func(cond string, val any) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.StartDate != nil {
		add("e.date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("e.date <= $%d", *f.EndDate)
	}
	if f.CategoryID != "" {
		add("e.category_id = $%d", f.CategoryID)
	}
	if f.PaymentMethod != "" {
		add("e.payment_method = $%d", f.PaymentMethod)
	}
	if f.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(f.Search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(e.name ILIKE $%d OR e.description ILIKE $%d)", n, n))
	}

	return strings.Join(where, " AND "), args
}

func (s *PostgresStore) List(ctx context.Context, ownerID string, f Filter) ([]Expense, error) {
	cond, args := translate(ownerID, f)

	rows, err := s.Pool.Query(ctx, `
		SELECT `+selectColumns+`
		FROM expenses e
		JOIN categories c ON c.id = e.category_id
		WHERE `+cond+`
		ORDER BY e.date DESC, e.created_at ASC, e.id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Get(ctx context.Context, ownerID, id string) (*Expense, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT `+selectColumns+`
		FROM expenses e
		JOIN categories c ON c.id = e.category_id
		WHERE e.id = $1 AND e.user_id = $2
	`, id, ownerID)

	e, err := scanExpense(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *PostgresStore) Update(ctx context.Context, ownerID, id string, exp *Expense) (*Expense, error) {
	tag, err := s.Pool.Exec(
		ctx,
		`UPDATE expenses
         SET name = $1, amount = $2, date = $3, description = $4,
             category_id = $5, payment_method = $6, updated_at = NOW()
         WHERE id = $7 AND user_id = $8`,
		exp.Name, exp.Amount, exp.Date, exp.Description,
		exp.CategoryID, exp.PaymentMethod, id, ownerID,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.ErrNotFound
	}
	return s.Get(ctx, ownerID, id)
}

func (s *PostgresStore) Delete(ctx context.Context, ownerID, id string) error {
	tag, err := s.Pool.Exec(
		ctx,
		`DELETE FROM expenses WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
