// Copyright (c) 2026 Linkstash. All rights reserved.

package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdvu/linkstash/internal/platform/dberr"
	"github.com/tdvu/linkstash/internal/users/auth"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the PostgreSQL-backed profile store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// FindByID looks up an account by its UUID primary key.
func (r *PostgresRepository) FindByID(ctx context.Context, accountID string) (*auth.Account, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, created_at, updated_at
		FROM users.account
		WHERE id = $1`

	return r.scanOne(r.pool.QueryRow(ctx, query, accountID))
}

// UpdateProfile applies a partial update and returns the fresh row.
//
// The SET clause is built only from fields the caller actually supplied, so
// concurrent updates to disjoint fields do not clobber each other.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, accountID string, update ProfileUpdate) (*auth.Account, error) {
	setClauses := []string{"updated_at = now()"}
	args := []any{accountID}

	appendSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Email != nil {
		appendSet("email", *update.Email)
	}
	if update.FirstName != nil {
		appendSet("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		appendSet("last_name", *update.LastName)
	}

	query := fmt.Sprintf(`
		UPDATE users.account
		SET %s
		WHERE id = $1
		RETURNING id, email, password_hash, first_name, last_name, created_at, updated_at`,
		strings.Join(setClauses, ", "))

	account, err := r.scanOne(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if dberrIsDuplicate(err) {
			return nil, auth.ErrDuplicateAccount
		}
		return nil, err
	}

	return account, nil
}

// scanOne maps a single account row, translating storage errors.
func (r *PostgresRepository) scanOne(row interface{ Scan(...any) error }) (*auth.Account, error) {
	var account auth.Account

	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.FirstName,
		&account.LastName,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		wrapped := dberr.Wrap(err, "find account")
		if errors.Is(wrapped, dberr.ErrNotFound) {
			return nil, dberr.ErrNotFound
		}
		return nil, wrapped
	}

	return &account, nil
}

// dberrIsDuplicate reports whether err stems from the email unique index.
func dberrIsDuplicate(err error) bool {
	return errors.Is(err, dberr.ErrConflict) || dberr.IsUniqueViolation(err)
}
