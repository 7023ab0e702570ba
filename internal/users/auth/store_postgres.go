// Copyright (c) 2026 Linkstash. All rights reserved.

package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdvu/linkstash/internal/platform/dberr"
)

// PostgresAccountRepository implements [AccountRepository] using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAccountRepository creates the PostgreSQL-backed account store.
func NewPostgresAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

// accountColumns is the shared projection for account queries.
const accountColumns = `
	id, email, password_hash, first_name, last_name, created_at, updated_at`

// Create inserts a new account row.
//
// The unique index on email is the authoritative duplicate check: a racing
// insert loses here with SQLSTATE 23505 and surfaces as [ErrDuplicateAccount].
func (r *PostgresAccountRepository) Create(ctx context.Context, account *Account) error {
	query := `
		INSERT INTO users.account (id, email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
	).Scan(&account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return ErrDuplicateAccount
		}
		return dberr.Wrap(err, "create account")
	}

	return nil
}

// FindByEmail looks up an account by its normalized email address.
func (r *PostgresAccountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	query := `
		SELECT` + accountColumns + `
		FROM users.account
		WHERE email = $1`

	return r.scanOne(ctx, query, email)
}

// FindByID looks up an account by its UUID primary key.
func (r *PostgresAccountRepository) FindByID(ctx context.Context, accountID string) (*Account, error) {
	query := `
		SELECT` + accountColumns + `
		FROM users.account
		WHERE id = $1`

	return r.scanOne(ctx, query, accountID)
}

// scanOne executes a single-row account query and maps storage errors.
func (r *PostgresAccountRepository) scanOne(ctx context.Context, query string, arg any) (*Account, error) {
	var account Account

	err := r.pool.QueryRow(ctx, query, arg).Scan(
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
