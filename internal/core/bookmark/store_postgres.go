// Copyright (c) 2026 Linkstash. All rights reserved.

package bookmark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdvu/linkstash/internal/platform/dberr"
	"github.com/tdvu/linkstash/pkg/pagination"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the PostgreSQL-backed bookmark store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const bookmarkColumns = `
	id, user_id, title, description, link, created_at, updated_at`

// Create inserts a new bookmark row.
func (r *PostgresRepository) Create(ctx context.Context, bookmark *Bookmark) error {
	query := `
		INSERT INTO core.bookmark (id, user_id, title, description, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		bookmark.ID,
		bookmark.UserID,
		bookmark.Title,
		bookmark.Description,
		bookmark.Link,
	).Scan(&bookmark.CreatedAt, &bookmark.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "create bookmark")
	}

	return nil
}

// ListByOwner returns one page of the owner's bookmarks plus the total count.
//
// The count query runs first so the page/total pair is consistent enough for
// pagination metadata; exact snapshot consistency is not required here.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string, page pagination.Params) ([]Bookmark, int, error) {
	var total int
	countQuery := `SELECT count(*) FROM core.bookmark WHERE user_id = $1`
	if err := r.pool.QueryRow(ctx, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count bookmarks")
	}

	listQuery := `
		SELECT` + bookmarkColumns + `
		FROM core.bookmark
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, listQuery, ownerID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list bookmarks")
	}
	defer rows.Close()

	bookmarks := make([]Bookmark, 0, page.Limit)
	for rows.Next() {
		var b Bookmark
		if err := scanBookmark(rows, &b); err != nil {
			return nil, 0, dberr.Wrap(err, "scan bookmark")
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate bookmarks")
	}

	return bookmarks, total, nil
}

// FindByID looks up a bookmark by its UUID primary key.
func (r *PostgresRepository) FindByID(ctx context.Context, bookmarkID string) (*Bookmark, error) {
	query := `
		SELECT` + bookmarkColumns + `
		FROM core.bookmark
		WHERE id = $1`

	var b Bookmark
	if err := scanBookmark(r.pool.QueryRow(ctx, query, bookmarkID), &b); err != nil {
		wrapped := dberr.Wrap(err, "find bookmark")
		if errors.Is(wrapped, dberr.ErrNotFound) {
			return nil, dberr.ErrNotFound
		}
		return nil, wrapped
	}

	return &b, nil
}

// Update applies a partial update and returns the fresh row.
func (r *PostgresRepository) Update(ctx context.Context, bookmarkID string, update Update) (*Bookmark, error) {
	setClauses := []string{"updated_at = now()"}
	args := []any{bookmarkID}

	appendSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Title != nil {
		appendSet("title", *update.Title)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	if update.Link != nil {
		appendSet("link", *update.Link)
	}

	query := fmt.Sprintf(`
		UPDATE core.bookmark
		SET %s
		WHERE id = $1
		RETURNING`+bookmarkColumns,
		strings.Join(setClauses, ", "))

	var b Bookmark
	if err := scanBookmark(r.pool.QueryRow(ctx, query, args...), &b); err != nil {
		wrapped := dberr.Wrap(err, "update bookmark")
		if errors.Is(wrapped, dberr.ErrNotFound) {
			return nil, dberr.ErrNotFound
		}
		return nil, wrapped
	}

	return &b, nil
}

// Delete removes the bookmark row.
func (r *PostgresRepository) Delete(ctx context.Context, bookmarkID string) error {
	query := `DELETE FROM core.bookmark WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, bookmarkID); err != nil {
		return dberr.Wrap(err, "delete bookmark")
	}

	return nil
}

// scanBookmark maps one row into a Bookmark.
func scanBookmark(row pgx.Row, b *Bookmark) error {
	return row.Scan(
		&b.ID,
		&b.UserID,
		&b.Title,
		&b.Description,
		&b.Link,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}
