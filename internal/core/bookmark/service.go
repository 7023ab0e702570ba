// Copyright (c) 2026 Linkstash. All rights reserved.

package bookmark

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tdvu/linkstash/internal/platform/apperr"
	"github.com/tdvu/linkstash/internal/platform/ctxutil"
	"github.com/tdvu/linkstash/internal/platform/dberr"
	"github.com/tdvu/linkstash/pkg/pagination"
	"github.com/tdvu/linkstash/pkg/uuidv7"
)

// Service implements the bookmark use cases.
//
// Ownership is checked here, not in the store: the store answers "does this
// row exist", the service decides what the caller is allowed to learn.
type Service struct {
	bookmarks Repository
}

// NewService wires the bookmark service with its dependencies.
func NewService(bookmarks Repository) *Service {
	return &Service{bookmarks: bookmarks}
}

// List returns one page of the caller's bookmarks plus pagination metadata.
func (s *Service) List(ctx context.Context, ownerID string, page pagination.Params) ([]Bookmark, pagination.Meta, error) {
	bookmarks, total, err := s.bookmarks.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return bookmarks, pagination.NewMeta(page.Page, page.Limit, total), nil
}

/*
Get returns a single bookmark owned by the caller.

A bookmark that exists but belongs to someone else is reported as not found,
so reads never confirm another account's bookmark IDs.
*/
func (s *Service) Get(ctx context.Context, ownerID, bookmarkID string) (*Bookmark, error) {
	found, err := s.bookmarks.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Bookmark")
		}
		return nil, err
	}

	if found.UserID != ownerID {
		return nil, apperr.NotFound("Bookmark")
	}

	return found, nil
}

// Create saves a new bookmark for the caller.
func (s *Service) Create(ctx context.Context, ownerID, title string, description *string, link string) (*Bookmark, error) {
	created := &Bookmark{
		ID:          uuidv7.Must(),
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Link:        link,
	}

	if err := s.bookmarks.Create(ctx, created); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "bookmark_created",
		slog.String("bookmark_id", created.ID),
		slog.String("account_id", ownerID),
	)

	return created, nil
}

/*
Update applies a partial edit to a bookmark the caller owns.

Returns:
  - *Bookmark: The updated bookmark
  - error: [ErrAccessDenied] if the bookmark is missing or owned by
    another account
*/
func (s *Service) Update(ctx context.Context, ownerID, bookmarkID string, update Update) (*Bookmark, error) {
	if err := s.requireOwnership(ctx, ownerID, bookmarkID); err != nil {
		return nil, err
	}

	if update.IsEmpty() {
		return s.Get(ctx, ownerID, bookmarkID)
	}

	updated, err := s.bookmarks.Update(ctx, bookmarkID, update)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			// Deleted between the ownership check and the update.
			return nil, ErrAccessDenied
		}
		return nil, err
	}

	return updated, nil
}

// Delete removes a bookmark the caller owns.
//
// Returns [ErrAccessDenied] if the bookmark is missing or owned by another
// account.
func (s *Service) Delete(ctx context.Context, ownerID, bookmarkID string) error {
	if err := s.requireOwnership(ctx, ownerID, bookmarkID); err != nil {
		return err
	}

	if err := s.bookmarks.Delete(ctx, bookmarkID); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "bookmark_deleted",
		slog.String("bookmark_id", bookmarkID),
		slog.String("account_id", ownerID),
	)

	return nil
}

// requireOwnership verifies the bookmark exists and belongs to ownerID.
//
// Missing and foreign bookmarks both come back as [ErrAccessDenied]: a
// mutation attempt deserves the harder refusal either way.
func (s *Service) requireOwnership(ctx context.Context, ownerID, bookmarkID string) error {
	found, err := s.bookmarks.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return ErrAccessDenied
		}
		return err
	}

	if found.UserID != ownerID {
		return ErrAccessDenied
	}

	return nil
}
