// Copyright (c) 2026 Linkstash. All rights reserved.

package bookmark

import (
	"context"

	"github.com/tdvu/linkstash/pkg/pagination"
)

// Repository defines the persistence contract for bookmarks.
//
// All queries are owner-scoped: a bookmark belonging to a different account
// behaves exactly like a bookmark that does not exist.
type Repository interface {
	// Create persists a new bookmark.
	Create(ctx context.Context, bookmark *Bookmark) error

	// ListByOwner returns one page of the owner's bookmarks, newest first,
	// along with the owner's total bookmark count.
	ListByOwner(ctx context.Context, ownerID string, page pagination.Params) ([]Bookmark, int, error)

	// FindByID returns the bookmark with the given ID regardless of owner,
	// or dberr.ErrNotFound. Ownership is the service's decision to make.
	FindByID(ctx context.Context, bookmarkID string) (*Bookmark, error)

	// Update applies the non-nil fields of update and returns the fresh row.
	Update(ctx context.Context, bookmarkID string, update Update) (*Bookmark, error)

	// Delete removes the bookmark. Deleting a missing row is not an error;
	// the service has already established existence and ownership.
	Delete(ctx context.Context, bookmarkID string) error
}
