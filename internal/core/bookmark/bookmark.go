// Copyright (c) 2026 Linkstash. All rights reserved.

/*
Package bookmark implements the per-user bookmark collection.

Every operation is scoped to the owning account: listing and reads never
cross account boundaries, and mutations on another account's bookmark are
rejected outright.
*/
package bookmark

import (
	"time"

	"github.com/tdvu/linkstash/internal/platform/apperr"
)

// Bookmark is a saved link owned by exactly one account.
type Bookmark struct {
	// ID is the UUIDv7 primary key.
	ID string `json:"id"`

	// UserID is the owning account's UUID.
	UserID string `json:"user_id"`

	// Title is the display name of the bookmark.
	Title string `json:"title"`

	// Description is optional free-form text.
	Description *string `json:"description,omitempty"`

	// Link is the absolute http(s) URL the bookmark points at.
	Link string `json:"link"`

	// CreatedAt is when the bookmark was saved.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the bookmark was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// Update carries the optional fields of a partial bookmark edit.
type Update struct {
	Title       *string
	Description *string
	Link        *string
}

// IsEmpty reports whether the update would change nothing.
func (u Update) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Link == nil
}

// # Domain Errors

var (
	// ErrAccessDenied is returned when a mutation targets a bookmark the
	// caller does not own. A missing bookmark gets the same answer, so the
	// response does not reveal whether the ID exists.
	ErrAccessDenied = &apperr.AppError{
		Code:       "ACCESS_DENIED",
		Message:    "Access to resource denied",
		HTTPStatus: 403,
	}
)

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLink        = "link"
)

// # Validation Bounds

const (
	// MaxTitleLength matches the column width of core.bookmark.title.
	MaxTitleLength = 255

	// MaxDescriptionLength bounds free-form text.
	MaxDescriptionLength = 2000

	// MaxLinkLength matches the column width of core.bookmark.link.
	MaxLinkLength = 2048
)
