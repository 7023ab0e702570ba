// Copyright (c) 2026 Linkstash. All rights reserved.

package account

import (
	"context"

	"github.com/tdvu/linkstash/internal/users/auth"
)

// Repository defines the persistence contract for profile operations.
type Repository interface {
	// FindByID returns the account for the given UUID,
	// or dberr.ErrNotFound if no such account exists.
	FindByID(ctx context.Context, accountID string) (*auth.Account, error)

	// UpdateProfile applies the non-nil fields of update to the account and
	// returns the updated row. It returns auth.ErrDuplicateAccount if the new
	// email is already registered to another account.
	UpdateProfile(ctx context.Context, accountID string, update ProfileUpdate) (*auth.Account, error)
}
