// Copyright (c) 2026 Linkstash. All rights reserved.

package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tdvu/linkstash/internal/platform/apperr"
	"github.com/tdvu/linkstash/internal/platform/ctxutil"
	"github.com/tdvu/linkstash/internal/platform/dberr"
	"github.com/tdvu/linkstash/internal/users/auth"
)

// Service implements the profile use cases.
type Service struct {
	accounts Repository
}

// NewService wires the profile service with its dependencies.
func NewService(accounts Repository) *Service {
	return &Service{accounts: accounts}
}

/*
Me returns the profile of the currently authenticated account.

The guard has already verified the token, so a missing row here means the
account was deleted after the token was issued; the token is then worthless
and the caller gets a 404.
*/
func (s *Service) Me(ctx context.Context, accountID string) (*auth.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Account")
		}
		return nil, err
	}

	return account, nil
}

/*
UpdateProfile applies a partial update to the caller's own profile.

Only the fields present in the payload change. An email change collides with
the uniqueness invariant the same way signup does.

Returns:
  - *auth.Account: The updated profile
  - error: auth.ErrDuplicateAccount if the new email is taken
*/
func (s *Service) UpdateProfile(ctx context.Context, accountID string, update ProfileUpdate) (*auth.Account, error) {
	if update.IsEmpty() {
		// Nothing to change: return the current profile untouched.
		return s.Me(ctx, accountID)
	}

	update.Normalize()

	updated, err := s.accounts.UpdateProfile(ctx, accountID, update)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Account")
		}
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "profile_updated",
		slog.String("account_id", accountID),
		slog.Bool("email_changed", update.Email != nil),
	)

	return updated, nil
}
