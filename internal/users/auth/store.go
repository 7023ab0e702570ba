// Copyright (c) 2026 Linkstash. All rights reserved.

package auth

import (
	"context"
	"time"
)

// AccountRepository defines the persistence contract for accounts.
//
// Implementations must treat email uniqueness as a storage-level invariant:
// Create returns [ErrDuplicateAccount] when the email is already taken, even
// under concurrent inserts.
type AccountRepository interface {
	// Create persists a new account.
	Create(ctx context.Context, account *Account) error

	// FindByEmail returns the account for a normalized email address,
	// or dberr.ErrNotFound if no such account exists.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// FindByID returns the account for the given UUID,
	// or dberr.ErrNotFound if no such account exists.
	FindByID(ctx context.Context, accountID string) (*Account, error)
}

// LoginThrottle bounds the rate of failed login attempts per source key.
//
// The key is an opaque composite (normalized email plus client IP); the
// throttle stores only counters with a TTL, never credentials.
type LoginThrottle interface {
	// TooManyFailures reports whether the source has exceeded the allowed
	// number of failed attempts within the current window.
	TooManyFailures(ctx context.Context, key string) (bool, error)

	// RecordFailure increments the failed-attempt counter for the source,
	// extending the counter's TTL to the full window.
	RecordFailure(ctx context.Context, key string, window time.Duration) error

	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, key string) error
}
