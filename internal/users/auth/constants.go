// Copyright (c) 2026 Linkstash. All rights reserved.

package auth

import "time"

// # Token Policy

const (
	// AccessTokenTTL is the lifetime of an issued access token.
	AccessTokenTTL = 15 * time.Minute
)

// # Login Throttling

const (
	// MaxFailedLogins is the number of failed attempts allowed per throttle window.
	MaxFailedLogins = 10

	// ThrottleWindow is the TTL of the failed-attempt counter.
	ThrottleWindow = 15 * time.Minute

	// ThrottleRetryAfterSeconds is advertised to clients that hit the ceiling.
	ThrottleRetryAfterSeconds = 900
)

// # Validation Bounds

const (
	// MaxPasswordLength bounds input to keep hashing cost predictable.
	// There is no minimum beyond non-empty; password policy is the
	// client's concern.
	MaxPasswordLength = 128

	// MaxEmailLength matches the column width of users.account.email.
	MaxEmailLength = 255

	// MaxNameLength matches the column width of the name fields.
	MaxNameLength = 100
)
