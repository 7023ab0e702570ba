// Copyright (c) 2026 Linkstash. All rights reserved.

/*
Package account implements profile operations for authenticated users.

It covers the read-your-own-profile and partial-profile-update use cases.
The [auth.Account] entity is owned by the auth package; this package only
reads and mutates it on behalf of the logged-in account.
*/
package account

import "github.com/tdvu/linkstash/internal/users/auth"

// ProfileUpdate carries the optional fields of a partial profile update.
//
// A nil pointer means "leave unchanged"; a non-nil pointer replaces the
// stored value.
type ProfileUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the update would change nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil
}

// Normalize canonicalizes mutable fields before persistence.
func (u *ProfileUpdate) Normalize() {
	if u.Email != nil {
		normalized := auth.NormalizeEmail(*u.Email)
		u.Email = &normalized
	}
}
