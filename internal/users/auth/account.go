// Copyright (c) 2026 Linkstash. All rights reserved.

/*
Package auth implements account registration and credential-based login.

It owns the Account entity and the token issuance flow: a successful signup
or login produces a signed bearer token that the rest of the API trusts.

Core Responsibilities:

  - Registration: Creating accounts with irreversibly hashed passwords.
  - Login: Verifying credentials without revealing which part failed.
  - Throttling: Bounding the rate of failed login attempts per source.
*/
package auth

import (
	"strings"
	"time"

	"github.com/tdvu/linkstash/internal/platform/apperr"
)

// Account is the canonical user record.
//
// # Security
//
// PasswordHash must never appear in any API response. The json:"-" tag makes
// accidental serialization impossible.
type Account struct {
	// ID is the UUIDv7 primary key.
	ID string `json:"id"`

	// Email is the unique, lowercase login identifier.
	Email string `json:"email"`

	// PasswordHash is the Argon2id digest of the password. Never serialized.
	PasswordHash string `json:"-"`

	// FirstName is the optional given name.
	FirstName *string `json:"first_name,omitempty"`

	// LastName is the optional family name.
	LastName *string `json:"last_name,omitempty"`

	// CreatedAt is when the account was registered.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the account was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// Credential is a transient email/password pair supplied at signup or login.
// It is never persisted and never logged.
type Credential struct {
	Email    string
	Password string
}

// NormalizeEmail lowercases and trims an email address so that lookups and
// the unique index agree on a single canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// # Domain Errors

var (
	// ErrDuplicateAccount is returned when the signup email is already registered.
	ErrDuplicateAccount = &apperr.AppError{
		Code:       "DUPLICATE_ACCOUNT",
		Message:    "Credentials taken",
		HTTPStatus: 403,
	}

	// ErrUnknownCredentials is returned for every login failure.
	//
	// Unknown email and wrong password intentionally share one error so the
	// response cannot be used to probe which addresses have accounts.
	ErrUnknownCredentials = &apperr.AppError{
		Code:       "UNKNOWN_CREDENTIALS",
		Message:    "Credentials incorrect",
		HTTPStatus: 401,
	}
)

// # Field Identifiers

const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
)
