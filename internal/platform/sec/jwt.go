// Copyright (c) 2026 Linkstash. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the [auth.TokenProvider] interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token rejection reasons.
//
// Verification is fail-closed: a token that cannot be fully parsed, signature-
// checked, and expiry-checked yields one of these errors and never a partial
// identity. The three reasons mirror the terminal states of a verification
// attempt: malformed, bad-signature, expired.
var (
	// ErrTokenMalformed is returned when the token cannot be parsed or its
	// claim shape is invalid.
	ErrTokenMalformed = errors.New("sec: token malformed")

	// ErrTokenBadSignature is returned when the signature does not match or
	// the signing algorithm is not the expected HMAC scheme.
	ErrTokenBadSignature = errors.New("sec: token signature invalid")

	// ErrTokenExpired is returned when the token's expiry is in the past.
	ErrTokenExpired = errors.New("sec: token expired")
)

// AuthClaims represents the payload embedded inside a JWT access token.
//
// # Why custom claims?
//
// By embedding the account email next to the registered Subject (account ID),
// [middleware.Authenticate] can reconstruct the active identity WITHOUT
// querying the database on every single API request.
type AuthClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// AccountID returns the subject claim, the ID of the authenticated account.
func (c *AuthClaims) AccountID() string {
	return c.Subject
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The secret is loaded once at startup from the environment and held
// immutable for the process lifetime; it is safe for unlimited concurrent
// readers and must never appear in logs.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService from the signing secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Issue creates a new signed access token bound to an account identity.
//
// Two tokens issued for the same identity at different instants differ,
// because the issued-at timestamp varies. No idempotence is guaranteed.
func (service *TokenService) Issue(accountID, email string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature, expiry, and claim shape of a JWT string.
//
// # State machine
//
// Received token -> Parsed -> Signature-checked -> Expiry-checked -> Accepted.
// Every failed transition terminates in a rejection ([ErrTokenMalformed],
// [ErrTokenBadSignature], or [ErrTokenExpired]).
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// classifyTokenError maps jwt library failures onto the rejection taxonomy.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrTokenBadSignature, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
