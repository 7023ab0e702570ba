// Copyright (c) 2026 Linkstash. All rights reserved.

package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tdvu/linkstash/internal/platform/apperr"
	"github.com/tdvu/linkstash/internal/platform/ctxutil"
	"github.com/tdvu/linkstash/internal/platform/dberr"
	"github.com/tdvu/linkstash/internal/platform/sec"
	"github.com/tdvu/linkstash/pkg/uuidv7"
)

// TokenProvider issues signed access tokens for authenticated accounts.
type TokenProvider interface {
	Issue(accountID string, email string, timeToLive time.Duration) (string, error)
}

// TokenResult is the outcome of a successful signup or login.
type TokenResult struct {
	// AccessToken is the signed bearer token.
	AccessToken string `json:"access_token"`
}

// Service implements the registration and login use cases.
type Service struct {
	accounts AccountRepository
	throttle LoginThrottle
	tokens   TokenProvider
}

// NewService wires the auth service with its dependencies.
func NewService(accounts AccountRepository, throttle LoginThrottle, tokens TokenProvider) *Service {
	return &Service{
		accounts: accounts,
		throttle: throttle,
		tokens:   tokens,
	}
}

/*
Signup registers a new account and returns a freshly issued access token.

The plaintext password is hashed before any storage call; it is never
persisted or logged. Email uniqueness is enforced by the storage layer, so
two concurrent signups for the same address resolve to exactly one winner.

Returns:
  - *TokenResult: The signed access token on success
  - error: [ErrDuplicateAccount] if the email is taken
*/
func (s *Service) Signup(ctx context.Context, credential Credential, firstName, lastName *string) (*TokenResult, error) {

	// ── 1. Hash the password before anything touches storage ─────────────
	passwordHash, err := sec.HashPassword(credential.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	// ── 2. Persist the account ────────────────────────────────────────────
	account := &Account{
		ID:           uuidv7.Must(),
		Email:        NormalizeEmail(credential.Email),
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, ErrDuplicateAccount) || errors.Is(err, dberr.ErrConflict) {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	// ── 3. Issue the access token ─────────────────────────────────────────
	return s.issueToken(ctx, account)
}

/*
Login verifies a credential pair and returns a freshly issued access token.

Unknown email and wrong password produce the same [ErrUnknownCredentials],
with password verification still executed in both branches so the two
failures are indistinguishable by response and comparable in timing.

Parameters:
  - clientIP: Source IP used (with the email) to key the login throttle.

Returns:
  - *TokenResult: The signed access token on success
  - error: [ErrUnknownCredentials] on any credential failure,
    apperr.RateLimited when the source is throttled
*/
func (s *Service) Login(ctx context.Context, credential Credential, clientIP string) (*TokenResult, error) {
	email := NormalizeEmail(credential.Email)
	throttleKey := email + "|" + clientIP

	// ── 1. Check the failed-attempt ceiling ───────────────────────────────
	blocked, err := s.throttle.TooManyFailures(ctx, throttleKey)
	if err != nil {
		// Fail open: a throttle outage must not lock everyone out.
		ctxutil.GetLogger(ctx).WarnContext(ctx, "login_throttle_unavailable",
			slog.String("error", err.Error()))
	}
	if blocked {
		return nil, apperr.RateLimited(ThrottleRetryAfterSeconds)
	}

	// ── 2. Look up the account ────────────────────────────────────────────
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			// Burn a verification anyway so unknown email and wrong password
			// take comparable time.
			sec.VerifyPassword(credential.Password, sec.DummyDigest)
			s.recordFailure(ctx, throttleKey)
			return nil, ErrUnknownCredentials
		}
		return nil, err
	}

	// ── 3. Verify the password ────────────────────────────────────────────
	if !sec.VerifyPassword(credential.Password, account.PasswordHash) {
		s.recordFailure(ctx, throttleKey)
		return nil, ErrUnknownCredentials
	}

	// ── 4. Success: forgive the source and issue the token ────────────────
	if err := s.throttle.Reset(ctx, throttleKey); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "login_throttle_reset_failed",
			slog.String("error", err.Error()))
	}

	return s.issueToken(ctx, account)
}

// issueToken signs an access token for the account.
func (s *Service) issueToken(ctx context.Context, account *Account) (*TokenResult, error) {
	token, err := s.tokens.Issue(account.ID, account.Email, AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "access_token_issued",
		slog.String("account_id", account.ID))

	return &TokenResult{AccessToken: token}, nil
}

// recordFailure bumps the throttle counter, tolerating throttle outages.
func (s *Service) recordFailure(ctx context.Context, throttleKey string) {
	if err := s.throttle.RecordFailure(ctx, throttleKey, ThrottleWindow); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "login_throttle_record_failed",
			slog.String("error", err.Error()))
	}
}
