// Copyright (c) 2026 Linkstash. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tdvu/linkstash/internal/platform/ctxutil"
	"github.com/tdvu/linkstash/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Identity verifies that AuthClaims can be stored in context.
*/
func TestContext_Identity(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AuthClaims{Email: "a@x.com"}
	claims.Subject = "account-123"

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetIdentity(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithIdentity(ctx, claims)
	retrieved := ctxutil.GetIdentity(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "account-123", retrieved.AccountID())
	assert.Equal(t, "a@x.com", retrieved.Email)
}

/*
TestContext_IdentityObserver verifies that an observation point registered
upstream sees the identity attached by a later WithIdentity call, even though
the derived context itself never flows back up.
*/
func TestContext_IdentityObserver(t *testing.T) {
	claims := &sec.AuthClaims{Email: "a@x.com"}
	claims.Subject = "account-123"

	observed := ctxutil.WithIdentityObserver(context.Background())

	// 1. Nothing observed before authentication
	assert.Nil(t, ctxutil.ObservedIdentity(observed))

	// 2. A downstream derivation attaches the identity
	_ = ctxutil.WithIdentity(observed, claims)

	// 3. The upstream context now sees it through the observer
	retrieved := ctxutil.ObservedIdentity(observed)
	assert.NotNil(t, retrieved)
	assert.Equal(t, "account-123", retrieved.AccountID())

	// 4. A context without an observer stays silent
	assert.Nil(t, ctxutil.ObservedIdentity(context.Background()))
}

/*
TestContext_IdentityIsolation verifies that two contexts derived from the same
parent never observe each other's identity.
*/
func TestContext_IdentityIsolation(t *testing.T) {
	parent := context.Background()

	first := &sec.AuthClaims{Email: "first@x.com"}
	second := &sec.AuthClaims{Email: "second@x.com"}

	ctxA := ctxutil.WithIdentity(parent, first)
	ctxB := ctxutil.WithIdentity(parent, second)

	assert.Equal(t, "first@x.com", ctxutil.GetIdentity(ctxA).Email)
	assert.Equal(t, "second@x.com", ctxutil.GetIdentity(ctxB).Email)
	assert.Nil(t, ctxutil.GetIdentity(parent))
}
