// Copyright (c) 2026 Linkstash. All rights reserved.

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tdvu/linkstash/internal/platform/ctxkey"
	"github.com/tdvu/linkstash/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// identityHolder lets middleware that ran BEFORE the auth guard observe the
// identity the guard attaches further down the chain. Context values only
// flow downstream; the holder is the one deliberate back-channel, used by the
// request logger to record the acting account.
type identityHolder struct {
	mu     sync.Mutex
	claims *sec.AuthClaims
}

// WithIdentity returns a new context with the authenticated identity attached.
//
// The identity is owned by the request: it lives exactly as long as the
// derived context and is never shared across requests. If an upstream
// observer was registered via [WithIdentityObserver], it sees the identity too.
func WithIdentity(ctx context.Context, identity *sec.AuthClaims) context.Context {
	if holder, ok := ctx.Value(ctxkey.KeyIdentityObserver).(*identityHolder); ok {
		holder.mu.Lock()
		holder.claims = identity
		holder.mu.Unlock()
	}
	return context.WithValue(ctx, ctxkey.KeyIdentity, identity)
}

// WithIdentityObserver registers an observation point for the identity that a
// downstream [WithIdentity] call will attach.
func WithIdentityObserver(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxkey.KeyIdentityObserver, &identityHolder{})
}

// ObservedIdentity returns the identity recorded since [WithIdentityObserver],
// or nil if the request never authenticated.
func ObservedIdentity(ctx context.Context) *sec.AuthClaims {
	holder, ok := ctx.Value(ctxkey.KeyIdentityObserver).(*identityHolder)
	if !ok {
		return nil
	}

	holder.mu.Lock()
	defer holder.mu.Unlock()
	return holder.claims
}

// GetIdentity retrieves the [*sec.AuthClaims] from the [context.Context].
// Returns nil for anonymous requests.
func GetIdentity(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyIdentity).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
