// Copyright (c) 2026 Linkstash. All rights reserved.

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdvu/linkstash/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies that a digest always matches the password
it was created from and rejects every other password.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple", "pw123"},
		{"long", strings.Repeat("correct-horse-battery-staple-", 8)},
		{"unicode", "pässwörd-ツ"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := sec.HashPassword(tt.password)
			require.NoError(t, err)

			assert.True(t, sec.VerifyPassword(tt.password, digest))
			assert.False(t, sec.VerifyPassword(tt.password+"x", digest))
		})
	}
}

/*
TestHashPassword_SaltIsRandom verifies that hashing the same password twice
produces different digests (fresh per-call salt).
*/
func TestHashPassword_SaltIsRandom(t *testing.T) {
	first, err := sec.HashPassword("pw123")
	require.NoError(t, err)

	second, err := sec.HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Both still verify against the original password.
	assert.True(t, sec.VerifyPassword("pw123", first))
	assert.True(t, sec.VerifyPassword("pw123", second))
}

/*
TestHashPassword_DigestFormat verifies the PHC string layout of the digest.
*/
func TestHashPassword_DigestFormat(t *testing.T) {
	digest, err := sec.HashPassword("pw123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$argon2id$v=19$"))
	assert.Len(t, strings.Split(digest, "$"), 6)

	// The plaintext must never leak into the digest.
	assert.NotContains(t, digest, "pw123")
}

/*
TestVerifyPassword_MalformedDigest verifies that broken digests fail closed.
*/
func TestVerifyPassword_MalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"not_phc", "plain-bcrypt-style-hash"},
		{"wrong_algorithm", "$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"wrong_version", "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"bad_salt_encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
		{"missing_segments", "$argon2id$v=19$m=65536,t=1,p=4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, sec.VerifyPassword("pw123", tt.digest))
		})
	}
}
