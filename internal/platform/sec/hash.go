// Copyright (c) 2026 Linkstash. All rights reserved.

package sec

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters.
//
// Tuned so a single hash costs tens of milliseconds on commodity hardware:
// expensive enough to resist offline brute force, cheap enough for
// interactive login.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// DummyDigest is a valid Argon2id digest of a random throwaway password.
//
// Callers burn a verification against it when no real digest exists, so a
// lookup miss costs the same as a password mismatch.
const DummyDigest = "$argon2id$v=19$m=65536,t=1,p=4$yv66vvrO263eyviIiDNEVQ$kK1rQJW0m7aGm1uLs3BDdT9M9M0XWxg1krFoA59vrRo"

// HashPassword hashes a plain-text password using Argon2id.
//
// A fresh random salt is generated per call and embedded in the returned
// digest, so verification needs no separate salt storage. The digest uses the
// standard PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<base64 salt>$<base64 hash>
func HashPassword(plainTextPassword string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("sec: failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plainTextPassword), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	digest := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return digest, nil
}

// VerifyPassword compares a plain-text password with an existing Argon2id digest.
//
// The comparison uses [subtle.ConstantTimeCompare], so there is no early-exit
// timing signal proportional to match length. Any malformed digest verifies
// as false (fail closed), never as a partial match.
func VerifyPassword(plainTextPassword, existingDigest string) bool {
	salt, expectedKey, memory, iterations, threads, ok := parseDigest(existingDigest)
	if !ok {
		return false
	}

	key := argon2.IDKey([]byte(plainTextPassword), salt, iterations, memory, threads, uint32(len(expectedKey)))

	return subtle.ConstantTimeCompare(key, expectedKey) == 1
}

// parseDigest decomposes a PHC-format Argon2id digest into its parts.
//
// Parameters are read back from the digest itself so that digests created
// under older tuning values keep verifying after a parameter bump.
func parseDigest(digest string) (salt, key []byte, memory uint32, iterations uint32, threads uint8, ok bool) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, false
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return nil, nil, 0, 0, 0, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, false
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, 0, 0, 0, false
	}

	return salt, key, memory, iterations, threads, true
}
