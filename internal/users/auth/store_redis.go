// Copyright (c) 2026 Linkstash. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tdvu/linkstash/internal/platform/constants"
)

// RedisLoginThrottle implements [LoginThrottle] with per-source counters in Redis.
//
// Each counter lives under [constants.RedisPrefixLoginThrottle] and expires on
// its own, so a quiet source is forgiven without any cleanup job.
type RedisLoginThrottle struct {
	client *redis.Client
}

// NewRedisLoginThrottle creates the Redis-backed login throttle.
func NewRedisLoginThrottle(client *redis.Client) *RedisLoginThrottle {
	return &RedisLoginThrottle{client: client}
}

// TooManyFailures reports whether the source exceeded [MaxFailedLogins].
//
// A Redis outage fails open: login availability is worth more than throttle
// precision, and the Argon2 verification cost still bounds attacker throughput.
func (t *RedisLoginThrottle) TooManyFailures(ctx context.Context, key string) (bool, error) {
	count, err := t.client.Get(ctx, t.redisKey(key)).Int()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("login throttle: read counter: %w", err)
	}

	return count >= MaxFailedLogins, nil
}

// RecordFailure increments the source's counter and refreshes its TTL.
func (t *RedisLoginThrottle) RecordFailure(ctx context.Context, key string, window time.Duration) error {
	redisKey := t.redisKey(key)

	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login throttle: record failure: %w", err)
	}

	return nil
}

// Reset clears the source's counter after a successful login.
func (t *RedisLoginThrottle) Reset(ctx context.Context, key string) error {
	if err := t.client.Del(ctx, t.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("login throttle: reset: %w", err)
	}
	return nil
}

// redisKey namespaces the source key under the throttle prefix.
func (t *RedisLoginThrottle) redisKey(key string) string {
	return constants.RedisPrefixLoginThrottle + key
}
