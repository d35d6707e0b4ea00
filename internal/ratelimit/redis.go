package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the counter and starts the window on the
// first hit. Returns {count, pttl}.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {current, ttl}
`)

// RedisLimiter is a fixed-window Limiter whose counters live in Redis, so
// every server process shares them.
type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
	max    int
	window time.Duration
}

// NewRedisLimiter creates a Redis-backed limiter. Keys are stored as prefix+key.
func NewRedisLimiter(client redis.UniversalClient, prefix string, limit int, period time.Duration) *RedisLimiter {
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}
	if period <= 0 {
		period = DefaultWindow
	}
	return &RedisLimiter{client: client, prefix: prefix, max: limit, window: period}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	vals, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit script: %w", err)
	}
	if len(vals) != 2 {
		return Result{}, errors.New("rate limit script: unexpected reply")
	}

	count := int(vals[0])
	return Result{
		Allowed:   count <= l.max,
		Limit:     l.max,
		Remaining: max(0, l.max-count),
		ResetAt:   time.Now().Add(time.Duration(vals[1]) * time.Millisecond),
	}, nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.prefix+key).Err(); err != nil {
		return fmt.Errorf("rate limit reset: %w", err)
	}
	return nil
}

// ConnectRedis parses a redis:// URL and verifies the server answers.
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
