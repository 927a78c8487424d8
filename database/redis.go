package database

import (
	"MediCore/config"
	"MediCore/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrLockNotAcquired is returned when a lock is still held after all retries.
// It is a conflict, so clients see a retryable 400 rather than a server error.
var ErrLockNotAcquired error = &utils.AppError{
	Kind:    utils.ErrConflict,
	Message: "Another request is updating this record, please retry",
}

type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	MinIdleConns int
	ReadTimeout  time.Duration
	MaxRetries   int
}

// RedisConfigFrom extracts the Redis settings from the application config.
func RedisConfigFrom(cfg *config.AppConfig) RedisConfig {
	return RedisConfig{
		URL:          cfg.RedisAddress,
		PoolSize:     cfg.RedisPoolSize,
		DialTimeout:  cfg.RedisDialTimeout,
		MinIdleConns: cfg.RedisMinIdleConns,
		ReadTimeout:  cfg.RedisReadTimeout,
		MaxRetries:   cfg.RedisMaxRetries,
	}
}

// NewRedisClient creates a Redis client with the provided configuration
func NewRedisClient(ctx context.Context, config RedisConfig, log zerolog.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = config.PoolSize
	opt.MinIdleConns = config.MinIdleConns
	opt.DialTimeout = config.DialTimeout
	opt.ReadTimeout = config.ReadTimeout
	opt.MaxRetries = config.MaxRetries

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis server: %w", err)
	}

	log.Info().
		Int("pool_size", config.PoolSize).
		Int("min_idle_conns", config.MinIdleConns).
		Dur("dial_timeout", config.DialTimeout).
		Dur("read_timeout", config.ReadTimeout).
		Int("max_retries", config.MaxRetries).
		Msg("redis client initialized")
	return client, nil
}

// LogPoolStats logs the connection pool statistics for monitoring
func LogPoolStats(client *redis.Client, log zerolog.Logger) {
	stats := client.PoolStats()
	log.Info().
		Uint32("total", stats.TotalConns).
		Uint32("idle", stats.IdleConns).
		Uint32("stale", stats.StaleConns).
		Msg("redis pool stats")
}

const releaseLockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

// Locker hands out short-lived distributed locks backed by SETNX.
type Locker struct {
	client     *redis.Client
	ttl        time.Duration
	maxRetries int
	retryDelay time.Duration
	release    *redis.Script
	log        zerolog.Logger
}

func NewLocker(client *redis.Client) *Locker {
	return &Locker{
		client:     client,
		ttl:        10 * time.Second,
		maxRetries: 3,
		retryDelay: 200 * time.Millisecond,
		release:    redis.NewScript(releaseLockScript),
		log:        zerolog.Nop(),
	}
}

// WithLogger sets the logger used to report locks that could not be released.
func (l *Locker) WithLogger(log zerolog.Logger) *Locker {
	l.log = log
	return l
}

// WithRetry overrides how often and how long Acquire waits for a held lock.
func (l *Locker) WithRetry(maxRetries int, delay time.Duration) *Locker {
	l.maxRetries = maxRetries
	l.retryDelay = delay
	return l
}

// Acquire takes the lock for key and returns the owner token needed to release it.
func (l *Locker) Acquire(ctx context.Context, key string) (string, error) {
	value := uuid.New().String()
	var lastErr error
	for i := 0; i < l.maxRetries; i++ {
		locked, err := l.client.SetNX(ctx, key, value, l.ttl).Result()
		if err == nil && locked {
			return value, nil
		}
		lastErr = err
		if i < l.maxRetries-1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(l.retryDelay):
			}
		}
	}
	if lastErr != nil {
		return "", fmt.Errorf("failed to acquire lock: %w", lastErr)
	}
	return "", ErrLockNotAcquired
}

// Release deletes the lock only if value still owns it.
func (l *Locker) Release(ctx context.Context, key, value string) error {
	result, err := l.release.Run(ctx, l.client, []string{key}, value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return errors.New("lock release failed: not the lock owner")
	}
	return nil
}

// WithLock runs fn while holding the lock for key and returns fn's result.
// A lock that cannot be released is left to expire with its TTL.
func (l *Locker) WithLock(ctx context.Context, key string, fn func() error) error {
	value, err := l.Acquire(ctx, key)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := l.Release(context.WithoutCancel(ctx), key, value); releaseErr != nil {
			l.log.Warn().Err(releaseErr).Str("key", key).Msg("lock left to expire")
		}
	}()
	return fn()
}
