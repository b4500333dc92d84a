package cache

import (
	"context"
	"log/slog"
	"time"
)

type Cache interface {
	// Get decodes the value under key into value and reports whether it existed.
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Touch extends the lifetime of an existing key.
	Touch(ctx context.Context, key string, ttl time.Duration) error
}

// Remember returns the cached value under key, or loads and stores it.
// Cache failures are logged and fall through to load; only load errors
// are returned.
func Remember[T any](ctx context.Context, c Cache, logger *slog.Logger, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T

	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Cache read failed", slog.String("key", key), slog.Any("error", err))
	} else if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		logger.Warn("Cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

// SessionKey scopes a value to one anonymous visitor session.
func SessionKey(sessionID, part string) string {
	return Key(SessionKeyPrefix, sessionID) + ":" + part
}

const (
	CategoryKeyPrefix = "category"
	SessionKeyPrefix  = "session"

	CategoryListKey = CategoryKeyPrefix + ":all"

	SessionCartPart  = "cart"
	SessionQuotePart = "quote"
)
