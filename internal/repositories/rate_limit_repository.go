package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

// LoginAttempt is the outcome of registering one login try for an email.
type LoginAttempt struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type RateLimitRepository interface {
	CheckLoginRateLimit(ctx context.Context, email string) (LoginAttempt, error)
	ResetLoginRateLimit(ctx context.Context, email string) error
}

type loginLimiter struct {
	client      *redis.Client
	window      time.Duration
	maxAttempts int64
}

func NewRateLimitRepo(client *redis.Client, cfg *config.Config) RateLimitRepository {
	return &loginLimiter{
		client:      client,
		window:      cfg.RateConfig.WindowSize,
		maxAttempts: cfg.RateConfig.MaxAttempts,
	}
}

func loginAttemptsKey(email string) string {
	return "login_attempts:" + email
}

// CheckLoginRateLimit adds the current try to a sliding window kept as a
// sorted set scored by unix nanoseconds, then counts what is left in it.
func (l *loginLimiter) CheckLoginRateLimit(ctx context.Context, email string) (LoginAttempt, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("email", email))

	key := loginAttemptsKey(email)
	now := time.Now()
	stamp := now.UnixNano()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(now.Add(-l.window).UnixNano(), 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(stamp), Member: stamp})
	card := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return LoginAttempt{}, fmt.Errorf("login limiter: record attempt: %w", err)
	}

	attempts := card.Val()
	if attempts <= l.maxAttempts {
		logger.Debug("Login attempt within limit", slog.Int64("attempts", attempts))
		return LoginAttempt{Allowed: true, Remaining: int(l.maxAttempts - attempts)}, nil
	}

	oldest, err := l.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
	if err != nil {
		return LoginAttempt{RetryAfter: l.window}, fmt.Errorf("login limiter: oldest attempt: %w", err)
	}

	wait := l.window
	if len(oldest) > 0 {
		wait = max(time.Unix(0, int64(oldest[0].Score)).Add(l.window).Sub(now), 0)
	}

	logger.Warn("Login rate limit exceeded", slog.Int64("attempts", attempts), slog.Duration("retry_after", wait))

	return LoginAttempt{RetryAfter: wait}, nil
}

// ResetLoginRateLimit forgets past attempts after a successful login.
func (l *loginLimiter) ResetLoginRateLimit(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, loginAttemptsKey(email)).Err(); err != nil {
		return fmt.Errorf("login limiter: reset: %w", err)
	}

	return nil
}
