package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frozz/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

const redisDialTimeout = 5 * time.Second

// NewRedisClient opens the shared client used by the cache, the session
// store and the login limiter. The connection is verified before returning.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	rc := cfg.RedisConnect

	opt, err := redis.ParseURL(rc.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	opt.DB = rc.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s:%s: %w", rc.Host, rc.Port, err)
	}

	slog.Info("Connected to Redis", slog.String("host", rc.Host), slog.String("port", rc.Port), slog.Int("db", rc.DB))

	return client, nil
}
