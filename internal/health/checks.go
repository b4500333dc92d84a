package health

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/frozz/storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/redis/go-redis/v9"
)

const (
	componentName    = "storefront"
	componentVersion = "1.0.0"
)

// Endpoints are the live connections the probes reuse.
type Endpoints struct {
	DB          *sql.DB
	RedisClient *redis.Client
}

var errNotConfigured = errors.New("not configured")

// NewHealthHandler reports "Unavailable" when Postgres or Redis fail and
// "Partially Available" when only an outbound notifier is missing.
func NewHealthHandler(cfg *config.Config, endpoints Endpoints) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{Name: componentName, Version: componentVersion}),
		health.WithSystemInfo(),
		health.WithChecks(
			postgresCheck(endpoints.DB, cfg.Database.Host),
			redisCheck(endpoints.RedisClient, cfg.RedisConnect.Host),
			configuredCheck("telegram", cfg.Telegram.Enabled()),
			configuredCheck("sendgrid", cfg.SendGrid.APIKey != ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}

	return h, nil
}

func postgresCheck(db *sql.DB, host string) health.Config {
	return health.Config{
		Name:    "database",
		Timeout: 3 * time.Second,
		Check: func(ctx context.Context) error {
			if db == nil {
				return fmt.Errorf("postgres: %w", errNotConfigured)
			}
			if err := db.PingContext(ctx); err != nil {
				return fmt.Errorf("postgres %s: %w", host, err)
			}
			return nil
		},
	}
}

func redisCheck(client *redis.Client, host string) health.Config {
	return health.Config{
		Name:    "redis",
		Timeout: 2 * time.Second,
		Check: func(ctx context.Context) error {
			if client == nil {
				return fmt.Errorf("redis: %w", errNotConfigured)
			}
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis %s: %w", host, err)
			}
			return nil
		},
	}
}

// configuredCheck never blocks a rollout, it only flags a disabled notifier.
func configuredCheck(name string, ok bool) health.Config {
	return health.Config{
		Name:      name,
		Timeout:   time.Second,
		SkipOnErr: true,
		Check: func(context.Context) error {
			if !ok {
				return fmt.Errorf("%s: %w", name, errNotConfigured)
			}
			return nil
		},
	}
}
