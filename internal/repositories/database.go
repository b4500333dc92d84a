package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/frozz/storefront/internal/config"
	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

type Repository struct {
	DB *sql.DB

	Users         UserRepository
	Categories    CategoryRepository
	Products      ProductRepository
	Carts         CartRepository
	Quotations    QuotationRepository
	Addresses     AddressRepository
	Favorites     FavoriteRepository
	Rentals       RentalRepository
	Notifications NotificationRepository
}

// New opens an instrumented postgres pool and wires every sql-backed repository.
func New(cfg *config.Config) (*Repository, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(), otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewFromDB(db), nil
}

func NewFromDB(db *sql.DB) *Repository {
	return &Repository{
		DB:            db,
		Users:         NewUserRepo(db),
		Categories:    NewCategoryRepo(db),
		Products:      NewProductRepo(db),
		Carts:         NewCartRepo(db),
		Quotations:    NewQuotationRepo(db),
		Addresses:     NewAddressRepo(db),
		Favorites:     NewFavoriteRepo(db),
		Rentals:       NewRentalRepo(db),
		Notifications: NewNotificationRepo(db),
	}
}

// Migrate applies every embedded migration not yet recorded in schema_migrations,
// in file name order, each inside its own transaction.
func (p *Repository) Migrate(ctx context.Context) error {
	if _, err := p.DB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version VARCHAR(255) PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW())`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		var applied bool

		if err := p.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name).Scan(&applied); err != nil {
			return fmt.Errorf("checking migration %s: %w", name, err)
		}

		if applied {
			continue
		}

		script, err := migrationFiles.ReadFile(name)
		if err != nil {
			return err
		}

		if err := p.applyMigration(ctx, name, string(script)); err != nil {
			return err
		}

		slog.Info("Applied migration", slog.String("version", name))
	}

	return nil
}

func (p *Repository) applyMigration(ctx context.Context, name, script string) error {
	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %s: %w", name, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("applying migration %s: %w", name, err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
		return fmt.Errorf("recording migration %s: %w", name, err)
	}

	return tx.Commit()
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
