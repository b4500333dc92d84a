package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	models "github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/utils"
	"github.com/google/uuid"
)

// UserRepository covers customer and staff accounts in one table.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListClients(ctx context.Context, search string, page, pageSize int) ([]*models.User, int, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `id, email, password, name, phone, client_type, is_staff, is_superuser, created_at, updated_at`

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}

	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Name, &user.Phone, &user.ClientType,
		&user.IsStaff, &user.IsSuperuser, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users(email, password, name, phone, client_type, is_staff, is_superuser, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	if err := r.DB.QueryRowContext(dbCtx, query, user.Email, user.Password, user.Name, user.Phone, user.ClientType, user.IsStaff, user.IsSuperuser).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserBy(ctx, "email", email)
}

func (r *userRepository) GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserBy(ctx, "id", id)
}

// getUserBy passes sql.ErrNoRows through unwrapped; column is never user input.
func (r *userRepository) getUserBy(ctx context.Context, column string, value any) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.DB.QueryRowContext(dbCtx, `SELECT `+userColumns+` FROM users WHERE `+column+` = $1`, value))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, sql.ErrNoRows
	case err != nil:
		return nil, fmt.Errorf("select user by %s: %w", column, err)
	}

	return user, nil
}

// ListClients returns non-staff accounts, newest first.
func (r *userRepository) ListClients(ctx context.Context, search string, page, pageSize int) ([]*models.User, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where := ` WHERE is_staff = FALSE`
	args := []any{}

	if search = strings.TrimSpace(search); search != "" {
		args = append(args, "%"+search+"%")
		where += ` AND (name ILIKE $1 OR email ILIKE $1)`
	}

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM users` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(dbCtx, query, append(args, pageSize, (page-1)*pageSize)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var users []*models.User

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password of %s: %w", id, err)
	}

	return expectOneRow(result)
}
