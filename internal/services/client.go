package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	goErrors "errors"
	"log/slog"
	"math/big"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/frozz/storefront/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	generatedPasswordLength = 12
	passwordAlphabet        = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// ClientService is the staff client manager: it creates accounts on behalf
// of customers and hands the plain password back exactly once.
type ClientService interface {
	ListClients(ctx context.Context, search string, page, pageSize int) ([]*models.User, int, error)
	CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.CreatedClient, error)
	RegeneratePassword(ctx context.Context, id uuid.UUID) (*models.CreatedClient, error)
}

type clientService struct {
	repo repository.UserRepository
}

func NewClientService(repo repository.UserRepository) ClientService {
	return &clientService{repo: repo}
}

func generatePassword() (string, error) {
	out := make([]byte, generatedPasswordLength)
	limit := big.NewInt(int64(len(passwordAlphabet)))

	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}

	return string(out), nil
}

func (s *clientService) ListClients(ctx context.Context, search string, page, pageSize int) ([]*models.User, int, error) {
	clients, total, err := s.repo.ListClients(ctx, search, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list clients").WithError(err)
	}

	return clients, total, nil
}

func (s *clientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.CreatedClient, error) {
	logger := middleware.LoggerFromContext(ctx)

	password := req.Password
	if password == "" {
		generated, err := generatePassword()
		if err != nil {
			return nil, errors.InternalError("Failed to generate password").WithError(err)
		}
		password = generated
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Name:       utils.SanitizeText(req.Name),
		Email:      normalizeEmail(req.Email),
		Phone:      utils.SanitizeText(req.Phone),
		ClientType: req.ClientType,
		Password:   string(hashed),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("Email already registered").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create client").WithError(err)
	}

	logger.Info("Client account created", slog.String("userId", user.ID.String()))

	return &models.CreatedClient{User: user, Password: password}, nil
}

func (s *clientService) RegeneratePassword(ctx context.Context, id uuid.UUID) (*models.CreatedClient, error) {
	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		if goErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Client not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch client").WithError(err)
	}

	if user.IsStaff || user.IsSuperuser {
		return nil, errors.ForbiddenError("Staff passwords cannot be reset from the client manager")
	}

	password, err := generatePassword()
	if err != nil {
		return nil, errors.InternalError("Failed to generate password").WithError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		return nil, errors.DatabaseError("Failed to update password").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Client password regenerated", slog.String("userId", id.String()))

	return &models.CreatedClient{User: user, Password: password}, nil
}
