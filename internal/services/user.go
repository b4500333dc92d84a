package service

import (
	"context"
	"database/sql"
	goErrors "errors"
	"log/slog"
	"strings"
	"time"

	"github.com/frozz/storefront/internal/api/middleware"
	"github.com/frozz/storefront/internal/errors"
	models "github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/frozz/storefront/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	// Login folds the caller's anonymous session cart into the user cart when sessionID is set.
	Login(ctx context.Context, req *models.LoginRequest, sessionID string) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userService struct {
	repo      repository.UserRepository
	rateLimit repository.RateLimitRepository
	carts     CartService
	jwtKey    []byte
	tokenTTL  time.Duration
}

func NewUserService(repo repository.UserRepository, rateLimit repository.RateLimitRepository, carts CartService, jwtKey []byte, tokenTTL time.Duration) UserService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}

	return &userService{
		repo:      repo,
		rateLimit: rateLimit,
		carts:     carts,
		jwtKey:    jwtKey,
		tokenTTL:  tokenTTL,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)

	existingUser, _ := s.repo.GetUserByEmail(ctx, email)
	if existingUser != nil {
		return nil, errors.DuplicateEntryError("Email already registered")
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	clientType := req.ClientType
	if clientType == "" {
		clientType = models.ClientKindNatural
	}

	user := &models.User{
		Name:       utils.SanitizeText(req.Name),
		Email:      email,
		Phone:      utils.SanitizeText(req.Phone),
		ClientType: clientType,
		Password:   string(hashedPassword),
	}

	err = s.repo.CreateUser(ctx, user)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("Email already registered").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest, sessionID string) (*models.LoginResponse, error) {
	logger := middleware.LoggerFromContext(ctx)
	email := normalizeEmail(req.Email)

	// check rate limit
	attempt, err := s.rateLimit.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !attempt.Allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: int(attempt.RetryAfter.Seconds()),
		}, nil
	}

	// Retrieve the user from the DB and compare the passwords
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: attempt.Remaining,
		}, nil
	}

	tokenString, expiresAt, err := s.issueToken(user)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	if err := s.rateLimit.ResetLoginRateLimit(ctx, email); err != nil {
		logger.Warn("Failed to reset login attempts", slog.Any("error", err))
	}

	resp := &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(time.Until(expiresAt).Seconds()),
	}

	if sessionID != "" && s.carts != nil {
		merged, err := s.carts.MergeSessionCart(ctx, user.ID, sessionID)
		if err != nil {
			// the login itself succeeded
			logger.Error("Failed to merge session cart", slog.Any("error", err))
		}
		resp.MergedItems = merged
	}

	return resp, nil
}

func (s *userService) issueToken(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := &models.Claims{
		UserID:      user.ID,
		Email:       user.Email,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.ID.String(),
		},
	}

	// Generate Token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		if goErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("User not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}
