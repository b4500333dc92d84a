package service_test

import (
	"context"
	"database/sql"
	"testing"

	appErrors "github.com/frozz/storefront/internal/errors"
	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/repositories/mocks"
	service "github.com/frozz/storefront/internal/services"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestClientService_CreateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Generated password", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		clientService := service.NewClientService(repo)

		var stored *models.User
		repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.User)
		}).Return(nil).Once()

		created, err := clientService.CreateClient(ctx, &models.CreateClientRequest{
			Name: "Restaurante Sazón", Email: "Compras@Sazon.co", ClientType: models.ClientKindEmpresa,
		})

		require.NoError(t, err)
		assert.Len(t, created.Password, 12)
		assert.Equal(t, "compras@sazon.co", created.User.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(created.Password)))
		repo.AssertExpectations(t)
	})

	t.Run("Success - Given password", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		clientService := service.NewClientService(repo)

		repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

		created, err := clientService.CreateClient(ctx, &models.CreateClientRequest{
			Name: "Juan", Email: "juan@example.com", ClientType: models.ClientKindNatural, Password: "secreto123",
		})

		require.NoError(t, err)
		assert.Equal(t, "secreto123", created.Password)
	})

	t.Run("Failure - Email taken", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		clientService := service.NewClientService(repo)

		repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(&pq.Error{Code: "23505"}).Once()

		created, err := clientService.CreateClient(ctx, &models.CreateClientRequest{
			Name: "Juan", Email: "juan@example.com", ClientType: models.ClientKindNatural,
		})

		assert.Nil(t, created)
		assertAppErrorCode(t, err, appErrors.ErrCodeDuplicateEntry)
	})
}

func TestClientService_RegeneratePassword(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		clientService := service.NewClientService(repo)

		repo.On("GetUserById", ctx, id).Return(&models.User{ID: id, Email: "c@example.com"}, nil).Once()
		repo.On("UpdatePassword", ctx, id, mock.AnythingOfType("string")).Return(nil).Once()

		created, err := clientService.RegeneratePassword(ctx, id)

		require.NoError(t, err)
		assert.NotEmpty(t, created.Password)
		repo.AssertExpectations(t)
	})

	t.Run("Failure - Staff account", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		clientService := service.NewClientService(repo)

		repo.On("GetUserById", ctx, id).Return(&models.User{ID: id, IsStaff: true}, nil).Once()

		_, err := clientService.RegeneratePassword(ctx, id)

		assertAppErrorCode(t, err, appErrors.ErrCodeForbidden)
		repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown client", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		clientService := service.NewClientService(repo)

		repo.On("GetUserById", ctx, id).Return(nil, sql.ErrNoRows).Once()

		_, err := clientService.RegeneratePassword(ctx, id)

		assertAppErrorCode(t, err, appErrors.ErrCodeNotFound)
	})
}
