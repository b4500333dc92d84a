package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/frozz/storefront/internal/cache"
	"github.com/frozz/storefront/internal/config"
	"github.com/frozz/storefront/internal/models"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionTTL = 2 * time.Hour

func setupSessionRepoTest(t *testing.T) (repository.SessionRepository, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	c := cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: time.Minute})

	return repository.NewSessionRepo(c, sessionTTL), mock
}

func TestSessionRepository_GetItems(t *testing.T) {
	ctx := t.Context()
	key := "session:s1:cart"

	t.Run("Success - Existing items refresh the ttl", func(t *testing.T) {
		repo, mock := setupSessionRepoTest(t)

		mock.ExpectGet(key).SetVal(`{"2":4}`)
		mock.ExpectExpire(key, sessionTTL).SetVal(true)

		items, err := repo.GetItems(ctx, "s1", cache.SessionCartPart)

		require.NoError(t, err)
		assert.Equal(t, 4, items.Quantity(2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Unknown session reads as empty", func(t *testing.T) {
		repo, mock := setupSessionRepoTest(t)

		mock.ExpectGet(key).SetErr(redis.Nil)

		items, err := repo.GetItems(ctx, "s1", cache.SessionCartPart)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No session id skips redis", func(t *testing.T) {
		repo, mock := setupSessionRepoTest(t)

		items, err := repo.GetItems(ctx, "", cache.SessionCartPart)

		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis down", func(t *testing.T) {
		repo, mock := setupSessionRepoTest(t)
		redisErr := errors.New("connection refused")

		mock.ExpectGet(key).SetErr(redisErr)

		items, err := repo.GetItems(ctx, "s1", cache.SessionCartPart)

		assert.ErrorIs(t, err, redisErr)
		assert.Nil(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_SaveAndClear(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Save uses the session ttl", func(t *testing.T) {
		repo, mock := setupSessionRepoTest(t)

		mock.ExpectSet("session:s1:quote", []byte(`{"7":1}`), sessionTTL).SetVal("OK")

		require.NoError(t, repo.SaveItems(ctx, "s1", cache.SessionQuotePart, models.CartItems{"7": 1}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Clear removes every part", func(t *testing.T) {
		repo, mock := setupSessionRepoTest(t)

		mock.ExpectDel("session:s1:cart", "session:s1:quote").SetVal(2)

		require.NoError(t, repo.Clear(ctx, "s1", cache.SessionCartPart, cache.SessionQuotePart))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRateLimitRepository_Reset(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := repository.NewRateLimitRepo(client, &config.Config{})

	mock.ExpectDel("login_attempts:ana@example.com").SetVal(1)

	require.NoError(t, repo.ResetLoginRateLimit(t.Context(), "ana@example.com"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
