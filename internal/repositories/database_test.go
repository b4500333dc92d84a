package repository_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/frozz/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewFromDB(db)

	assert.NotNil(t, repo.Users)
	assert.NotNil(t, repo.Products)
	assert.NotNil(t, repo.Quotations)
	assert.NotNil(t, repo.Notifications)
}

func TestMigrate(t *testing.T) {
	ctx := t.Context()
	createSQL := regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS schema_migrations`)
	existsSQL := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`)

	t.Run("Success - Pending migration applied", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(createSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(existsSQL).
			WithArgs("migrations/0001_init.up.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS quotations`)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO schema_migrations (version) VALUES ($1)`)).
			WithArgs("migrations/0001_init.up.sql").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repository.NewFromDB(db).Migrate(ctx))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Applied migration skipped", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(createSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(existsSQL).
			WithArgs("migrations/0001_init.up.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		require.NoError(t, repository.NewFromDB(db).Migrate(ctx))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
