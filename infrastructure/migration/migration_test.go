package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/toy-store-api/infrastructure/database/postgres"
)

func TestApply(t *testing.T) {
	t.Run("Executa todos os scripts em ordem", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS customers").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS sales").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS top_customers_snapshots").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		require.NoError(t, Apply(context.Background(), postgres.Wrap(db)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Interrompe no primeiro erro", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("permission denied"))
		mock.ExpectRollback()

		err = Apply(context.Background(), postgres.Wrap(db))
		assert.ErrorContains(t, err, "0001_users.sql")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
