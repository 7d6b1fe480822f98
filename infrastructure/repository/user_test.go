package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/toy-store-api/internal/domain"
)

func TestUserRepository_CreateUser(t *testing.T) {
	t.Run("Sucesso deve preencher id e datas", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Ana", "ana@example.com", "hash").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))

		repo := NewUserRepository(db)
		user, err := repo.CreateUser(context.Background(), &domain.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"})

		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.Equal(t, now, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Email duplicado deve devolver ErrUniqueViolation", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO users").WillReturnError(&pq.Error{Code: uniqueViolationCode})

		repo := NewUserRepository(db)
		_, err = repo.CreateUser(context.Background(), &domain.User{Name: "Ana", Email: "ana@example.com"})

		assert.ErrorIs(t, err, ErrUniqueViolation)
	})
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	columns := []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

	t.Run("Usuário encontrado", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(1, "Ana", "ana@example.com", "hash", now, now))

		repo := NewUserRepository(db)
		user, err := repo.GetUserByEmail(context.Background(), "ana@example.com")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("Usuário inexistente deve devolver nil sem erro", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(sqlmock.NewRows(columns))

		repo := NewUserRepository(db)
		user, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Erro de banco deve ser propagado", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		boom := errors.New("connection refused")
		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(boom)

		repo := NewUserRepository(db)
		_, err = repo.GetUserByID(context.Background(), 1)

		assert.ErrorIs(t, err, boom)
	})
}

func TestUserRepository_ListUserIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM users ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(3))

	repo := NewUserRepository(db)
	ids, err := repo.ListUserIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
