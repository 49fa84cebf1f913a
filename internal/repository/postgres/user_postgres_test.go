package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "agendaapi/internal/errors"
	"agendaapi/internal/model"
)

var userCols = []string{"id", "name", "email", "password", "is_active"}

func newUserRepo(t *testing.T) (*UserPostgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserPostgres(db), mock
}

func TestUserPostgres_FindAll(t *testing.T) {
	repo, mock := newUserRepo(t)
	ctx := context.Background()

	t.Run("live rows in id order", func(t *testing.T) {
		rows := sqlmock.NewRows(userCols).
			AddRow(int64(1), "Ana", "ana@example.com", "h1", true).
			AddRow(int64(3), "Luis", "luis@example.com", "h3", true)
		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, name, email, password, is_active FROM users WHERE is_active = TRUE ORDER BY id")).
			WillReturnRows(rows)

		users, err := repo.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, int64(1), users[0].ID)
		assert.Equal(t, "luis@example.com", users[1].Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE is_active = TRUE").
			WillReturnRows(sqlmock.NewRows(userCols))

		users, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("conn reset"))

		users, err := repo.FindAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, users)
		assert.True(t, ierr.Is(err, ierr.ErrDatabase))
	})
}

func TestUserPostgres_FindOne(t *testing.T) {
	repo, mock := newUserRepo(t)
	ctx := context.Background()

	t.Run("returns soft-deleted row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, name, email, password, is_active FROM users WHERE id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(int64(7), "Ana", "ana@example.com", "h", false))

		u, err := repo.FindOne(ctx, 7)

		require.NoError(t, err)
		assert.False(t, u.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = ").
			WithArgs(int64(8)).
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindOne(ctx, 8)

		assert.Nil(t, u)
		assert.True(t, ierr.IsNotFound(err))
	})
}

func TestUserPostgres_Insert(t *testing.T) {
	repo, mock := newUserRepo(t)
	ctx := context.Background()
	const q = "INSERT INTO users (name, email, password, is_active) VALUES ($1, $2, $3, TRUE) RETURNING id, name, email, password, is_active"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(q)).
			WithArgs("Ana", "ana@example.com", "hash").
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(int64(1), "Ana", "ana@example.com", "hash", true))

		u, err := repo.Insert(ctx, model.UserCreate{Name: "Ana", Email: "ana@example.com", Password: "hash"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
		assert.True(t, u.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(q)).
			WithArgs("Ana", "ana@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		u, err := repo.Insert(ctx, model.UserCreate{Name: "Ana", Email: "ana@example.com", Password: "hash"})

		assert.Nil(t, u)
		assert.True(t, ierr.IsAlreadyExists(err))
	})
}

func TestUserPostgres_Update(t *testing.T) {
	repo, mock := newUserRepo(t)
	ctx := context.Background()

	t.Run("only present fields are written", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(
			"UPDATE users SET name = $1, password = $2 WHERE id = $3 AND is_active = TRUE RETURNING id, name, email, password, is_active")).
			WithArgs("X", "newhash", int64(5)).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(int64(5), "X", "ana@example.com", "newhash", true))

		u, err := repo.Update(ctx, 5, model.UserPatch{Name: model.Some("X"), Password: model.Some("newhash")})

		require.NoError(t, err)
		assert.Equal(t, "X", u.Name)
		assert.Equal(t, "ana@example.com", u.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing or deleted row", func(t *testing.T) {
		mock.ExpectQuery("UPDATE users SET name = ").
			WithArgs("X", int64(999)).
			WillReturnError(sql.ErrNoRows)

		u, err := repo.Update(ctx, 999, model.UserPatch{Name: model.Some("X")})

		assert.Nil(t, u)
		assert.True(t, ierr.IsNotFound(err))
	})

	t.Run("no fields reads the live row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, name, email, password, is_active FROM users WHERE id = $1 AND is_active = TRUE")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(int64(5), "Ana", "ana@example.com", "h", true))

		u, err := repo.Update(ctx, 5, model.UserPatch{})

		require.NoError(t, err)
		assert.Equal(t, "Ana", u.Name)
	})
}

func TestUserPostgres_SoftDelete(t *testing.T) {
	repo, mock := newUserRepo(t)
	ctx := context.Background()
	const q = "UPDATE users SET is_active = FALSE WHERE id = $1 AND is_active = TRUE"

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(q)).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SoftDelete(ctx, 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(q)).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SoftDelete(ctx, 4)

		assert.True(t, ierr.IsNotFound(err))
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(q)).
			WithArgs(int64(4)).
			WillReturnError(errors.New("conn reset"))

		err := repo.SoftDelete(ctx, 4)

		assert.Error(t, err)
		assert.False(t, ierr.IsNotFound(err))
	})
}
