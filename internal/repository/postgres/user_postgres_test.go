package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var userColNames = []string{"id", "username", "email", "password", "created_at", "updated_at"}

func userRow(u *model.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColNames).
		AddRow(u.ID, u.Username, u.Email, u.Password, u.CreatedAt, u.UpdatedAt)
}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	u := &model.User{ID: 1, Username: "asha", Email: "asha@example.com", Password: "hash", CreatedAt: now, UpdatedAt: now}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Username, u.Email, u.Password).
			WillReturnRows(userRow(u))

		result, err := repo.Create(ctx, u)

		assert.NoError(t, err)
		assert.Equal(t, "asha", result.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_username"})

		result, err := repo.Create(ctx, u)

		assert.Nil(t, result)
		var dup *repository.DuplicateError
		assert.True(t, errors.As(err, &dup))
		assert.Equal(t, "username", dup.Field)
	})
}

func TestUserPostgres_FindByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ?").
			WithArgs("asha").
			WillReturnRows(userRow(&model.User{ID: 1, Username: "asha"}))

		u, err := repo.FindByUsername(ctx, "asha")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ?").
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindByUsername(ctx, "ghost")

		assert.Nil(t, u)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestUserPostgres_SetPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("row updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET password").
			WithArgs("newhash", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.SetPassword(ctx, 1, "newhash")

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("row missing", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET password").
			WithArgs("newhash", int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.SetPassword(ctx, 404, "newhash")

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUserPostgres_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(ctx, 1)

	assert.NoError(t, err)
	assert.True(t, ok)
}
