package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Shattajit/Mini-CRM/internal/filters"
	"github.com/Shattajit/Mini-CRM/internal/models"
	"github.com/Shattajit/Mini-CRM/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newPostgresMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	return gdb, mock
}

func TestPostgres_ReminderListQuery(t *testing.T) {
	gdb, mock := newPostgresMock(t)
	repo := repository.NewGormReminderRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "reminders" WHERE is_completed = \$1 ORDER BY due_date ASC`).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "due_date", "is_completed"}))

	got, err := repo.List(context.Background(), filters.ReminderFilter{Completed: ptr(false)}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UniqueViolationIsDuplicate(t *testing.T) {
	gdb, mock := newPostgresMock(t)
	repo := repository.NewGormUserRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{Email: "a@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ForeignKeyViolationOnDelete(t *testing.T) {
	gdb, mock := newPostgresMock(t)
	repo := repository.NewGormClientRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "clients" WHERE id = \$1`).
		WithArgs("c1").
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "update or delete violates foreign key constraint"})
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "c1")
	assert.ErrorIs(t, err, repository.ErrStillReferenced)
	assert.NoError(t, mock.ExpectationsWereMet())
}
