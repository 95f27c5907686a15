package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"directory/config"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func newTestPersistenceConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Persistence.QueryTimeout = time.Second
	cfg.Persistence.TxTimeout = 2 * time.Second

	return cfg
}

func newAna() *entity.User {
	return &entity.User{
		Name:         "Ana",
		Email:        "ana@x.com",
		PasswordHash: "$argon2id$hash",
		Telephones: []*entity.Telephone{
			{AreaCode: "11", Number: "98765432100"},
		},
	}
}

func TestUserRepository_FindByID_LoadsTelephones(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, newTestPersistenceConfig())

	userID := uuid.New()
	phoneID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(userID, "Ana", "ana@x.com", "hash", now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "telephones" WHERE "telephones"."user_id" = $1`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "area_code", "number"}).
			AddRow(phoneID, userID, "11", "98765432100"))

	user, err := repo.FindByID(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Ana", user.Name)
	require.Len(t, user.Telephones, 1)
	assert.Equal(t, "11", user.Telephones[0].AreaCode)
	assert.Equal(t, "98765432100", user.Telephones[0].Number)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, newTestPersistenceConfig())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByID(context.Background(), uuid.New())
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, newTestPersistenceConfig())

	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WithArgs("ana@x.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(userID, "Ana", "ana@x.com", "stored-hash", now, now))

	user, err := repo.FindByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "stored-hash", user.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, newTestPersistenceConfig())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByEmail(context.Background(), "ana@x.com")
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrUserNotFound))

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
}

func TestTransactionManager_CreateWithTelephones_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	cfg := newTestPersistenceConfig()
	txManager := NewTransactionManager(db, cfg)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "telephones"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := newAna()
	err := txManager.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.UserRepo().CreateWithTelephones(context.Background(), user)
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
	assert.Equal(t, "$argon2id$hash", user.PasswordHash)
	require.Len(t, user.Telephones, 1)
	assert.NotEqual(t, uuid.Nil, user.Telephones[0].ID)
	assert.Equal(t, user.ID, user.Telephones[0].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_DuplicateEmailRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db, newTestPersistenceConfig())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})
	mock.ExpectRollback()

	err := txManager.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.UserRepo().CreateWithTelephones(context.Background(), newAna())
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_TelephoneFailureRollsBackUser(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db, newTestPersistenceConfig())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "telephones"`)).
		WillReturnError(&pgconn.PgError{Code: pgCheckViolation, Message: "violates check constraint"})
	mock.ExpectRollback()

	err := txManager.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.UserRepo().CreateWithTelephones(context.Background(), newAna())
	})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
	assert.Contains(t, err.Error(), "check constraint")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_PanicRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db, newTestPersistenceConfig())

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, newTestPersistenceConfig())

	first, second := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" ORDER BY created_at ASC,id ASC`)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(first, "Ana", "ana@x.com", "h1", now, now).
			AddRow(second, "Bia", "bia@x.com", "h2", now.Add(time.Second), now.Add(time.Second)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "telephones" WHERE "telephones"."user_id" IN ($1,$2)`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "area_code", "number"}).
			AddRow(uuid.New(), first, "11", "98765432100").
			AddRow(uuid.New(), second, "21", "91234567800").
			AddRow(uuid.New(), second, "31", "99999999999"))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ana", users[0].Name)
	assert.Len(t, users[0].Telephones, 1)
	assert.Len(t, users[1].Telephones, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := withTimeout(context.Background(), 0)
	defer cancel()
	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)

	ctx, cancel = withTimeout(context.Background(), time.Second)
	defer cancel()
	deadline, hasDeadline := ctx.Deadline()
	assert.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
}
