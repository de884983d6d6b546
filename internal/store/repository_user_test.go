package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T, driver string) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t, driver)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestUserRepository_FindUserByUsername(t *testing.T) {
	selectUser := regexp.QuoteMeta("SELECT username, password FROM users WHERE username = $1")

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t, DriverPostgres)
		mock.ExpectQuery(selectUser).
			WithArgs("admin").
			WillReturnRows(sqlmock.NewRows([]string{"username", "password"}).AddRow("admin", "$2a$10$hash"))

		user, err := repo.FindUserByUsername(context.Background(), "admin")
		require.NoError(t, err)
		assert.Equal(t, models.User{Username: "admin", PasswordHash: "$2a$10$hash"}, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t, DriverPostgres)
		mock.ExpectQuery(selectUser).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"username", "password"}))

		_, err := repo.FindUserByUsername(context.Background(), "ghost")
		require.ErrorIs(t, err, ErrUserNotFound)
		assert.NotErrorIs(t, err, ErrStorage)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t, DriverPostgres)
		mock.ExpectQuery(selectUser).WillReturnError(errors.New("connection reset"))

		_, err := repo.FindUserByUsername(context.Background(), "admin")
		require.ErrorIs(t, err, ErrStorage)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepository_InsertUser(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		query   string
		setup   func(mock sqlmock.Sqlmock, query string)
		want    bool
		wantErr error
	}{
		{
			name:   "postgres success",
			driver: DriverPostgres,
			query:  "INSERT INTO users (username,password) VALUES ($1,$2)",
			setup: func(mock sqlmock.Sqlmock, query string) {
				mock.ExpectExec(query).WithArgs("admin", "hash").WillReturnResult(sqlmock.NewResult(1, 1))
			},
			want: true,
		},
		{
			name:   "postgres unique violation",
			driver: DriverPostgres,
			query:  "INSERT INTO users (username,password) VALUES ($1,$2)",
			setup: func(mock sqlmock.Sqlmock, query string) {
				mock.ExpectExec(query).WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrLoginAlreadyExists,
		},
		{
			name:   "postgres other error",
			driver: DriverPostgres,
			query:  "INSERT INTO users (username,password) VALUES ($1,$2)",
			setup: func(mock sqlmock.Sqlmock, query string) {
				mock.ExpectExec(query).WillReturnError(pgError(pgerrcode.NotNullViolation))
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name:   "sqlite success",
			driver: DriverSQLite,
			query:  "INSERT INTO users (username,password) VALUES (?,?)",
			setup: func(mock sqlmock.Sqlmock, query string) {
				mock.ExpectExec(query).WithArgs("admin", "hash").WillReturnResult(sqlmock.NewResult(1, 1))
			},
			want: true,
		},
		{
			name:   "sqlite unique violation",
			driver: DriverSQLite,
			query:  "INSERT INTO users (username,password) VALUES (?,?)",
			setup: func(mock sqlmock.Sqlmock, query string) {
				mock.ExpectExec(query).WillReturnError(sqlite3.Error{
					Code:         sqlite3.ErrConstraint,
					ExtendedCode: sqlite3.ErrConstraintUnique,
				})
			},
			wantErr: ErrLoginAlreadyExists,
		},
		{
			name:   "network error",
			driver: DriverSQLite,
			query:  "INSERT INTO users (username,password) VALUES (?,?)",
			setup: func(mock sqlmock.Sqlmock, query string) {
				mock.ExpectExec(query).WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t, tt.driver)
			tt.setup(mock, regexp.QuoteMeta(tt.query))

			ok, err := repo.InsertUser(context.Background(), "admin", "hash")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
