package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

// userRepository is the relational implementation of [UserRepository].
// It handles credential lookup and insertion against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating relational user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByUsername retrieves the user whose username equals the given one
// byte for byte.
//
// Error handling:
//   - no matching row → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.Username, &user.PasswordHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// InsertUser stores a new credential record.
//
// Error handling:
//   - unique constraint violation on username → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) InsertUser(ctx context.Context, username, passwordHash string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, username, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.InsertUser").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.isUniqueViolation(ctx, err) {
			return false, ErrLoginAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.InsertUser").Msg("error inserting user")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.InsertUser").Msg("error reading affected rows")
		return false, fmt.Errorf("%w: %w", ErrReadingResult, err)
	}

	return affected > 0, nil
}
