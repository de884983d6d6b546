package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB wraps the process-wide *sql.DB pool together with the query builder and
// error classifier matching its driver. One DB is shared by the book and
// user repositories.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	schema             []string
	logger             *logger.Logger
}

// newDB assembles a DB for the given driver around an already opened pool.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		logger: log,
	}

	switch driver {
	case DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
		db.schema = sqliteSchema
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
		db.schema = postgresSchema
	}

	return db
}

// NewConnectDB opens a pool for the configured driver, pings it and creates
// the tables when they are missing.
func NewConnectDB(ctx context.Context, driver, dsn string, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch driver {
	case DriverPostgres:
		db, err = NewConnectPostgres(ctx, dsn, log)
	case DriverSQLite:
		db, err = NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: driver %q", ErrUnknownBackend, driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema runs the idempotent CREATE TABLE IF NOT EXISTS statements of
// the driver's dialect.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range db.schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.logger.Err(err).Str("func", "*DB.EnsureSchema").Msg("error creating database schema")
			return fmt.Errorf("%w: %w", ErrBootstrappingSchema, err)
		}
	}

	db.logger.Debug().Str("func", "*DB.EnsureSchema").Msg("database schema is ready")
	return nil
}

// isUniqueViolation logs the classification of a failed statement and reports
// whether it was a unique constraint violation.
func (db *DB) isUniqueViolation(ctx context.Context, err error) bool {
	class := db.errorClassificator.Classify(err)
	logger.FromContext(ctx).Debug().Str("classification", class.String()).Msg("statement failed")

	return class == UniqueViolation
}
