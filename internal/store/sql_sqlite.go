package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens a sqlite3 database for dsn and pings it. The dsn is
// passed to the driver untouched, so both file paths and ":memory:" work.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(DriverSQLite, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	// one connection keeps an in-memory database alive for the pool's lifetime
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, DriverSQLite, log), nil
}
