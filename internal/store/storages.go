package store

import (
	"context"
	"fmt"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/config"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
)

// Storages aggregates the repositories of one physical backend. Both
// repositories always share the connection created by [NewStorages].
type Storages struct {
	BookRepository BookRepository
	UserRepository UserRepository

	backend config.Backend
	ping    func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// NewStorages connects to the backend chosen by cfg.Backend and builds both
// repositories on top of it. The backend is decided here and nowhere else.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Stringer("backend", cfg.Backend).Msg("selecting storage backend")

	switch cfg.Backend {
	case config.BackendDocument:
		mongoDB, err := NewConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, log)
		if err != nil {
			return nil, err
		}

		return &Storages{
			BookRepository: NewDocumentBookRepository(mongoDB, log),
			UserRepository: NewDocumentUserRepository(mongoDB, log),
			backend:        cfg.Backend,
			ping:           mongoDB.Ping,
			close:          mongoDB.Close,
		}, nil

	case config.BackendRelational:
		db, err := NewConnectDB(ctx, cfg.DB.Driver, cfg.DB.DSN, log)
		if err != nil {
			return nil, err
		}

		return newRelationalStorages(db, log), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// newRelationalStorages builds the relational repositories over an open DB.
func newRelationalStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		BookRepository: NewBookRepository(db, log),
		UserRepository: NewUserRepository(db, log),
		backend:        config.BackendRelational,
		ping: func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return fmt.Errorf("%w: %w", ErrConnecting, err)
			}
			return nil
		},
		close: func(context.Context) error {
			return db.Close()
		},
	}
}

// Backend reports which backend the repositories use.
func (s *Storages) Backend() config.Backend {
	return s.backend
}

// Ping checks that the backend is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	return s.close(ctx)
}
