package store

import (
	"context"
	"fmt"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	booksCollection = "books"
	usersCollection = "users"
)

// mongoCollection is the subset of *mongo.Collection used by the document
// repositories.
type mongoCollection interface {
	Find(ctx context.Context, filter any, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter any, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document any, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter any, update any, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter any, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// MongoDB holds the process-wide client and the database shared by the
// document repositories.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo constructs a client for uri. The driver connects in the
// background, so an unreachable server surfaces on the first operation and
// not here.
func NewConnectMongo(ctx context.Context, uri, database string, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating document store client")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", database).Msg("document store client created")

	return &MongoDB{
		client:   client,
		database: client.Database(database),
		logger:   log,
	}, nil
}

// Collection returns the named collection of the configured database.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Ping verifies that the primary is reachable.
func (m *MongoDB) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
