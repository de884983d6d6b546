package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userDocument is the stored shape of a user in the "users" collection.
type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
}

// documentUserRepository is the document store implementation of
// [UserRepository]. Uniqueness is enforced by a unique index on username
// that is created before the first insert.
type documentUserRepository struct {
	logger     *logger.Logger
	collection mongoCollection

	// ensureIndex creates the unique username index.
	ensureIndex func(ctx context.Context) error
	indexMu     sync.Mutex
	indexReady  bool
}

// NewDocumentUserRepository constructs a [UserRepository] over the "users"
// collection of db.
func NewDocumentUserRepository(db *MongoDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating document user repository")

	collection := db.Collection(usersCollection)
	return &documentUserRepository{
		collection: collection,
		logger:     logger,
		ensureIndex: func(ctx context.Context) error {
			_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("username_unique"),
			})
			return err
		},
	}
}

// FindUserByUsername retrieves the user whose username equals the given one
// byte for byte. An absent user yields [ErrUserNotFound].
func (r *documentUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, ErrUserNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*documentUserRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingCommand, err)
	}

	return models.User{
		Username:     doc.Username,
		PasswordHash: doc.Password,
	}, nil
}

// InsertUser stores a new credential document. A duplicate key error from
// the unique index yields [ErrLoginAlreadyExists].
func (r *documentUserRepository) InsertUser(ctx context.Context, username, passwordHash string) (bool, error) {
	log := logger.FromContext(ctx)

	if err := r.prepareIndex(ctx); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Err(err).Str("func", "*documentUserRepository.InsertUser").
				Str("collection", usersCollection).
				Msg("error creating username index: remove duplicate usernames from the collection")
			return false, fmt.Errorf("%w: %w", ErrDuplicateUsernames, err)
		}
		log.Err(err).Str("func", "*documentUserRepository.InsertUser").Msg("error creating username index")
		return false, fmt.Errorf("%w: %w", ErrBootstrappingSchema, err)
	}

	result, err := r.collection.InsertOne(ctx, userDocument{
		Username: username,
		Password: passwordHash,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, ErrLoginAlreadyExists
		}
		log.Err(err).Str("func", "*documentUserRepository.InsertUser").Msg("error inserting user")
		return false, fmt.Errorf("%w: %w", ErrExecutingCommand, err)
	}

	return result.InsertedID != nil, nil
}

// prepareIndex runs ensureIndex until it succeeds once.
func (r *documentUserRepository) prepareIndex(ctx context.Context) error {
	r.indexMu.Lock()
	defer r.indexMu.Unlock()

	if r.indexReady || r.ensureIndex == nil {
		return nil
	}
	if err := r.ensureIndex(ctx); err != nil {
		return err
	}
	r.indexReady = true

	return nil
}
