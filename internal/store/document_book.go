package store

import (
	"context"
	"fmt"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// bookDocument is the stored shape of a book in the "books" collection.
type bookDocument struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Author string             `bson:"author"`
	Year   int                `bson:"year"`
}

func (d bookDocument) toModel() models.Book {
	return models.Book{
		ID:     d.ID.Hex(),
		Title:  d.Title,
		Author: d.Author,
		Year:   d.Year,
	}
}

// documentBookRepository is the document store implementation of
// [BookRepository]. Book identifiers are hex encoded ObjectIDs.
type documentBookRepository struct {
	logger     *logger.Logger
	collection mongoCollection
}

// NewDocumentBookRepository constructs a [BookRepository] over the "books"
// collection of db.
func NewDocumentBookRepository(db *MongoDB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating document book repository")
	return &documentBookRepository{
		collection: db.Collection(booksCollection),
		logger:     logger,
	}
}

// ListAll returns every stored book in insertion order.
func (r *documentBookRepository) ListAll(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		log.Err(err).Str("func", "*documentBookRepository.ListAll").Msg("error finding books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingCommand, err)
	}
	defer cursor.Close(ctx)

	var docs []bookDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*documentBookRepository.ListAll").Msg("error decoding books")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	books := make([]models.Book, 0, len(docs))
	for _, doc := range docs {
		books = append(books, doc.toModel())
	}

	return books, nil
}

// Create inserts a new book document; the ObjectID is generated by the
// driver and any ID set on book is ignored.
func (r *documentBookRepository) Create(ctx context.Context, book models.Book) (bool, error) {
	doc := bookDocument{
		Title:  book.Title,
		Author: book.Author,
		Year:   book.Year,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentBookRepository.Create").Msg("error inserting book")
		return false, fmt.Errorf("%w: %w", ErrExecutingCommand, err)
	}

	return result.InsertedID != nil, nil
}

// Update replaces title, author and year of the book with book.ID. A match
// counts as success even when the stored values were already equal.
func (r *documentBookRepository) Update(ctx context.Context, book models.Book) (bool, error) {
	id, err := parseObjectID(book.ID)
	if err != nil {
		return false, err
	}

	update := bson.M{"$set": bson.M{
		"title":  book.Title,
		"author": book.Author,
		"year":   book.Year,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentBookRepository.Update").Msg("error updating book")
		return false, fmt.Errorf("%w: %w", ErrExecutingCommand, err)
	}

	return result.MatchedCount > 0, nil
}

// Delete removes the book with the given id.
func (r *documentBookRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return false, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentBookRepository.Delete").Msg("error deleting book")
		return false, fmt.Errorf("%w: %w", ErrExecutingCommand, err)
	}

	return result.DeletedCount > 0, nil
}

// parseObjectID converts a document book identifier to its ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidBookID, id)
	}

	return objectID, nil
}
