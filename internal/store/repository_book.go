package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

// bookRepository is the relational implementation of [BookRepository]. Book
// identifiers are the decimal text of the table's integer primary key.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating relational book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// ListAll returns every stored book ordered by id. An empty table yields an
// empty, non-nil slice.
func (r *bookRepository) ListAll(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllBooksQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListAll").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListAll").Msg("error selecting books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var (
			id   int64
			book models.Book
		)
		if err = rows.Scan(&id, &book.Title, &book.Author, &book.Year); err != nil {
			log.Err(err).Str("func", "*bookRepository.ListAll").Msg("error scanning book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		book.ID = strconv.FormatInt(id, 10)
		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.ListAll").Msg("error iterating book rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

// Create inserts a new book; the identifier is assigned by the database and
// any ID set on book is ignored.
func (r *bookRepository) Create(ctx context.Context, book models.Book) (bool, error) {
	query, args, err := buildInsertBookQuery(r.db.builder, book)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookRepository.Create").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*bookRepository.Create", query, args)
}

// Update replaces title, author and year of the book with book.ID. It
// reports false when no row matched.
func (r *bookRepository) Update(ctx context.Context, book models.Book) (bool, error) {
	id, err := parseBookID(book.ID)
	if err != nil {
		return false, err
	}

	query, args, err := buildUpdateBookQuery(r.db.builder, id, book)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookRepository.Update").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*bookRepository.Update", query, args)
}

// Delete removes the book with the given id. It reports false when no row
// matched.
func (r *bookRepository) Delete(ctx context.Context, id string) (bool, error) {
	bookID, err := parseBookID(id)
	if err != nil {
		return false, err
	}

	query, args, err := buildDeleteBookQuery(r.db.builder, bookID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookRepository.Delete").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*bookRepository.Delete", query, args)
}

// exec runs a DML statement and reports whether it affected at least one row.
func (r *bookRepository) exec(ctx context.Context, fn, query string, args []any) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error reading affected rows")
		return false, fmt.Errorf("%w: %w", ErrReadingResult, err)
	}

	return affected > 0, nil
}

// parseBookID converts a relational book identifier to its integer key.
func parseBookID(id string) (int64, error) {
	bookID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBookID, id)
	}

	return bookID, nil
}
