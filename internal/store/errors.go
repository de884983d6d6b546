package store

import (
	"errors"
	"fmt"
)

// ErrStorage is the root of every backend failure returned by the
// repositories. Callers match it with [errors.Is] to tell a storage outage
// from a domain outcome.
var ErrStorage = errors.New("storage error")

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to insert a new user
	// fails because the backend unique constraint on username was violated.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when no user matches the requested username.
	ErrUserNotFound = errors.New("no user was found")

	// ErrInvalidBookID is returned when a book identifier cannot be parsed as
	// the backend's native key type (an integer for the relational store, an
	// ObjectID for the document store).
	ErrInvalidBookID = errors.New("invalid book id")

	// ErrUnknownBackend is returned by [NewStorages] for a backend it cannot
	// construct.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level backend operation errors. All of them wrap [ErrStorage].
var (
	// ErrConnecting is returned when the backend connection cannot be
	// opened or verified.
	ErrConnecting = fmt.Errorf("%w: error connecting to database", ErrStorage)

	// ErrBootstrappingSchema is returned when the idempotent schema creation
	// fails on startup.
	ErrBootstrappingSchema = fmt.Errorf("%w: error creating database schema", ErrStorage)

	// ErrDuplicateUsernames is returned when the unique username index cannot
	// be built because the users collection already holds duplicates.
	ErrDuplicateUsernames = fmt.Errorf("%w: users collection holds duplicate usernames", ErrBootstrappingSchema)

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = fmt.Errorf("%w: error building sql query", ErrStorage)

	// ErrExecutingQuery is returned when executing a SELECT query fails.
	ErrExecutingQuery = fmt.Errorf("%w: error executing sql query", ErrStorage)

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = fmt.Errorf("%w: failed to execute statement", ErrStorage)

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = fmt.Errorf("%w: failed to scan row", ErrStorage)

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = fmt.Errorf("%w: failed to scan rows", ErrStorage)

	// ErrReadingResult is returned when the driver cannot report the number
	// of affected rows.
	ErrReadingResult = fmt.Errorf("%w: failed to read statement result", ErrStorage)

	// ErrExecutingCommand is returned when a document store command fails.
	ErrExecutingCommand = fmt.Errorf("%w: error executing document store command", ErrStorage)

	// ErrDecodingDocument is returned when a document cannot be decoded into
	// its model.
	ErrDecodingDocument = fmt.Errorf("%w: failed to decode document", ErrStorage)
)
