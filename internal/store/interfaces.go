package store

import (
	"context"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BookRepository is the uniform contract over the "books" resource. Both
// backends normalise their native results to booleans so callers never
// inspect driver-specific shapes.
//
// Update and Delete report false with a nil error when no record matched the
// identifier. A malformed identifier yields [ErrInvalidBookID].
type BookRepository interface {
	ListAll(ctx context.Context) ([]models.Book, error)
	Create(ctx context.Context, book models.Book) (bool, error)
	Update(ctx context.Context, book models.Book) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// UserRepository is the uniform contract over stored credentials.
//
// FindUserByUsername returns [ErrUserNotFound] when the username is absent.
// InsertUser returns [ErrLoginAlreadyExists] when the backend unique
// constraint rejects the username.
type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	InsertUser(ctx context.Context, username, passwordHash string) (bool, error)
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
