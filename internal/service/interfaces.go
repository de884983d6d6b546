package service

import (
	"context"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=BookServiceWrapper

// AuthService registers users, checks credentials and issues and verifies
// session tokens.
type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (models.Token, error)
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
	CreateToken(ctx context.Context, username string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BookService exposes the books resource to the transport layer.
type BookService interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	CreateBook(ctx context.Context, book models.Book) (bool, error)
	UpdateBook(ctx context.Context, book models.Book) (bool, error)
	DeleteBook(ctx context.Context, id string) (bool, error)
}

// BookServiceWrapper defines middleware composition for BookService.
// Implementations wrap an existing BookService to add behavior such as
// logging or validating.
type BookServiceWrapper interface {
	Wrap(BookService) BookService // returns a decorated BookService applying additional behavior
}
