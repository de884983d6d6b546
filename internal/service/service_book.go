package service

import (
	"context"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/store"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

type bookService struct {
	bookRepository store.BookRepository

	logger *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

func (b *bookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return b.bookRepository.ListAll(ctx)
}

func (b *bookService) CreateBook(ctx context.Context, book models.Book) (bool, error) {
	return b.bookRepository.Create(ctx, book)
}

func (b *bookService) UpdateBook(ctx context.Context, book models.Book) (bool, error) {
	return b.bookRepository.Update(ctx, book)
}

func (b *bookService) DeleteBook(ctx context.Context, id string) (bool, error) {
	return b.bookRepository.Delete(ctx, id)
}
