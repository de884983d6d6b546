package service

import (
	"context"
	"fmt"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/validators"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

// BookValidationService rejects update and delete requests that do not name
// a book before they reach the repository.
type BookValidationService struct {
	inner     BookService
	validator validators.Validator
}

func NewBookValidationService() BookServiceWrapper {
	return &BookValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *BookValidationService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return v.inner.ListBooks(ctx)
}

func (v *BookValidationService) CreateBook(ctx context.Context, book models.Book) (bool, error) {
	// the backend assigns the id, whatever the client sent is dropped
	book.ID = ""
	return v.inner.CreateBook(ctx, book)
}

func (v *BookValidationService) UpdateBook(ctx context.Context, book models.Book) (bool, error) {
	if err := v.validator.Validate(ctx, book, validators.FieldBookID); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateBook(ctx, book)
}

func (v *BookValidationService) DeleteBook(ctx context.Context, id string) (bool, error) {
	if err := v.validator.Validate(ctx, models.Book{ID: id}, validators.FieldBookID); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteBook(ctx, id)
}

func (v *BookValidationService) Wrap(wrapper BookService) BookService {
	v.inner = wrapper
	return v
}
