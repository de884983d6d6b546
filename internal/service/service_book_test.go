package service

import (
	"context"
	"testing"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/mock"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/store"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/validators"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBookSvc(t *testing.T) (BookService, *mock.MockBookRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	books := mock.NewMockBookRepository(ctrl)

	return NewBookValidationService().Wrap(NewBookService(books, logger.Nop())), books
}

func TestBookService_ListBooks(t *testing.T) {
	svc, books := newTestBookSvc(t)
	ctx := context.Background()

	want := []models.Book{{ID: "1", Title: "Dune", Author: "Herbert", Year: 1965}}
	books.EXPECT().ListAll(ctx).Return(want, nil)

	got, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBookService_CreateBook_DropsClientID(t *testing.T) {
	svc, books := newTestBookSvc(t)
	ctx := context.Background()

	books.EXPECT().Create(ctx, models.Book{Title: "Dune", Author: "Herbert", Year: 1965}).Return(true, nil)

	ok, err := svc.CreateBook(ctx, models.Book{ID: "42", Title: "Dune", Author: "Herbert", Year: 1965})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBookService_UpdateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("matched", func(t *testing.T) {
		svc, books := newTestBookSvc(t)
		book := models.Book{ID: "1", Title: "Dune Messiah"}
		books.EXPECT().Update(ctx, book).Return(true, nil)

		ok, err := svc.UpdateBook(ctx, book)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("not matched", func(t *testing.T) {
		svc, books := newTestBookSvc(t)
		book := models.Book{ID: "999"}
		books.EXPECT().Update(ctx, book).Return(false, nil)

		ok, err := svc.UpdateBook(ctx, book)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing id never reaches repository", func(t *testing.T) {
		svc, _ := newTestBookSvc(t)

		ok, err := svc.UpdateBook(ctx, models.Book{Title: "Dune"})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
		require.ErrorIs(t, err, validators.ErrEmptyBookID)
		assert.False(t, ok)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, books := newTestBookSvc(t)
		book := models.Book{ID: "abc"}
		books.EXPECT().Update(ctx, book).Return(false, store.ErrInvalidBookID)

		_, err := svc.UpdateBook(ctx, book)
		require.ErrorIs(t, err, store.ErrInvalidBookID)
	})
}

func TestBookService_DeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		svc, books := newTestBookSvc(t)
		books.EXPECT().Delete(ctx, "1").Return(true, nil)

		ok, err := svc.DeleteBook(ctx, "1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing id never reaches repository", func(t *testing.T) {
		svc, _ := newTestBookSvc(t)

		ok, err := svc.DeleteBook(ctx, "")
		require.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.False(t, ok)
	})

	t.Run("storage error", func(t *testing.T) {
		svc, books := newTestBookSvc(t)
		books.EXPECT().Delete(ctx, "1").Return(false, store.ErrExecutingStatement)

		_, err := svc.DeleteBook(ctx, "1")
		require.ErrorIs(t, err, store.ErrStorage)
	})
}
