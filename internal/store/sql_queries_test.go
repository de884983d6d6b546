// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildSelectAllBooksQuery(t *testing.T) {
	query, args, err := buildSelectAllBooksQuery(dollarBuilder)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, title, author, year FROM books ORDER BY id", query)
	assert.Empty(t, args)
}

func Test_buildInsertBookQuery(t *testing.T) {
	book := models.Book{ID: "ignored", Title: "Dune", Author: "Herbert", Year: 1965}

	tests := []struct {
		name      string
		builder   sq.StatementBuilderType
		wantQuery string
	}{
		{
			name:      "postgres placeholders",
			builder:   dollarBuilder,
			wantQuery: "INSERT INTO books (title,author,year) VALUES ($1,$2,$3)",
		},
		{
			name:      "sqlite placeholders",
			builder:   questionBuilder,
			wantQuery: "INSERT INTO books (title,author,year) VALUES (?,?,?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertBookQuery(tt.builder, book)
			require.NoError(t, err)

			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{"Dune", "Herbert", 1965}, args)
		})
	}
}

func Test_buildUpdateBookQuery(t *testing.T) {
	book := models.Book{Title: "Dune Messiah", Author: "Herbert", Year: 1969}

	query, args, err := buildUpdateBookQuery(dollarBuilder, 7, book)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE books SET title = $1, author = $2, year = $3 WHERE id = $4", query)
	assert.Equal(t, []any{"Dune Messiah", "Herbert", 1969, int64(7)}, args)
}

func Test_buildDeleteBookQuery(t *testing.T) {
	query, args, err := buildDeleteBookQuery(questionBuilder, 3)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM books WHERE id = ?", query)
	assert.Equal(t, []any{int64(3)}, args)
}

func Test_buildSelectUserQuery(t *testing.T) {
	query, args, err := buildSelectUserQuery(dollarBuilder, " Admin ")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from users")
	assert.Contains(t, q, "username = $1")
	// the username is passed through without trimming or case folding
	assert.Equal(t, []any{" Admin "}, args)
}

func Test_buildInsertUserQuery(t *testing.T) {
	query, args, err := buildInsertUserQuery(questionBuilder, "admin", "hash")
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (username,password) VALUES (?,?)", query)
	assert.Equal(t, []any{"admin", "hash"}, args)
}
