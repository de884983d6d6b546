package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

const (
	booksTable = "books"
	usersTable = "users"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id     BIGSERIAL PRIMARY KEY,
		title  TEXT    NOT NULL,
		author TEXT    NOT NULL,
		year   INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		id       BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		password TEXT NOT NULL,
		CONSTRAINT users_username_key UNIQUE (username)
	);`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		title  TEXT    NOT NULL,
		author TEXT    NOT NULL,
		year   INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);`,
}

func buildSelectAllBooksQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("id", "title", "author", "year").
		From(booksTable).
		OrderBy("id").
		ToSql()
}

func buildInsertBookQuery(b sq.StatementBuilderType, book models.Book) (string, []any, error) {
	return b.Insert(booksTable).
		Columns("title", "author", "year").
		Values(book.Title, book.Author, book.Year).
		ToSql()
}

// buildUpdateBookQuery replaces every mutable column of the book with the
// given id.
func buildUpdateBookQuery(b sq.StatementBuilderType, id int64, book models.Book) (string, []any, error) {
	return b.Update(booksTable).
		Set("title", book.Title).
		Set("author", book.Author).
		Set("year", book.Year).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteBookQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(booksTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSelectUserQuery matches the username exactly; no case folding or
// trimming is applied.
func buildSelectUserQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select("username", "password").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, username, passwordHash string) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password").
		Values(username, passwordHash).
		ToSql()
}
