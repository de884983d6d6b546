package models

// Book is a single entry of the library catalogue.
type Book struct {
	// ID is the backend-assigned identifier. It is decimal text in relational
	// mode and a 24-character hex ObjectID in document mode, so callers must
	// treat it as opaque.
	ID string `json:"id"`

	// Title of the book.
	Title string `json:"title"`

	// Author of the book.
	Author string `json:"author"`

	// Year is the publication year.
	Year int `json:"year"`
}
