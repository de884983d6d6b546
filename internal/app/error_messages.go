// SPDX-License-Identifier: Apache-2.0

// Package app contains message strings shared by the HTTP handlers and the
// command-line tools of the bookshelf service.
//
// The Msg* constants are written into HTTP response bodies. Clients such as
// cmd/createuser compare against them, so the wording is part of the API.
package app

// Error bodies, sent as {"error": Msg...}.
const (
	// MsgInvalidDataProvided is returned when a request misses required
	// fields.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidBookID is returned when a book id has the wrong shape for the
	// active backend.
	MsgInvalidBookID = "invalid book id"

	// MsgUserAlreadyExists is returned by registration for a taken username.
	MsgUserAlreadyExists = "User already exists"

	// MsgUserNotFound is returned by login for an unknown username.
	MsgUserNotFound = "User not found"

	// MsgInvalidCredentials is returned by login for a wrong password.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgNoTokenProvided is returned when a protected route is called
	// without an Authorization header.
	MsgNoTokenProvided = "No token provided"

	// MsgInvalidToken is returned when the bearer token is malformed,
	// expired or carries a wrong signature.
	MsgInvalidToken = "Invalid token"

	// MsgErrorGettingBooks is returned when listing books fails.
	MsgErrorGettingBooks = "Error getting books..."

	// MsgErrorCreatingBook is returned when the backend stored nothing.
	MsgErrorCreatingBook = "Error creating book..."
)

// Success bodies.
const (
	MsgUserRegistered = "User registered successfully"
	MsgBookCreated    = "Book created successfully"
	MsgBookUpdated    = "Book updated successfully"
	MsgBookDeleted    = "Book deleted successfully"

	// MsgErrorUpdatingBook and MsgErrorDeletingBook are sent with 200 when
	// the mutation matched no book.
	MsgErrorUpdatingBook = "Error updating book..."
	MsgErrorDeletingBook = "Error deleting book..."
)
