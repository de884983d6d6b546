package validators

import (
	"context"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldBookID targets the identifier of a book addressed by update or delete.
	FieldBookID = "id"

	// FieldUsername targets the username of a credentials pair.
	FieldUsername = "username"

	// FieldPassword targets the plain password of a credentials pair.
	FieldPassword = "password"
)

const (
	// maxPasswordBytes is the longest input bcrypt takes into account.
	maxPasswordBytes = 72

	maxUsernameBytes = 255
)

// RequestValidator validates the request models of the books and auth flows.
type RequestValidator struct{}

// NewRequestValidator constructs a [Validator] for books and credentials.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Book / *models.Book (default field: id)
//   - models.Credentials / *models.Credentials (default fields: username, password)
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Book:
		return v.validateBook(ctx, value, fields...)
	case *models.Book:
		if value == nil {
			return ErrNilValueProvided
		}
		return v.validateBook(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrNilValueProvided
		}
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateBook checks the identifier of a book. Title, author and year are
// accepted as they are.
func (v *RequestValidator) validateBook(_ context.Context, book models.Book, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBookID}
	}

	for _, f := range fields {
		switch f {
		case FieldBookID:
			if book.ID == "" {
				return ErrEmptyBookID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials checks that both parts of the pair are present. No
// trimming or case folding is applied; " admin" is a different username.
func (v *RequestValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if creds.Username == "" {
				return ErrEmptyUsername
			}
			if len(creds.Username) > maxUsernameBytes {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if len(creds.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
