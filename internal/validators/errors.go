package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyBookID      = errors.New("book id is required")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password must not exceed 72 bytes")
	ErrUsernameTooLong  = errors.New("username must not exceed 255 bytes")
	ErrNilValueProvided = errors.New("nil value provided for validation")
)
