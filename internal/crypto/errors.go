package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by Compare when the password does not
	// match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match hash")

	// ErrPasswordTooLong is returned when the password exceeds the 72 bytes
	// bcrypt can take into account.
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrHashing is returned when the hash cannot be computed or the stored
	// hash is malformed.
	ErrHashing = errors.New("error hashing password")
)
