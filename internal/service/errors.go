package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries values that cannot be processed.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUserAlreadyExists is returned by registration when the username is
	// taken, either by the pre-check or by the backend unique constraint.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned by login for an unknown username.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword is returned by login when the password does not match.
	ErrWrongPassword = errors.New("wrong password")

	// ErrUserNotCreated is returned when the backend accepted the insert but
	// reported that nothing was stored.
	ErrUserNotCreated = errors.New("user was not created")

	// ErrTokenCreationFailed is returned when a session token cannot be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned when a token fails signature,
	// issuer or expiry verification.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
