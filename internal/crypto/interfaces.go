package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and verifies salted one-way password hashes.
// Both operations are CPU bound; implementations bound how many of them run
// at once and give up when ctx is done while waiting for a slot.
type PasswordHasher interface {
	// Hash returns the encoded hash of password. The salt is generated per
	// call and embedded in the result.
	Hash(ctx context.Context, password string) (string, error)

	// Compare reports whether password matches hash. A mismatch yields
	// [ErrPasswordMismatch].
	Compare(ctx context.Context, hash, password string) error
}
