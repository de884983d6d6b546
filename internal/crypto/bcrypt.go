// Package crypto holds the password hashing primitives of the auth flow.
package crypto

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// bcryptHasher is the bcrypt implementation of [PasswordHasher]. A weighted
// semaphore caps the number of concurrent hash computations.
type bcryptHasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt cost.
// concurrency caps simultaneous computations; zero or less means
// GOMAXPROCS. A cost outside bcrypt's range falls back to
// bcrypt.DefaultCost.
func NewBcryptHasher(cost, concurrency int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	return &bcryptHasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(concurrency)),
	}
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("%w: %w", ErrHashing, err)
	}

	return string(hash), nil
}

// Compare implements [PasswordHasher]. The comparison is constant time.
func (h *bcryptHasher) Compare(ctx context.Context, hash, password string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("%w: %w", ErrHashing, err)
	}
}
