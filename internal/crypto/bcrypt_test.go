package crypto

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost, 2)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "unexpected hash format %q", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.NoError(t, h.Compare(ctx, hash, "1234"))
	assert.ErrorIs(t, h.Compare(ctx, hash, "12345"), ErrPasswordMismatch)
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost, 1)
	ctx := context.Background()

	first, err := h.Hash(ctx, "secret")
	require.NoError(t, err)
	second, err := h.Hash(ctx, "secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	for _, cost := range []int{0, 3, 32} {
		h := NewBcryptHasher(cost, 1).(*bcryptHasher)
		assert.Equal(t, bcrypt.DefaultCost, h.cost, "cost %d", cost)
	}
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost, 1)

	_, err := h.Hash(context.Background(), strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost, 1)

	err := h.Compare(context.Background(), "not-a-bcrypt-hash", "1234")
	require.ErrorIs(t, err, ErrHashing)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestBcryptHasher_WaitsForSlotUntilContextDone(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost, 1).(*bcryptHasher)

	// occupy the only slot
	require.NoError(t, h.sem.Acquire(context.Background(), 1))
	defer h.sem.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := h.Hash(ctx, "1234")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	err = h.Compare(ctx, "$2a$04$abcdefghijklmnopqrstuu", "1234")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
