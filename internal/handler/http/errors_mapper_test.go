package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/service"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("%w: empty id", service.ErrInvalidDataProvided), want: http.StatusBadRequest},
		{name: "malformed id", err: store.ErrInvalidBookID, want: http.StatusBadRequest},
		{name: "conflict", err: fmt.Errorf("%w: %w", service.ErrUserAlreadyExists, store.ErrLoginAlreadyExists), want: http.StatusBadRequest},
		{name: "unknown user", err: service.ErrUserNotFound, want: http.StatusUnauthorized},
		{name: "wrong password", err: service.ErrWrongPassword, want: http.StatusUnauthorized},
		{name: "bad token", err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "no header", err: ErrEmptyAuthorizationHeader, want: http.StatusUnauthorized},
		{name: "bad json", err: errInvalidJSON, want: http.StatusBadRequest},
		{name: "storage", err: fmt.Errorf("lookup: %w", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, message := statusFromError(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, message)
			assert.NotContains(t, message, "sql")
		})
	}
}
