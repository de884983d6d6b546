package http

import (
	"errors"
	"net/http"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/app"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/service"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/store"
)

// errorStatus pairs a sentinel with the status and public message it maps to.
// The table is walked in order, so more specific sentinels come first.
type errorStatus struct {
	target  error
	status  int
	message string
}

var errorStatusTable = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{store.ErrInvalidBookID, http.StatusBadRequest, app.MsgInvalidBookID},
	{service.ErrUserAlreadyExists, http.StatusBadRequest, app.MsgUserAlreadyExists},
	{service.ErrUserNotFound, http.StatusUnauthorized, app.MsgUserNotFound},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgInvalidToken},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgNoTokenProvided},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgInvalidToken},
	{errInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
}

// statusFromError returns the response status and client-facing message for
// err. Anything unknown, storage failures included, is a 500 whose message
// never carries driver details.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
