package http

import (
	"encoding/json"
	"net/http"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/app"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	token, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user registration failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("username", creds.Username).Msg("user registered")

	h.writeJSON(w, r, models.RegisterResponse{
		Message: app.MsgUserRegistered,
		Token:   token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("login failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("username", creds.Username).Msg("user successfully logged in")

	h.writeJSON(w, r, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
