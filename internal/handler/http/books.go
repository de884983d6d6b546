package http

import (
	"encoding/json"
	"net/http"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/app"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/utils"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	books, err := h.services.BookService.ListBooks(r.Context())
	if err != nil {
		log.Err(err).Msg("listing books failed")
		utils.WriteError(w, app.MsgErrorGettingBooks, http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, r, books, http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	created, err := h.services.BookService.CreateBook(r.Context(), req.ToBook())
	if err != nil {
		log.Err(err).Msg("book creation failed")
		h.writeError(w, r, err)
		return
	}
	if !created {
		log.Error().Msg("book creation reported no inserted record")
		utils.WriteError(w, app.MsgErrorCreatingBook, http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, r, app.MsgBookCreated, http.StatusOK)
}

// updateBook answers 200 with a JSON string in both outcomes; only the text
// tells whether a book matched.
func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	updated, err := h.services.BookService.UpdateBook(r.Context(), req.ToBook())
	if err != nil {
		log.Err(err).Str("id", req.ID).Msg("book update failed")
		h.writeError(w, r, err)
		return
	}
	if !updated {
		log.Info().Str("id", req.ID).Msg("no book matched the update")
		h.writeJSON(w, r, app.MsgErrorUpdatingBook, http.StatusOK)
		return
	}

	h.writeJSON(w, r, app.MsgBookUpdated, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	deleted, err := h.services.BookService.DeleteBook(r.Context(), req.ID)
	if err != nil {
		log.Err(err).Str("id", req.ID).Msg("book deletion failed")
		h.writeError(w, r, err)
		return
	}
	if !deleted {
		log.Info().Str("id", req.ID).Msg("no book matched the deletion")
		h.writeJSON(w, r, app.MsgErrorDeletingBook, http.StatusOK)
		return
	}

	h.writeJSON(w, r, app.MsgBookDeleted, http.StatusOK)
}
