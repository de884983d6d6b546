package http

import (
	"net/http"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/utils"
)

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

// writeError translates err with the status table and writes the JSON error
// body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)
	if _, werr := utils.WriteError(w, message, status); werr != nil {
		logger.FromRequest(r).Err(werr).Msg("writing error response failed")
	}
}
