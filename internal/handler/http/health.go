package http

import (
	"net/http"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

// health pings the storage backend and reports 503 when it is unreachable.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:  healthStatusOK,
		Backend: h.probe.Backend().String(),
	}

	if err := h.probe.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("backend", resp.Backend).Msg("storage backend is unreachable")
		resp.Status = healthStatusUnavailable
		h.writeJSON(w, r, resp, http.StatusServiceUnavailable)
		return
	}

	h.writeJSON(w, r, resp, http.StatusOK)
}
