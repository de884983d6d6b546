package http

import (
	"context"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/config"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/service"
)

// BackendProbe reports which storage backend is in use and whether it is
// reachable. [store.Storages] satisfies it.
type BackendProbe interface {
	Backend() config.Backend
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	probe    BackendProbe
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, probe BackendProbe, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		probe:    probe,
		cfg:      cfg,
		logger:   logger,
	}
}
