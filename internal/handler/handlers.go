package handler

import (
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/config"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/handler/grpc"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/handler/http"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, probe http.BackendProbe, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, probe, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
