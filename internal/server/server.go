package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/config"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/handler"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/workers"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	servers []Server
	workers *workers.Workers
	logger  *logger.Logger
}

// NewServer creates the transport servers enabled in cfg. workers, when not
// nil, run for as long as the servers do.
func NewServer(handlers *handler.Handlers, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		workers: workers,
		logger:  logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.servers = append(s.servers, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.servers = append(s.servers, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// Run serves until ctx is done or SIGTERM, SIGINT or SIGQUIT arrives, then
// shuts every transport down gracefully. The first transport failure stops
// the others and is returned.
func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range s.servers {
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}
	if s.workers != nil {
		g.Go(func() error {
			return s.workers.Run(gctx)
		})
	}

	// listen for stop signals or a failed transport
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
