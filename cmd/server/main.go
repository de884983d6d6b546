package main

import (
	"context"
	"fmt"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/config"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/handler"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/server"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/service"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/store"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("bookshelf-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerWithLevel("bookshelf-server", cfg.App.LogLevel)
	log.Debug().
		Stringer("backend", cfg.Storage.Backend).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.WithoutCancel(ctx)); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, storages, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var probe *workers.HealthProbe
	if handlers.GRPC != nil {
		probe = workers.NewHealthProbe(storages, cfg.Workers.HealthCheckInterval, log, handlers.GRPC)
	} else {
		probe = workers.NewHealthProbe(storages, cfg.Workers.HealthCheckInterval, log)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(probe), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
