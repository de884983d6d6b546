// Command createuser seeds an account, by default admin/1234.
//
// Without -api it connects to the storage backend selected by the same
// environment (and optional JSON file) the server reads, and registers the
// user through the auth service. With -api it calls the register endpoint of
// a running server instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/app"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/config"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/service"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/store"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/utils"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

const requestTimeout = 30 * time.Second

func main() {
	var apiURL string
	var creds models.Credentials

	fs := flag.NewFlagSet("createuser", flag.ExitOnError)
	fs.StringVar(&creds.Username, "username", "admin", "username of the new account")
	fs.StringVar(&creds.Password, "password", "1234", "password of the new account")
	fs.StringVar(&apiURL, "api", "", "base URL of a running server, e.g. http://localhost:5000")
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLoggerWithLevel("bookshelf-createuser", os.Getenv("APP_LOG_LEVEL"))

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var err error
	if apiURL != "" {
		err = registerRemote(ctx, apiURL, creds)
	} else {
		err = registerLocal(ctx, creds, log)
	}

	switch {
	case errors.Is(err, service.ErrUserAlreadyExists):
		log.Warn().Str("username", creds.Username).Msg("user already exists")
	case err != nil:
		log.Fatal().Err(err).Str("username", creds.Username).Msg("user creation failed")
	default:
		log.Info().Str("username", creds.Username).Msg("user created")
	}
}

func registerLocal(ctx context.Context, creds models.Credentials, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfigFromEnv()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close(context.WithoutCancel(ctx))

	services := service.NewServices(storages, *cfg, log)
	_, err = services.AuthService.Register(ctx, creds)
	return err
}

func registerRemote(ctx context.Context, apiURL string, creds models.Credentials) error {
	client := utils.NewHTTPClient(apiURL, requestTimeout)

	var errResp models.ErrorResponse
	resp, err := client.R().
		SetContext(ctx).
		SetBody(creds).
		SetError(&errResp).
		Post("/api/register")
	if err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusCreated:
		return nil
	case http.StatusBadRequest:
		if errResp.Error == app.MsgUserAlreadyExists {
			return service.ErrUserAlreadyExists
		}
	}

	return fmt.Errorf("register request failed with status %d: %s", resp.StatusCode(), errResp.Error)
}
