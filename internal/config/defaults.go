package config

import (
	"strconv"
	"time"
)

const (
	defaultHTTPAddress         = ":5000"
	defaultTokenIssuer         = "bookshelf"
	defaultTokenDuration       = time.Hour
	defaultPasswordHashCost    = 10
	defaultDBDriver            = "pgx"
	defaultMongoURI            = "mongodb://localhost:27017"
	defaultMongoDatabase       = "library_db"
	defaultHealthCheckInterval = 30 * time.Second
	defaultLogLevel            = "info"
)

// applyDefaults fills every field left empty by all sources and resolves the
// storage backend from the selector flag.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
		if cfg.Port != 0 {
			cfg.Server.HTTPAddress = ":" + strconv.Itoa(cfg.Port)
		}
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = defaultPasswordHashCost
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}
	if cfg.Storage.Mongo.URI == "" {
		cfg.Storage.Mongo.URI = defaultMongoURI
	}
	if cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = defaultMongoDatabase
	}

	if cfg.Workers.HealthCheckInterval == 0 {
		cfg.Workers.HealthCheckInterval = defaultHealthCheckInterval
	}

	cfg.Storage.Backend = cfg.SelectBackend()
}
