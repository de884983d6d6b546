package service

import (
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/config"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/crypto"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/store"
)

type Services struct {
	AuthService AuthService
	BookService BookService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost, cfg.App.PasswordHashConcurrency)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		BookService: NewBookValidationService().Wrap(NewBookService(storages.BookRepository, logger)),
	}
}
