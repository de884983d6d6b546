package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/config"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/crypto"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/store"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/utils"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/validators"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher for
// the salted one-way password hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies password hashes.
	hasher crypto.PasswordHasher

	// validator checks credentials before any backend call.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher and populated with token parameters from
// cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewRequestValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account and returns a session token for it.
//
// The existence lookup is only a fast path: two concurrent registrations
// can both pass it, and the backend unique constraint then rejects the
// second insert with the same ErrUserAlreadyExists.
//
// Returns the token or:
//   - ErrInvalidDataProvided if the username or password is empty or too long.
//   - ErrUserAlreadyExists if the username is taken.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("username", creds.Username).Msg("invalid credentials provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	switch {
	case err == nil:
		log.Info().Str("username", creds.Username).Msg("user already exists")
		return models.Token{}, ErrUserAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("username", creds.Username).Msg("user lookup failed")
		return models.Token{}, fmt.Errorf("user lookup failed: %w", err)
	}

	hash, err := a.hasher.Hash(ctx, creds.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Str("username", creds.Username).Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.userRepository.InsertUser(ctx, creds.Username, hash)
	switch {
	case errors.Is(err, store.ErrLoginAlreadyExists):
		log.Info().Str("username", creds.Username).Msg("user was registered concurrently")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUserAlreadyExists, err)
	case err != nil:
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	case !created:
		log.Error().Str("username", creds.Username).Msg("user creation reported no inserted record")
		return models.Token{}, ErrUserNotCreated
	}

	log.Info().Str("username", creds.Username).Msg("user registered")

	return a.CreateToken(ctx, creds.Username)
}

// Login authenticates an existing user and returns a fresh session token.
//
// An empty username can never match a stored user, so it yields
// ErrUserNotFound without a backend call.
//
// Returns the token or:
//   - ErrUserNotFound if no user has the given username.
//   - ErrWrongPassword if the password does not match the stored hash.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" {
		return models.Token{}, ErrUserNotFound
	}

	user, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Info().Str("username", creds.Username).Msg("login for unknown user")
		return models.Token{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = a.hasher.Compare(ctx, user.PasswordHash, creds.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Info().Str("username", creds.Username).Msg("wrong password")
			return models.Token{}, ErrWrongPassword
		}
		log.Err(err).Str("username", creds.Username).Msg("password verification failed")
		return models.Token{}, fmt.Errorf("password verification failed: %w", err)
	}

	return a.CreateToken(ctx, user.Username)
}

// CreateToken issues a signed JWT for the given username.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim and the expiry. Any validation failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
