package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/vmelikhov/orderdesk/internal/config"
	"github.com/vmelikhov/orderdesk/internal/logger"
	"github.com/vmelikhov/orderdesk/internal/store"
	"github.com/vmelikhov/orderdesk/internal/utils"
	"github.com/vmelikhov/orderdesk/models"
)

// MinPasswordLength is the minimum number of characters a registration
// password must contain.
const MinPasswordLength = 8

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the bcrypt work factor; zero falls back to the library
	// default at hash time.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Processing stops at the first failed check; in particular no INSERT is
// attempted once a validation error has been reported:
//   - ErrMissingCredentials if username or password is empty.
//   - store.ErrUsernameTaken if the username is already registered (checked
//     up front, and enforced again by the unique constraint on insert).
//   - ErrPasswordTooShort if the password has fewer than
//     [MinPasswordLength] characters.
//
// On success the persisted user (with server-assigned ID and CreatedAt) is
// returned.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("missing registration credentials")
		return models.User{}, ErrMissingCredentials
	}

	_, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	switch {
	case err == nil:
		log.Warn().Str("username", creds.Username).Msg("username is already taken")
		return models.User{}, store.ErrUsernameTaken
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("username", creds.Username).Msg("user pre-check failed")
		return models.User{}, fmt.Errorf("user pre-check failed: %w", err)
	}

	if utf8.RuneCountInString(creds.Password) < MinPasswordLength {
		log.Warn().Str("username", creds.Username).Msg("password too short")
		return models.User{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// A missing username or password fails fast with ErrMissingCredentials.
// A lookup miss and a bcrypt mismatch both yield ErrIncorrectCredentials so
// the response text never reveals which part of the credentials was wrong.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("missing login credentials")
		return models.User{}, ErrMissingCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", creds.Username).Msg("login attempt for unknown username")
			return models.User{}, ErrIncorrectCredentials
		}

		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(creds.Password)); err != nil {
		log.Warn().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrIncorrectCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the user's id and username
// as identity claims, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResolveToken validates a raw JWT string and resolves it to the current
// user record.
//
// Signature, issuer, and expiry are verified first; the subject claim is
// then looked up in the user store so a token for a since-removed account
// does not authenticate. Every failure mode is normalised to
// ErrTokenInvalid — callers never inspect low-level JWT errors.
func (a *authService) ResolveToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrTokenInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Int64("id", token.UserID).Msg("token subject lookup failed")
		}
		return models.User{}, ErrTokenInvalid
	}

	return user, nil
}
