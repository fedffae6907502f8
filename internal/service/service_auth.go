package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avrorin/graphql-todo/internal/config"
	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/internal/store"
	"github.com/avrorin/graphql-todo/internal/utils"
	"github.com/avrorin/graphql-todo/models"
)

// tokenTTL is the fixed validity window of every issued token. Requests
// presenting an older token are treated as anonymous.
const tokenTTL = 12 * time.Hour

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
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

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}
}

// SignUp creates a new user account.
//
// It validates that name, email, and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository. The
// pre-insert email lookup keeps the common conflict path off the index error;
// the unique index still guards the race between the check and the insert.
//
// Returns the persisted user (with a store-assigned ID) or:
//   - ErrInvalidDataProvided if name, email, or password is empty.
//   - store.ErrEmailAlreadyExists if the email is already registered.
//   - A wrapped storage error if the repository call fails.
func (a *authService) SignUp(ctx context.Context, params SignUpParams) (models.User, error) {
	log := logger.FromContext(ctx)

	if params.Name == "" || params.Email == "" || params.Password == "" {
		log.Error().Str("email", params.Email).Msg("invalid sign-up data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, params.Email); err == nil {
		log.Warn().Str("email", params.Email).Msg("email already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", params.Email).Msg("email existence check failed")
		return models.User{}, fmt.Errorf("email existence check failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(params.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         params.Name,
		Email:        params.Email,
		Avatar:       params.Avatar,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", params.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// SignIn authenticates an existing user.
//
// It looks the account up by email and compares the stored bcrypt hash
// against the supplied password. An unknown email and a failed comparison
// both collapse into ErrInvalidCredentials so the caller cannot tell which
// check failed.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if the account is unknown or the password wrong.
//   - A wrapped storage error for unexpected repository failures.
func (a *authService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid sign-in data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", email).Msg("sign-in with unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, password) {
		log.Warn().Str("email", email).Msg("sign-in with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after the fixed tokenTTL.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, tokenTTL, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// UserFromToken resolves a raw token string to the user record it identifies.
//
// This is the core of per-request context construction: an anonymous result
// is the normal outcome for any of an empty token, a failed validation, or an
// identifier that no longer matches a user — none of these propagate as
// errors. The single store read happens only after the token has verified.
//
// A non-nil error is returned only for unexpected storage failures.
func (a *authService) UserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return nil, nil
	}

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		log.Debug().Msg("token did not verify; treating request as anonymous")
		return nil, nil
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("userID", token.UserID.Hex()).Msg("token subject matches no user; treating request as anonymous")
			return nil, nil
		}

		log.Err(err).Str("userID", token.UserID.Hex()).Msg("user lookup by token subject failed")
		return nil, fmt.Errorf("user lookup by token subject failed: %w", err)
	}

	return &foundUser, nil
}
