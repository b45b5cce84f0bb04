package services

import (
	"context"
	"errors"
	"time"

	"github.com/sulta24/backend-hw1/models"
	"github.com/sulta24/backend-hw1/repositories"
	"go.uber.org/zap"
)

// AuthService handles registration, credential checks and principal resolution
type AuthService interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, username, password string) (*models.User, error)
	// Authenticate checks credentials and issues a bearer token.
	Authenticate(ctx context.Context, username, password string) (string, error)
	// Resolve verifies a bearer token and loads the user it names.
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// AuthServiceImpl implements AuthService
type AuthServiceImpl struct {
	users    repositories.UserRepository
	txMgr    repositories.TransactionManager
	hasher   PasswordHasher
	tokens   TokenService
	tokenTTL time.Duration
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	users repositories.UserRepository,
	txMgr repositories.TransactionManager,
	hasher PasswordHasher,
	tokens TokenService,
	tokenTTL time.Duration,
	logger *zap.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:    users,
		txMgr:    txMgr,
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Register creates a new user account
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, WrapInternal("failed to hash password", err)
	}

	user := models.NewUser(username, hash)

	err = s.txMgr.InTransaction(ctx, func(ctx context.Context, _ repositories.Transaction) error {
		return s.users.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, WrapInternal("failed to create user", err)
	}

	s.logger.Info("user registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))
	return user, nil
}

// Authenticate verifies credentials and issues a token.
// Unknown usernames and wrong passwords produce the same error.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", WrapInternal("failed to look up user", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, s.tokenTTL)
	if err != nil {
		return "", WrapInternal("failed to issue token", err)
	}

	s.logger.Debug("token issued", zap.String("username", user.Username))
	return token, nil
}

// Resolve maps a bearer token to the user it identifies.
// Any failure collapses into an unauthorized error so the caller
// cannot distinguish a bad token from a deleted account.
func (s *AuthServiceImpl) Resolve(ctx context.Context, token string) (*models.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnknownPrincipal
		}
		return nil, WrapInternal("failed to load principal", err)
	}

	return user, nil
}
