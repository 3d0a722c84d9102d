package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mkuznetsov/todolist/internal/apperrors"
	"github.com/mkuznetsov/todolist/internal/models"
	"github.com/mkuznetsov/todolist/internal/repository"
	"github.com/mkuznetsov/todolist/internal/service/auth/tokenmanager"
)

type Config struct {
	// Secret key to sign bearer token payload
	SecretKey string

	// Hasher used for passwords and recovery phrases
	// Default bcrypt hasher is used if not set
	Hasher PasswordHasher

	// Bearer token lifetime, 24h if not set
	TokenTTL time.Duration
}

type AuthService struct {
	token  *tokenmanager.TokenManager
	hasher PasswordHasher

	userRepo repository.UserRepo
}

func NewService(cfg Config, userRepo repository.UserRepo) (*AuthService, error) {
	if userRepo == nil {
		return nil, errors.New("user repo must not be nil")
	}

	hasher := cfg.Hasher
	if hasher == nil {
		hasher = DefaultHasher
	}

	token, err := tokenmanager.New(tokenmanager.Config{
		SecretKey: cfg.SecretKey,
		TokenTTL:  cfg.TokenTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("error while creating token manager. Err: %w", err)
	}

	return &AuthService{
		token:    token,
		hasher:   hasher,
		userRepo: userRepo,
	}, nil
}

// Register user and return it's public identity
// The password and the recovery phrase are stored as salted hashes only
func (s *AuthService) Register(ctx context.Context, username string, password string, recoveryPhrase string) (models.User, error) {
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("can't use this as password. Err: %w", err)
	}

	var recoveryHash *string
	if recoveryPhrase != "" {
		hash, err := s.hasher.Hash(recoveryPhrase)
		if err != nil {
			return models.User{}, fmt.Errorf("can't use this as recovery phrase. Err: %w", err)
		}
		recoveryHash = &hash
	}

	return s.userRepo.CreateUser(ctx, username, passwordHash, recoveryHash)
}

// Login user and issue bearer token with it's identity embedded
func (s *AuthService) Login(ctx context.Context, username string, password string) (models.IssuedToken, models.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return models.IssuedToken{}, user, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return models.IssuedToken{}, models.User{}, apperrors.ErrInvalidCredentials
	}

	token, err := s.token.Issue(user)
	if err != nil {
		return token, user, fmt.Errorf("token could not be generated, sorry. Err: %w", err)
	}

	return token, user, nil
}

// Replace the user's password if the recovery phrase matches
// Does not log the user in
func (s *AuthService) ResetPassword(ctx context.Context, username string, recoveryPhrase string, newPassword string) error {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	if user.RecoveryPhraseHash == nil {
		return apperrors.ErrNoRecoveryPhrase
	}

	if err := s.hasher.Compare(*user.RecoveryPhraseHash, recoveryPhrase); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("can't use this as password. Err: %w", err)
	}

	return s.userRepo.SetPasswordHash(ctx, user.ID, passwordHash)
}

// Authenticate the request by it's bearer token
// The acting user identity comes from the verified claim only, never from
// anything client supplied in body or path
func (s *AuthService) Auth(ctx context.Context, r *http.Request) (models.User, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return models.User{}, apperrors.ErrTokenMissing
	}

	access, found := strings.CutPrefix(header, "Bearer ")
	if !found || access == "" {
		return models.User{}, apperrors.ErrTokenMissing
	}

	user, err := s.token.Parse(access)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", apperrors.ErrTokenInvalid, err)
	}

	return user, nil
}
