package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/formhub/internal/common"
	"github.com/dmitrijs2005/formhub/internal/server/auth"
	"github.com/dmitrijs2005/formhub/internal/server/config"
)

// Service handles signup and login. Passwords are hashed before they reach
// the repository; plaintext is never persisted or logged.
type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with the given role. No token is issued at
// signup; the client logs in afterwards.
func (s *Service) Register(ctx context.Context, name, email, password, role string) (*User, error) {

	if name == "" || email == "" || password == "" || role == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return user, nil
}

// Login verifies the credentials and, on success, issues a signed token
// carrying the user's id and role, expiring after the configured validity
// window.
func (s *Service) Login(ctx context.Context, email, password string) (token string, role string, err error) {

	if email == "" || password == "" {
		return "", "", common.ErrorValidation
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", "", common.ErrorNotFound
		}
		return "", "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", "", common.ErrorUnauthorized
	}

	token, err = auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", "", common.ErrorInternal
	}

	return token, user.Role, nil
}
