// Package services contains server-side business logic. AuthService handles
// registration, login and bearer-token verification; TaskService implements
// owner-scoped task operations; ExportService snapshots tasks to object storage.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/cryptox"
	"github.com/dmitrijs2005/gophtasks/internal/server/auth"
	"github.com/dmitrijs2005/gophtasks/internal/server/config"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/repomanager"
)

// Client-facing messages for auth failures.
const (
	MsgMissingRegisterFields = "Please provide all required fields"
	MsgMissingLoginFields    = "Please provide email and password"
	MsgUserExists            = "User already exists"
	MsgInvalidCredentials    = "Invalid credentials"
	MsgNoToken               = "No token, authorization denied"
	MsgTokenNotValid         = "Token is not valid"
	MsgUserNotFound          = "User not found"
)

type AuthService struct {
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	hashCost      int
}

func NewAuthService(m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
		hashCost:      cryptox.DefaultCost,
	}
}

// Register creates an account and returns its public summary.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.UserSummary, error) {
	if name == "" || email == "" || password == "" {
		return nil, common.NewError(common.ErrValidation, MsgMissingRegisterFields)
	}

	repo := s.repomanager.Users()

	_, err := repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, common.NewError(common.ErrConflict, MsgUserExists)
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	hash, err := cryptox.HashPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u, err := repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.NewError(common.ErrConflict, MsgUserExists)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u.Summary(), nil
}

// Login verifies credentials and returns a signed bearer token. Unknown email
// and wrong password are reported identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.NewError(common.ErrValidation, MsgMissingLoginFields)
	}

	user, err := s.repomanager.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.NewError(common.ErrorUnauthorized, MsgInvalidCredentials)
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if err := cryptox.CheckPassword(user.PasswordHash, []byte(password)); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return "", common.NewError(common.ErrorUnauthorized, MsgInvalidCredentials)
		}
		return "", fmt.Errorf("error checking password: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to the user it was issued for.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.UserSummary, error) {
	if token == "" {
		return nil, common.NewError(common.ErrorUnauthorized, MsgNoToken)
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.NewError(common.ErrorUnauthorized, MsgTokenNotValid)
	}

	user, err := s.repomanager.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NewError(common.ErrorUnauthorized, MsgUserNotFound)
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user.Summary(), nil
}
