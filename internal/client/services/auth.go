package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophtasks/internal/client/client"
	"github.com/dmitrijs2005/gophtasks/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophtasks/internal/client/state"
	"github.com/dmitrijs2005/gophtasks/internal/dbx"
	"github.com/dmitrijs2005/gophtasks/internal/logging"
)

// Session is what survives a restart.
type Session struct {
	Token string
	Email string
}

// AuthService signs the user in and out and keeps the bearer token in the
// local metadata store.
type AuthService interface {
	// Restore loads the persisted session and hands its token to the API client.
	Restore(ctx context.Context) (Session, error)
	Register(ctx context.Context, name, email, password string) state.Msg
	Login(ctx context.Context, email, password string) state.Msg
	Logout(ctx context.Context) state.Msg
}

type authService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
}

func NewAuthService(c client.Client, db *sql.DB, l logging.Logger) AuthService {
	return &authService{client: c, db: db, logger: l}
}

func (a *authService) Restore(ctx context.Context) (Session, error) {
	repo := metadata.NewSQLiteRepository(a.db)

	token, err := repo.Get(ctx, metadata.KeyToken)
	if err != nil {
		return Session{}, fmt.Errorf("restore session: %w", err)
	}
	email, err := repo.Get(ctx, metadata.KeyEmail)
	if err != nil {
		return Session{}, fmt.Errorf("restore session: %w", err)
	}

	a.client.SetToken(token)
	return Session{Token: token, Email: email}, nil
}

func (a *authService) Register(ctx context.Context, name, email, password string) state.Msg {
	msg, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		a.logger.Debug(ctx, "register failed", "error", err)
		return state.AuthFailed{Err: messageOf(err)}
	}
	return state.RegisterSucceeded{Message: msg}
}

func (a *authService) Login(ctx context.Context, email, password string) state.Msg {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.logger.Debug(ctx, "login failed", "error", err)
		return state.AuthFailed{Err: messageOf(err)}
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyEmail, email)
	})
	if err != nil {
		// the session still works, it just will not survive a restart
		a.logger.Warn(ctx, "failed to persist session", "error", err)
	}

	a.client.SetToken(token)
	return state.LoginSucceeded{Token: token}
}

func (a *authService) Logout(ctx context.Context) state.Msg {
	a.client.SetToken("")

	repo := metadata.NewSQLiteRepository(a.db)
	if err := repo.Delete(ctx, metadata.KeyToken, metadata.KeyEmail); err != nil {
		a.logger.Warn(ctx, "failed to clear session", "error", err)
	}
	return state.LoggedOut{}
}
