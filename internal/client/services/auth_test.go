package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/gophtasks/internal/client/client"
	"github.com/dmitrijs2005/gophtasks/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophtasks/internal/client/state"
	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "Invalid credentials",
		messageOf(fmt.Errorf("wrapped: %w", &client.APIError{Status: 400, Message: "Invalid credentials"})))
	assert.Equal(t, msgUnavailable, messageOf(fmt.Errorf("%w: dial tcp", client.ErrUnavailable)))
	assert.Equal(t, "boom", messageOf(errors.New("boom")))
}

func TestAuthService_LoginPersistsSession(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	fc := &fakeClient{LoginRet: "jwt"}
	svc := NewAuthService(fc, db, logging.Nop())

	msg := svc.Login(ctx, "a@b.c", "pw")
	assert.Equal(t, state.LoginSucceeded{Token: "jwt"}, msg)
	assert.Equal(t, "jwt", fc.token)

	repo := metadata.NewSQLiteRepository(db)
	token, err := repo.Get(ctx, metadata.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "jwt", token)

	email, err := repo.Get(ctx, metadata.KeyEmail)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", email)
}

func TestAuthService_LoginFailure(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	fc := &fakeClient{LoginErr: &client.APIError{Status: http.StatusBadRequest, Message: "Invalid credentials"}}
	svc := NewAuthService(fc, db, logging.Nop())

	msg := svc.Login(ctx, "a@b.c", "bad")
	assert.Equal(t, state.AuthFailed{Err: "Invalid credentials"}, msg)
	assert.Empty(t, fc.token)

	token, err := metadata.NewSQLiteRepository(db).Get(ctx, metadata.KeyToken)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	ok := NewAuthService(&fakeClient{RegisterRet: "User registered successfully"}, db, logging.Nop())
	assert.Equal(t, state.RegisterSucceeded{Message: "User registered successfully"},
		ok.Register(ctx, "A", "a@b.c", "pw"))

	dup := NewAuthService(&fakeClient{RegisterErr: &client.APIError{Status: 400, Message: "User already exists"}},
		db, logging.Nop())
	assert.Equal(t, state.AuthFailed{Err: "User already exists"}, dup.Register(ctx, "A", "a@b.c", "pw"))
}

func TestAuthService_RestoreAndLogout(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, metadata.KeyToken, "saved"))
	require.NoError(t, repo.Set(ctx, metadata.KeyEmail, "a@b.c"))

	fc := &fakeClient{}
	svc := NewAuthService(fc, db, logging.Nop())

	sess, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, Session{Token: "saved", Email: "a@b.c"}, sess)
	assert.Equal(t, "saved", fc.token)

	assert.Equal(t, state.LoggedOut{}, svc.Logout(ctx))
	assert.Empty(t, fc.token)

	sess, err = svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, Session{}, sess)
}

func TestAuthService_RestoreEmpty(t *testing.T) {
	svc := NewAuthService(&fakeClient{}, setupDB(t), logging.Nop())

	sess, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
}
