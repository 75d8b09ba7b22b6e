package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophtasks/internal/client/state"
)

// getSimpleText and getPassword point to the interactive input helpers and
// can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates an account.
// It does not sign the user in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	a.dispatch(state.AuthPending{})
	m := a.auth.Register(ctx, name, email, password)
	a.dispatch(m)

	if r, ok := m.(state.RegisterSucceeded); ok {
		fmt.Fprintln(a.out, r.Message+". You can now log in.")
		return nil
	}
	fmt.Fprintln(a.out, "Registration failed:", a.state.Auth.Error)
	return nil
}

// Login prompts for credentials and keeps the token for later runs.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	a.dispatch(state.AuthPending{})
	a.dispatch(a.auth.Login(ctx, email, password))

	if !a.state.Auth.Authenticated {
		fmt.Fprintln(a.out, "Login failed:", a.state.Auth.Error)
		return nil
	}
	a.email = email
	fmt.Fprintln(a.out, "Logged in as", email)
	return nil
}

// Logout forgets the token locally and in the session store.
func (a *App) Logout(ctx context.Context) error {
	a.dispatch(a.auth.Logout(ctx))
	a.email = ""
	a.query = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
