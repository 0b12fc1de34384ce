package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/baristalab/lattemeister/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) status() string {
	if u := a.session.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

// Register prompts for email, name, and password and creates a new account.
// Registration logs the user in, so the chat welcome message appears right
// away.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, email, name, password); err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			printlnFn("An account with this email already exists.")
			return err
		}
		a.log.Errorw("registration failed", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", name))
	return nil
}

// Login prompts for credentials and authenticates against the local
// credential store.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid email or password.")
			return err
		}
		a.log.Errorw("login failed", "error", err)
		return err
	}

	printlnFn("Login successful!")
	return nil
}

// Logout clears the active session. Persisted submissions and chat history
// stay on disk and reappear on the next login.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Errorw("logout failed", "error", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}
