package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ekaraman/skyfare/internal/client/models"
	"github.com/ekaraman/skyfare/internal/client/session"
	"github.com/ekaraman/skyfare/internal/client/storage"
	"github.com/ekaraman/skyfare/internal/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password pair, validates the fields
// locally, and creates the account. On success the credentials are stashed in
// the one-shot handoff blob so the follow-up login comes prefilled.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	if err := validation.Username(username); err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	if err := validation.Password(password); err != nil {
		printlnFn(err.Error())
		return err
	}

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	if err := validation.ConfirmPassword(confirm, password); err != nil {
		printlnFn(err.Error())
		return err
	}

	if _, err := a.session.Register(ctx, models.RegisterData{
		Username: username, Password: password, ConfirmPassword: confirm,
	}); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	storage.SetTempLogin(ctx, a.store, username, password)
	printlnFn("Account created. Run 'login' to sign in.")
	return nil
}

// Login authenticates, consuming the registration handoff when present so a
// freshly registered user does not retype their credentials.
func (a *App) Login(ctx context.Context) error {
	var username, password string

	if handoff, ok := storage.TakeTempLogin(ctx, a.store); ok {
		if handoff.ShowSuccessMessage {
			printlnFn("Registration successful! Logging you in as", handoff.Username)
		}
		username, password = handoff.Username, handoff.Password
	} else {
		var err error
		username, err = getSimpleText(a.reader, "Enter username", os.Stdout)
		if err != nil {
			return err
		}
		password, err = getPassword("Enter password", os.Stdout)
		if err != nil {
			return err
		}
	}

	if err := a.session.Login(ctx, models.Credentials{Username: username, Password: password}); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in as", username)
	return nil
}

// Logout revokes the active session. The directory call must succeed before
// local state is cleared, so a failed logout leaves the user signed in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the active profile. It reads the session from ctx, which Run
// places there for every command.
func (a *App) WhoAmI(ctx context.Context) error {
	st := session.FromContext(ctx).State()
	if !st.Authenticated {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s (since %s)", st.User.Username, st.User.CreatedAt.Format("2006-01-02")))
	return nil
}
