package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tarotvn/tarot-client/internal/client/gateway"
	"github.com/tarotvn/tarot-client/internal/client/guard"
	"github.com/tarotvn/tarot-client/internal/client/session"
	"github.com/tarotvn/tarot-client/internal/client/social"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
)

// Login prompts for credentials and authenticates. On success it prints the
// page the web client would navigate to (admin or user dashboard, derived
// from the committed session).
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	remember, err := getYesNo(a.reader, "Remember me?", true, os.Stdout)
	if err != nil {
		return err
	}

	redirect, err := a.controller.Login(ctx, email, password, remember)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}
	printlnFn("Logged in, continuing to", redirect)
	return nil
}

// Register prompts for account details and creates the account. A fresh
// registration commits its first session, same as a login.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	redirect, err := a.controller.Register(ctx, gateway.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, true)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}
	printlnFn("Account created, continuing to", redirect)
	return nil
}

// LoginFacebook simulates the Facebook SDK callback with manually entered
// fields, then runs the real exchange path.
func (a *App) LoginFacebook(ctx context.Context) error {
	accessToken, err := getSimpleText(a.reader, "Facebook access token", os.Stdout)
	if err != nil {
		return err
	}
	userID, err := getSimpleText(a.reader, "Facebook user id", os.Stdout)
	if err != nil {
		return err
	}

	cb := social.FacebookCallback{AccessToken: accessToken, UserID: userID}
	redirect, err := a.controller.LoginWithFacebook(ctx, cb, true)
	if err != nil {
		printlnFn("Facebook login failed:", err.Error())
		return err
	}
	printlnFn("Logged in, continuing to", redirect)
	return nil
}

// LoginGoogle exchanges a pasted Google OAuth access token.
func (a *App) LoginGoogle(ctx context.Context) error {
	accessToken, err := getSimpleText(a.reader, "Google access token", os.Stdout)
	if err != nil {
		return err
	}

	redirect, err := a.controller.LoginWithGoogle(ctx, accessToken, true)
	if err != nil {
		printlnFn("Google login failed:", err.Error())
		return err
	}
	printlnFn("Logged in, continuing to", redirect)
	return nil
}

// Forgot requests a password-reset email. The confirmation is printed
// unconditionally on success; the server does not reveal whether the
// address exists.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.controller.RequestPasswordReset(ctx, email); err != nil {
		printlnFn("Request failed:", err.Error())
		return err
	}
	printlnFn("If the address exists, a reset link is on its way.")
	return nil
}

// Reset consumes an emailed reset token and sets a new password.
func (a *App) Reset(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Reset token (from the email link)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	if err := a.controller.ResetPassword(ctx, token, password); err != nil {
		printlnFn("Reset failed:", err.Error())
		return err
	}
	printlnFn("Password updated. You can log in now.")
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.store.Snapshot()
	if snap.Status != session.StatusAuthenticated {
		printlnFn("Not logged in (status:", string(snap.Status)+")")
		return nil
	}
	u := snap.User
	role := string(u.Role)
	if u.HasAdminRights() {
		role = "admin"
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s premium=%t", u.DisplayName(), u.Email, role, u.IsPremium))
	return nil
}

// Open evaluates the route guards for a path, the same checks the web pages
// run at render time.
func (a *App) Open(ctx context.Context, path string) error {
	snap := a.store.Snapshot()

	var d guard.Decision
	if isAdminPath(path) {
		d = guard.RequireAdmin(snap, path)
	} else {
		d = guard.RequireAuthenticated(snap, path)
	}

	if d.Allowed {
		printlnFn("Opened", path)
		return nil
	}
	printlnFn(fmt.Sprintf("Redirected to %s (from %s): %s", d.RedirectTo, d.Redirect.From, d.Redirect.Message))
	return nil
}

func isAdminPath(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}

// Dismiss clears a pending auth error.
func (a *App) Dismiss(ctx context.Context) error {
	a.controller.ClearAuthError()
	return nil
}

// Logout clears the session locally and best-effort on the server.
func (a *App) Logout(ctx context.Context) error {
	if err := a.controller.Logout(ctx); err != nil {
		printlnFn("Logout cleanup warning:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}
