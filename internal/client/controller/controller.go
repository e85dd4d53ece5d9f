// Package controller orchestrates session store transitions in response to
// user actions. Every auth attempt follows the same shape: BeginAuth ->
// gateway call -> CommitSession/FailAuth guarded by the attempt's
// generation. Navigation targets are derived from the freshly committed
// user, never from the raw API result, so a superseded attempt navigates
// nowhere.
package controller

import (
	"context"

	"github.com/tarotvn/tarot-client/internal/client/autherr"
	"github.com/tarotvn/tarot-client/internal/client/gateway"
	"github.com/tarotvn/tarot-client/internal/client/paths"
	"github.com/tarotvn/tarot-client/internal/client/persistence"
	"github.com/tarotvn/tarot-client/internal/client/session"
	"github.com/tarotvn/tarot-client/internal/client/social"
	"github.com/tarotvn/tarot-client/internal/logging"
)

// Controller exposes the auth operations consumed by pages and the CLI.
// It is, together with the persistence manager, one of the two writers of
// the session store.
type Controller struct {
	store    *session.Store
	gw       gateway.Identity
	persist  *persistence.Manager
	facebook *social.FacebookStrategy
	google   *social.GoogleStrategy
	logger   logging.Logger
}

func New(store *session.Store, gw gateway.Identity, persist *persistence.Manager, logger logging.Logger) *Controller {
	return &Controller{
		store:    store,
		gw:       gw,
		persist:  persist,
		facebook: social.NewFacebookStrategy(gw),
		google:   social.NewGoogleStrategy(gw),
		logger:   logger.With("component", "controller"),
	}
}

// Login authenticates with email/password. On success it returns the
// post-login redirect target; remember controls whether the session is
// mirrored to durable storage or kept in memory only.
func (c *Controller) Login(ctx context.Context, email, password string, remember bool) (string, error) {
	return c.attempt(ctx, remember, func(ctx context.Context) (*gateway.Session, error) {
		return c.gw.Login(ctx, email, password)
	})
}

// Register creates an account and commits its first session.
func (c *Controller) Register(ctx context.Context, req gateway.RegisterRequest, remember bool) (string, error) {
	return c.attempt(ctx, remember, func(ctx context.Context) (*gateway.Session, error) {
		return c.gw.Register(ctx, req)
	})
}

// LoginWithFacebook exchanges a Facebook SDK callback for a session. A
// malformed callback (missing credential) is rejected locally before the
// store is touched; the session stays whatever it was.
func (c *Controller) LoginWithFacebook(ctx context.Context, cb social.FacebookCallback, remember bool) (string, error) {
	payload, err := c.facebook.Normalize(cb)
	if err != nil {
		return "", err
	}
	return c.attempt(ctx, remember, func(ctx context.Context) (*gateway.Session, error) {
		return c.facebook.Exchange(ctx, payload)
	})
}

// LoginWithGoogle exchanges a Google OAuth access token for a session.
func (c *Controller) LoginWithGoogle(ctx context.Context, accessToken string, remember bool) (string, error) {
	payload, err := c.google.Normalize(accessToken)
	if err != nil {
		return "", err
	}
	return c.attempt(ctx, remember, func(ctx context.Context) (*gateway.Session, error) {
		return c.google.Exchange(ctx, payload)
	})
}

// attempt runs one generation-guarded auth attempt. The redirect target is
// derived exactly once, from the committed user; a stale commit (superseded
// by a newer attempt or a clear) yields no redirect and no mirror.
func (c *Controller) attempt(ctx context.Context, remember bool, exchange func(context.Context) (*gateway.Session, error)) (string, error) {
	gen := c.store.BeginAuth()

	sess, err := exchange(ctx)
	if err != nil {
		c.store.FailAuth(gen, autherr.AsError(err))
		return "", err
	}
	if sess == nil || sess.User == nil || sess.Token == "" {
		// The gateway validates its payloads; this backstop keeps a broken
		// Identity implementation from ever committing a user-less session.
		err := autherr.New(autherr.KindUnknown, "identity service returned no session")
		c.store.FailAuth(gen, err)
		return "", err
	}

	if !c.store.CommitSession(gen, sess.User, sess.Token) {
		c.logger.Info(ctx, "discarding superseded auth attempt")
		return "", nil
	}

	if remember {
		if err := c.persist.Save(ctx, sess.User, sess.Token); err != nil {
			// The in-memory session is committed and valid; a mirror
			// failure costs persistence across restarts, not the login.
			c.logger.Error(ctx, "failed to mirror session", "error", err)
		}
	}

	if sess.User.HasAdminRights() {
		return paths.AdminDashboard, nil
	}
	return paths.UserDashboard, nil
}

// Logout invalidates the server-side session best-effort and always clears
// local state, durable storage included.
func (c *Controller) Logout(ctx context.Context) error {
	if token := c.store.Token(); token != "" {
		if err := c.gw.Logout(ctx, token); err != nil {
			c.logger.Warn(ctx, "server-side logout failed", "error", err)
		}
	}
	c.store.ClearSession()
	return c.persist.Erase(ctx)
}

// InvalidateSession is the hard drop used when any API call answers 401:
// local state is cleared without contacting the server.
func (c *Controller) InvalidateSession(ctx context.Context) error {
	c.store.ClearSession()
	return c.persist.Erase(ctx)
}

// RequestPasswordReset asks the backend to send a reset email. Resolves
// without error whether or not the address exists. No store transition.
func (c *Controller) RequestPasswordReset(ctx context.Context, email string) error {
	return c.gw.RequestPasswordReset(ctx, email)
}

// ResetPassword consumes an emailed reset token. The token only ever lives
// in the URL parameter; it is never persisted. No store transition: the
// user logs in with the new password afterwards.
func (c *Controller) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return c.gw.PerformPasswordReset(ctx, resetToken, newPassword)
}

// ClearAuthError dismisses the surfaced error independent of navigation.
func (c *Controller) ClearAuthError() {
	c.store.ClearError()
}
