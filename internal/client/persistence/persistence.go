// Package persistence rehydrates the session store from durable storage at
// process start and mirrors committed sessions back to it.
//
// It owns the storage schema (the "token" and "user" keys) and is, together
// with the controller, one of the two writers of the session store. Durable
// storage never holds a token that is not re-validated exactly once on the
// next boot: rehydration either confirms the token against /me or erases it.
package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tarotvn/tarot-client/internal/client/autherr"
	"github.com/tarotvn/tarot-client/internal/client/gateway"
	"github.com/tarotvn/tarot-client/internal/client/models"
	"github.com/tarotvn/tarot-client/internal/client/session"
	"github.com/tarotvn/tarot-client/internal/client/storage"
	"github.com/tarotvn/tarot-client/internal/logging"
)

// now is a test seam for the expiry fast path.
var now = time.Now

// Manager wires the session store, the identity gateway and a storage
// backend together.
type Manager struct {
	store   *session.Store
	gw      gateway.Identity
	storage storage.Store
	logger  logging.Logger
}

func NewManager(store *session.Store, gw gateway.Identity, st storage.Store, logger logging.Logger) *Manager {
	return &Manager{
		store:   store,
		gw:      gw,
		storage: st,
		logger:  logger.With("component", "persistence"),
	}
}

// Rehydrate reconstructs the in-memory session from durable storage. Run
// once at process start, before any guard is evaluated.
//
// Outcomes:
//   - no stored token: store stays anonymous.
//   - stored token expired (local JWT peek or 401 from /me): silent drop to
//     anonymous, durable keys erased. Not a user-facing error.
//   - /me succeeds: session committed and the user mirror refreshed.
//   - transport failure: surfaced as a retryable error state.
//
// A cancelled context or a newer auth attempt supersedes the rehydration;
// its completion is then discarded via the generation token and nothing is
// written.
func (m *Manager) Rehydrate(ctx context.Context) error {
	tok, err := m.storage.Get(ctx, storage.KeyToken)
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return nil
	}

	if snap := m.store.Snapshot(); snap.User != nil {
		// Someone already authenticated in-memory; the mirror follows the
		// store, not the other way around.
		return nil
	}

	token := string(tok)
	if tokenExpired(token) {
		m.logger.Info(ctx, "stored token expired, dropping session")
		m.store.ClearSession()
		return m.Erase(ctx)
	}

	gen := m.store.BeginAuth()

	user, err := m.gw.FetchCurrentUser(ctx, token)
	if err != nil {
		if ctx.Err() != nil {
			// Cancelled (shutdown or superseded caller): no error surfaced,
			// no stale write past a newer attempt.
			m.store.AbortAuth(gen)
			return nil
		}
		if autherr.KindOf(err) == autherr.KindTokenExpired {
			m.logger.Info(ctx, "stored token rejected by server, dropping session")
			m.store.ClearSession()
			return m.Erase(ctx)
		}
		m.store.FailAuth(gen, autherr.AsError(err))
		return err
	}

	if !m.store.CommitSession(gen, user, token) {
		return nil
	}
	// Refresh the mirrored user: /me is authoritative.
	return m.Save(ctx, user, token)
}

// Save mirrors a committed session to durable storage.
func (m *Manager) Save(ctx context.Context, user *models.User, token string) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if ps, ok := m.storage.(storage.PairSetter); ok {
		return ps.SetPair(ctx, []byte(token), encoded)
	}
	if err := m.storage.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
		return err
	}
	return m.storage.Set(ctx, storage.KeyUser, encoded)
}

// Erase removes both durable keys. Idempotent.
func (m *Manager) Erase(ctx context.Context) error {
	if err := m.storage.Delete(ctx, storage.KeyToken); err != nil {
		return err
	}
	return m.storage.Delete(ctx, storage.KeyUser)
}

// StoredUser decodes the mirrored user, if any. Display-only convenience
// for surfaces rendered before rehydration settles; never a substitute for
// the store.
func (m *Manager) StoredUser(ctx context.Context) (*models.User, error) {
	raw, err := m.storage.Get(ctx, storage.KeyUser)
	if err != nil || len(raw) == 0 {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// tokenExpired reports whether token is a JWT whose exp claim is already in
// the past. The token is treated as opaque otherwise: parse failures and
// missing claims mean "not known to be expired" and the server decides.
// Signature verification is deliberately absent; only the server trusts the
// token, the client just avoids a doomed round-trip.
func tokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now())
}
