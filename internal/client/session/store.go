// Package session owns the client's authentication state: the current
// status, the resolved user, and the bearer token, as one atomic unit.
//
// The store is the single source of truth for identity. Exactly one instance
// exists per process; the controller and the persistence layer are the only
// writers, everything else reads snapshots.
//
// State machine:
//
//	anonymous -> authenticating -> authenticated | error
//	authenticated -> authenticating (re-auth) | anonymous (logout)
//	error -> authenticating (retry) | anonymous (dismiss)
//
// Every BeginAuth hands out a monotonic Generation. Completions
// (CommitSession/FailAuth) must present the generation of the attempt that
// started them and are discarded when a newer attempt or a ClearSession has
// superseded it. That discipline is what keeps interleaved attempts and
// cancelled rehydrations from racing stale results into the store.
package session

import (
	"sync"

	"github.com/tarotvn/tarot-client/internal/client/autherr"
	"github.com/tarotvn/tarot-client/internal/client/models"
)

// Status is the authentication phase. Exactly one holds at any time.
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
	StatusError          Status = "error"
)

// Generation identifies one auth attempt. Completions carrying a stale
// generation are discarded.
type Generation uint64

// Snapshot is a consistent read of the store. Status and User are captured
// under one lock acquisition, so a consumer never observes authenticated
// with a nil user or anonymous with a non-nil one.
type Snapshot struct {
	Status Status
	User   *models.User
	Token  string
	Err    *autherr.Error
}

// Store is the mutex-guarded session container. The zero value is not
// usable; construct with New.
type Store struct {
	mu     sync.Mutex
	status Status
	user   *models.User
	token  string
	err    *autherr.Error
	gen    Generation
}

// New returns an anonymous store.
func New() *Store {
	return &Store{status: StatusAnonymous}
}

// BeginAuth marks the start of an auth attempt and returns its generation.
// Legal from any state; starting a new attempt supersedes whatever was in
// flight. The previous session, if any, stays visible until the attempt
// settles so a failed re-auth can still clear it explicitly.
func (s *Store) BeginAuth() Generation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.status = StatusAuthenticating
	s.err = nil
	return s.gen
}

// CommitSession atomically installs the user/token pair and moves to
// authenticated. Returns false (and writes nothing) when gen is stale.
func (s *Store) CommitSession(gen Generation, user *models.User, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.status != StatusAuthenticating {
		return false
	}
	s.status = StatusAuthenticated
	s.user = user
	s.token = token
	s.err = nil
	return true
}

// FailAuth moves the attempt to the error state. The session is cleared in
// the same step: a failed re-auth must not leave a stale authenticated-looking
// user visible. Returns false when gen is stale.
func (s *Store) FailAuth(gen Generation, authErr *autherr.Error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.status != StatusAuthenticating {
		return false
	}
	s.status = StatusError
	s.user = nil
	s.token = ""
	s.err = authErr
	return true
}

// AbortAuth returns a cancelled attempt to anonymous without surfacing an
// error. Generation-guarded like the other completions, so an abort arriving
// after a newer attempt started is a no-op.
func (s *Store) AbortAuth(gen Generation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.status != StatusAuthenticating {
		return false
	}
	s.status = StatusAnonymous
	s.user = nil
	s.token = ""
	s.err = nil
	return true
}

// ClearSession drops to anonymous from any state and bumps the generation,
// so in-flight completions from before the clear are discarded. Used by
// logout and by hard invalidation (401 on any call).
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.status = StatusAnonymous
	s.user = nil
	s.token = ""
	s.err = nil
}

// ClearError dismisses a surfaced error, moving error -> anonymous. In any
// other state only the error field is dropped.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
	if s.status == StatusError {
		s.status = StatusAnonymous
	}
}

// Snapshot returns a consistent view of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Status: s.status, User: s.user, Token: s.token, Err: s.err}
}

// Token returns the current bearer token, empty when not authenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
