// Package guard implements the render-time route guards. Guards are pure
// reads over a session snapshot: no network calls, no store mutation.
// Bootstrap rehydration is the persistence layer's sole responsibility, so
// by the time a guard runs the status is settled (or deliberately
// authenticating while rehydration is in flight).
package guard

import (
	"github.com/tarotvn/tarot-client/internal/client/paths"
	"github.com/tarotvn/tarot-client/internal/client/session"
)

// Decision is the outcome of a guard evaluation. When not allowed,
// RedirectTo carries the target and Redirect the preserved original path
// plus a user-facing message for the login page.
type Decision struct {
	Allowed    bool
	RedirectTo string
	Redirect   paths.Redirect
}

func allow() Decision {
	return Decision{Allowed: true}
}

func toLogin(from, message string) Decision {
	return Decision{
		Allowed:    false,
		RedirectTo: paths.AuthLogin,
		Redirect:   paths.Redirect{From: from, Message: message},
	}
}

// RequireAuthenticated admits any authenticated user.
func RequireAuthenticated(snap session.Snapshot, from string) Decision {
	if snap.Status != session.StatusAuthenticated {
		return toLogin(from, "Please log in to continue.")
	}
	return allow()
}

// RequireAdmin admits authenticated users with admin rights. Non-admins are
// sent to the login page with the preserved path, same contract as the
// authenticated guard; there is no separate forbidden page.
func RequireAdmin(snap session.Snapshot, from string) Decision {
	if snap.Status != session.StatusAuthenticated {
		return toLogin(from, "Please log in to continue.")
	}
	if !snap.User.HasAdminRights() {
		return toLogin(from, "Administrator access is required.")
	}
	return allow()
}
