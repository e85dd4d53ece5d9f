package guard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarotvn/tarot-client/internal/client/models"
	"github.com/tarotvn/tarot-client/internal/client/paths"
	"github.com/tarotvn/tarot-client/internal/client/session"
)

func snapshot(status session.Status, user *models.User) session.Snapshot {
	snap := session.Snapshot{Status: status, User: user}
	if user != nil {
		snap.Token = "tok"
	}
	return snap
}

func TestRequireAuthenticated(t *testing.T) {
	user := &models.User{ID: "1", Role: models.RoleUser}

	tests := []struct {
		name    string
		snap    session.Snapshot
		allowed bool
	}{
		{"authenticated", snapshot(session.StatusAuthenticated, user), true},
		{"anonymous", snapshot(session.StatusAnonymous, nil), false},
		{"authenticating", snapshot(session.StatusAuthenticating, nil), false},
		{"error", snapshot(session.StatusError, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := RequireAuthenticated(tt.snap, "/journal")
			require.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				require.Equal(t, paths.AuthLogin, d.RedirectTo)
				require.Equal(t, "/journal", d.Redirect.From, "original path preserved")
				require.NotEmpty(t, d.Redirect.Message)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	admin := &models.User{ID: "1", Role: models.RoleAdmin}
	legacyAdmin := &models.User{ID: "2", Role: models.RoleUser, IsAdmin: true}
	regular := &models.User{ID: "3", Role: models.RoleUser}

	tests := []struct {
		name    string
		snap    session.Snapshot
		allowed bool
	}{
		{"admin role", snapshot(session.StatusAuthenticated, admin), true},
		{"legacy isAdmin flag", snapshot(session.StatusAuthenticated, legacyAdmin), true},
		{"regular user", snapshot(session.StatusAuthenticated, regular), false},
		{"anonymous", snapshot(session.StatusAnonymous, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := RequireAdmin(tt.snap, "/admin/dashboard")
			require.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				// Non-admins go to login, not to a forbidden page.
				require.Equal(t, paths.AuthLogin, d.RedirectTo)
				require.Equal(t, "/admin/dashboard", d.Redirect.From)
			}
		})
	}
}
