package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasAdminRights(t *testing.T) {
	require.False(t, (*User)(nil).HasAdminRights())
	require.False(t, (&User{Role: RoleUser}).HasAdminRights())
	require.True(t, (&User{Role: RoleAdmin}).HasAdminRights())
	require.True(t, (&User{Role: RoleUser, IsAdmin: true}).HasAdminRights())

	// Email patterns carry no authority.
	require.False(t, (&User{Email: "boss@tarot.vn", Role: RoleUser}).HasAdminRights())
	require.False(t, (&User{Email: "x@admin.example", Role: RoleUser}).HasAdminRights())
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "", (*User)(nil).DisplayName())
	require.Equal(t, "a@tarot.vn", (&User{Email: "a@tarot.vn"}).DisplayName())
	require.Equal(t, "rider", (&User{Username: "rider", Email: "a@tarot.vn"}).DisplayName())
	require.Equal(t, "The Rider", (&User{
		Username: "rider",
		Profile:  &Profile{DisplayName: "The Rider"},
	}).DisplayName())
}

func TestUser_DecodesLegacyPayload(t *testing.T) {
	// Older accounts carry isAdmin instead of a role.
	raw := []byte(`{"id":"7","username":"elder","email":"elder@tarot.vn","isAdmin":true,"isPremium":true}`)

	var u User
	require.NoError(t, json.Unmarshal(raw, &u))
	require.True(t, u.HasAdminRights())
	require.True(t, u.IsPremium)
	require.Empty(t, u.Role)
}
