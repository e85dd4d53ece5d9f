package models

// Role is the privilege level assigned to a user by the identity service.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile holds optional presentation data attached to a user.
type Profile struct {
	DisplayName string `json:"displayName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// User is the identity record returned by the backend. It is immutable on
// the client: every successful login/register/social-login or /me call
// replaces it wholesale, and logout clears it.
//
// IsAdmin is a legacy boolean some older accounts carry instead of a proper
// role; HasAdminRights honors both. The server-returned role is the only
// authority for privilege decisions.
type User struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Role      Role     `json:"role"`
	Profile   *Profile `json:"profile,omitempty"`
	IsPremium bool     `json:"isPremium"`
	IsAdmin   bool     `json:"isAdmin,omitempty"`
}

// HasAdminRights reports whether the user may access admin-only surfaces.
func (u *User) HasAdminRights() bool {
	if u == nil {
		return false
	}
	return u.Role == RoleAdmin || u.IsAdmin
}

// DisplayName returns the best human-readable name available.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Profile != nil && u.Profile.DisplayName != "" {
		return u.Profile.DisplayName
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
