package gateway

import (
	"context"

	"github.com/tarotvn/tarot-client/internal/client/models"
)

// Session is the normalized result of any operation that establishes
// identity: the resolved user plus the bearer token, as one unit.
type Session struct {
	User  *models.User
	Token string
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SocialProfile is the provider-independent identity shape the social
// adapters normalize provider payloads into before anything reaches the
// backend.
type SocialProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// SocialPayload is the body of a social-login exchange. User is set for
// providers whose profile is resolved client-side (Facebook); for providers
// resolved server-side (Google) only Token is set.
type SocialPayload struct {
	Token string         `json:"token"`
	User  *SocialProfile `json:"user,omitempty"`
}

// Identity is the stateless client of the backend identity service. All
// methods honor context cancellation, return normalized results, and fail
// only with *autherr.Error values; no raw transport errors escape.
type Identity interface {
	// Login exchanges credentials for a session. Fails with
	// KindInvalidCredentials on a 401.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Register creates an account and returns its first session. Fails with
	// KindDuplicateAccount when the email/username is taken (409) and
	// KindValidationFailed on a 422.
	Register(ctx context.Context, req RegisterRequest) (*Session, error)

	// FetchCurrentUser resolves the user behind a bearer token; used to
	// rehydrate on boot. Fails with KindTokenExpired on a 401, which callers
	// translate into a silent drop to anonymous, not a surfaced error.
	FetchCurrentUser(ctx context.Context, token string) (*models.User, error)

	// SocialLogin exchanges a normalized provider payload for a session.
	SocialLogin(ctx context.Context, provider string, payload SocialPayload) (*Session, error)

	// Logout asks the server to invalidate the token. Best effort: callers
	// clear local state regardless of the outcome.
	Logout(ctx context.Context, token string) error

	// RequestPasswordReset asks for a reset email. Resolves without error
	// whether or not the address exists (no enumeration leak); only
	// transport failures surface.
	RequestPasswordReset(ctx context.Context, email string) error

	// PerformPasswordReset consumes an emailed reset token. Fails with
	// KindTokenExpired when the token is invalid or spent.
	PerformPasswordReset(ctx context.Context, resetToken, newPassword string) error

	// Close releases client resources.
	Close() error
}
