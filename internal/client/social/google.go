package social

import (
	"context"

	"github.com/tarotvn/tarot-client/internal/client/autherr"
	"github.com/tarotvn/tarot-client/internal/client/gateway"
)

// GoogleStrategy forwards the provider access token as-is; the backend, not
// the client, resolves the Google profile.
type GoogleStrategy struct {
	gw gateway.Identity
}

func NewGoogleStrategy(gw gateway.Identity) *GoogleStrategy {
	return &GoogleStrategy{gw: gw}
}

func (s *GoogleStrategy) Provider() string { return ProviderGoogle }

// Normalize validates the OAuth access token received from the Google SDK.
func (s *GoogleStrategy) Normalize(accessToken string) (gateway.SocialPayload, error) {
	if accessToken == "" {
		return gateway.SocialPayload{}, autherr.New(autherr.KindSocialProviderRejected, "google login did not return an access token")
	}
	return gateway.SocialPayload{Token: accessToken}, nil
}

func (s *GoogleStrategy) Exchange(ctx context.Context, payload gateway.SocialPayload) (*gateway.Session, error) {
	return s.gw.SocialLogin(ctx, ProviderGoogle, payload)
}

var _ Strategy = (*GoogleStrategy)(nil)
