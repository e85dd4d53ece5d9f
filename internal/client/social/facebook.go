package social

import (
	"context"

	"github.com/tarotvn/tarot-client/internal/client/autherr"
	"github.com/tarotvn/tarot-client/internal/client/gateway"
)

// FacebookCallback is the shape delivered by the Facebook SDK login
// callback. Depending on SDK version the stable identifier arrives as
// UserID or ID, so both are carried and reconciled in Normalize.
type FacebookCallback struct {
	AccessToken string `json:"accessToken"`
	UserID      string `json:"userID"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Picture     *struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

// FacebookStrategy resolves the profile client-side from the SDK callback
// and sends both profile and provider token to the backend.
type FacebookStrategy struct {
	gw gateway.Identity
}

func NewFacebookStrategy(gw gateway.Identity) *FacebookStrategy {
	return &FacebookStrategy{gw: gw}
}

func (s *FacebookStrategy) Provider() string { return ProviderFacebook }

// Normalize validates the callback and builds the canonical payload.
// Missing access token or identifier is a local rejection; the gateway is
// never called with a half-formed credential.
func (s *FacebookStrategy) Normalize(cb FacebookCallback) (gateway.SocialPayload, error) {
	if cb.AccessToken == "" {
		return gateway.SocialPayload{}, autherr.New(autherr.KindSocialProviderRejected, "facebook login did not return an access token")
	}

	id := cb.UserID
	if id == "" {
		id = cb.ID
	}
	if id == "" {
		return gateway.SocialPayload{}, autherr.New(autherr.KindSocialProviderRejected, "facebook login did not return a user id")
	}

	profile := &gateway.SocialProfile{
		ID:    id,
		Name:  cb.Name,
		Email: cb.Email,
	}
	if cb.Picture != nil {
		profile.AvatarURL = cb.Picture.Data.URL
	}

	return gateway.SocialPayload{Token: cb.AccessToken, User: profile}, nil
}

func (s *FacebookStrategy) Exchange(ctx context.Context, payload gateway.SocialPayload) (*gateway.Session, error) {
	return s.gw.SocialLogin(ctx, ProviderFacebook, payload)
}

var _ Strategy = (*FacebookStrategy)(nil)
