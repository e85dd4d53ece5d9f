// Package social normalizes provider-specific OAuth payloads into the one
// {user, token} contract the session logic consumes.
//
// Each provider gets its own strategy with two phases:
//
//   - Normalize: pure, local validation of the provider SDK callback. A
//     missing credential fails here with KindSocialProviderRejected and
//     never reaches the gateway or the session store.
//   - Exchange: the gateway call trading the normalized payload for a
//     backend session.
//
// The split lets the controller keep the store untouched until a payload is
// known to be exchangeable, per the provider-failure contract.
package social

import (
	"context"

	"github.com/tarotvn/tarot-client/internal/client/gateway"
)

// Provider tags for the backend exchange endpoints.
const (
	ProviderFacebook = "facebook"
	ProviderGoogle   = "google"
)

// Strategy is the common surface of a provider adapter once its payload has
// been normalized.
type Strategy interface {
	Provider() string
	Exchange(ctx context.Context, payload gateway.SocialPayload) (*gateway.Session, error)
}
