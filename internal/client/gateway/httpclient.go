package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/tarotvn/tarot-client/internal/client/autherr"
	"github.com/tarotvn/tarot-client/internal/client/models"
	"github.com/tarotvn/tarot-client/internal/logging"
)

const basePath = "/api/auth"

// envelope is the uniform response shape of the identity service:
// {"status": "success"|"error", "data": ..., "message": ...}.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// sessionData is the data payload of endpoints that establish identity.
type sessionData struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// session validates the decoded payload. A 2xx envelope missing the user or
// the token must never become a committed session; it is a server-side
// contract violation, same class as an empty response payload.
func (d sessionData) session() (*Session, error) {
	if d.User == nil || d.Token == "" {
		return nil, autherr.New(autherr.KindUnknown, "incomplete session payload")
	}
	return &Session{User: d.User, Token: d.Token}, nil
}

// HTTPClient is the Identity implementation over the REST contract.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient builds a gateway against baseURL (scheme://host[:port],
// without the /api/auth suffix). Timeout bounds every request in addition
// to whatever deadline the caller's context carries.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("component", "gateway"),
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var data sessionData
	err := c.call(ctx, http.MethodPost, "/login", "", body, &data, map[int]autherr.Kind{
		http.StatusUnauthorized: autherr.KindInvalidCredentials,
	})
	if err != nil {
		return nil, err
	}
	return data.session()
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var data sessionData
	err := c.call(ctx, http.MethodPost, "/register", "", req, &data, map[int]autherr.Kind{
		http.StatusConflict:            autherr.KindDuplicateAccount,
		http.StatusUnprocessableEntity: autherr.KindValidationFailed,
	})
	if err != nil {
		return nil, err
	}
	return data.session()
}

func (c *HTTPClient) FetchCurrentUser(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := c.call(ctx, http.MethodGet, "/me", token, nil, &user, map[int]autherr.Kind{
		http.StatusUnauthorized: autherr.KindTokenExpired,
	})
	if err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, autherr.New(autherr.KindUnknown, "incomplete user payload")
	}
	return &user, nil
}

func (c *HTTPClient) SocialLogin(ctx context.Context, provider string, payload SocialPayload) (*Session, error) {
	var data sessionData
	err := c.call(ctx, http.MethodPost, "/social/"+provider, "", payload, &data, map[int]autherr.Kind{
		http.StatusUnauthorized: autherr.KindSocialProviderRejected,
		http.StatusForbidden:    autherr.KindSocialProviderRejected,
	})
	if err != nil {
		return nil, err
	}
	return data.session()
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	return c.call(ctx, http.MethodPost, "/logout", token, nil, nil, map[int]autherr.Kind{
		// An already-dead token means the server-side session is gone,
		// which is the outcome logout wanted.
		http.StatusUnauthorized: "",
	})
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.call(ctx, http.MethodPost, "/forgot-password", "", body, nil, nil)
}

func (c *HTTPClient) PerformPasswordReset(ctx context.Context, resetToken, newPassword string) error {
	body := map[string]string{"password": newPassword}
	return c.call(ctx, http.MethodPost, "/reset-password/"+url.PathEscape(resetToken), "", body, nil, map[int]autherr.Kind{
		http.StatusUnauthorized:        autherr.KindTokenExpired,
		http.StatusGone:                autherr.KindTokenExpired,
		http.StatusNotFound:            autherr.KindTokenExpired,
		http.StatusUnprocessableEntity: autherr.KindValidationFailed,
	})
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// call performs one round-trip: encode body, send with correlation id and
// optional bearer token, map the status code through kinds, decode the data
// payload into out. kinds entries with an empty Kind mark the status as
// success. Unmapped non-2xx statuses become KindUnknown; transport errors
// become KindNetworkFailure.
func (c *HTTPClient) call(ctx context.Context, method, path, token string, body, out any, kinds map[int]autherr.Kind) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return autherr.Wrap(autherr.KindUnknown, "encoding request", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+basePath+path, reader)
	if err != nil {
		return autherr.Wrap(autherr.KindUnknown, "building request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return autherr.Wrap(autherr.KindNetworkFailure, "identity service unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return autherr.Wrap(autherr.KindNetworkFailure, "reading response", err)
	}

	var env envelope
	if len(raw) > 0 {
		// A malformed body on an error status still maps below; only a
		// success status with an undecodable body is a hard failure.
		_ = json.Unmarshal(raw, &env)
	}

	if kind, ok := c.classify(resp.StatusCode, kinds); !ok {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return autherr.New(kind, msg)
	}

	if out == nil {
		return nil
	}
	if env.Data == nil {
		return autherr.New(autherr.KindUnknown, "empty response payload")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return autherr.Wrap(autherr.KindUnknown, "decoding response", err)
	}
	return nil
}

// classify resolves a status code to (kind, ok). ok=true means success.
func (c *HTTPClient) classify(status int, kinds map[int]autherr.Kind) (autherr.Kind, bool) {
	if status >= 200 && status < 300 {
		return "", true
	}
	if kind, ok := kinds[status]; ok {
		if kind == "" {
			return "", true
		}
		return kind, false
	}
	return autherr.KindUnknown, false
}

var _ Identity = (*HTTPClient)(nil)
