package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

// sessionCookieName is the cookie the server places the session token in.
const sessionCookieName = "token"

const defaultRequestTimeout = 15 * time.Second

type httpAccountsAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAccountsAdapter constructs the REST implementation of
// [AccountsAdapter]. address may omit the scheme, "http://" is assumed.
// A non-positive timeout falls back to 15s.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPAccountsAdapter(address string, timeout time.Duration, logger *logger.Logger) (AccountsAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		// the session travels as a bearer token, never through a cookie jar
		SetCookieJar(nil)

	return &httpAccountsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAccountsAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAccountsAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [AccountsAdapter]. It POSTs to /auth/signup and keeps
// the token from the session cookie of the response.
func (h *httpAccountsAdapter) Signup(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/signup", credentials)
}

// Login implements [AccountsAdapter]. It POSTs to /auth/login and keeps
// the token from the session cookie of the response.
func (h *httpAccountsAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/login", credentials)
}

func (h *httpAccountsAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&authResp).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token := sessionTokenFromResponse(resp)
	if token == "" {
		return models.AuthResponse{}, ErrNoSessionToken
	}

	h.SetToken(token)
	h.logger.Debug().Int64("user_id", authResp.ID).Str("path", path).Msg("session token stored")

	return authResp, nil
}

// Logout implements [AccountsAdapter].
func (h *httpAccountsAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

// Me implements [AccountsAdapter]. Requires a session token.
func (h *httpAccountsAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListUsers implements [AccountsAdapter]. Requires a session token.
func (h *httpAccountsAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).SetResult(&users).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser implements [AccountsAdapter]. Returns [ErrNotFound] (wrapped) when the
// user does not exist.
func (h *httpAccountsAdapter) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetResult(&user).Get(userPath(userID))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateUser implements [AccountsAdapter]. The password is sent in plaintext
// and hashed by the server.
func (h *httpAccountsAdapter) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser implements [AccountsAdapter]. Only non-nil fields of req are sent.
func (h *httpAccountsAdapter) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Patch(userPath(userID))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// DeleteUser implements [AccountsAdapter].
func (h *httpAccountsAdapter) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.authedRequest(ctx).Delete(userPath(userID))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [AccountsAdapter].
func (h *httpAccountsAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountsAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func userPath(userID int64) string {
	return "/users/" + strconv.FormatInt(userID, 10)
}

func sessionTokenFromResponse(resp *resty.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			return c.Value
		}
	}
	return ""
}
