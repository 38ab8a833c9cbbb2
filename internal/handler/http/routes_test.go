package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAccountsServer runs the full router over a fresh in-memory SQLite store.
func newAccountsServer(t *testing.T) *httptest.Server {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	h := NewHandler(service.NewServices(storages, testConfig, logger.Nop()), testConfig, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

type apiResponse struct {
	status  int
	body    string
	cookies []*http.Cookie
}

func call(t *testing.T, srv *httptest.Server, method, path, body string, prepare ...func(*http.Request)) apiResponse {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, p := range prepare {
		p(req)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return apiResponse{status: resp.StatusCode, body: string(raw), cookies: resp.Cookies()}
}

func sessionFrom(t *testing.T, resp apiResponse) *http.Cookie {
	t.Helper()
	for _, c := range resp.cookies {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("no %q cookie in response", sessionCookieName)
	return nil
}

func TestRoutes_AccountLifecycle(t *testing.T) {
	srv := newAccountsServer(t)

	signup := call(t, srv, http.MethodPost, "/auth/signup", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, signup.status)
	assert.JSONEq(t, `{"id":1,"email":"a@x.com"}`, signup.body)

	session := sessionFrom(t, signup)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, "/", session.Path)
	assert.Equal(t, 3600, session.MaxAge)

	withSession := func(r *http.Request) { r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session.Value}) }

	login := call(t, srv, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, login.status)
	assert.JSONEq(t, `{"id":1,"email":"a@x.com"}`, login.body)
	sessionFrom(t, login)

	me := call(t, srv, http.MethodGet, "/me", "", withSession)
	require.Equal(t, http.StatusOK, me.status)
	assert.Contains(t, me.body, `"email":"a@x.com"`)

	got := call(t, srv, http.MethodGet, "/users/1", "", withSession)
	require.Equal(t, http.StatusOK, got.status)
	var user map[string]any
	require.NoError(t, json.Unmarshal([]byte(got.body), &user))
	assert.Equal(t, float64(1), user["id"])
	assert.Contains(t, user, "createdAt")
	assert.NotContains(t, user, "passwordHash")
	assert.NotContains(t, got.body, "$2a$")

	created := call(t, srv, http.MethodPost, "/users", `{"email":"b@x.com","password":"secret2"}`, withSession)
	require.Equal(t, http.StatusCreated, created.status)
	assert.Contains(t, created.body, `"id":2`)

	updated := call(t, srv, http.MethodPatch, "/users/2", `{"email":"c@x.com"}`, withSession)
	require.Equal(t, http.StatusOK, updated.status)
	assert.Contains(t, updated.body, `"email":"c@x.com"`)

	conflict := call(t, srv, http.MethodPatch, "/users/2", `{"email":"a@x.com"}`, withSession)
	assert.Equal(t, http.StatusBadRequest, conflict.status)
	assert.JSONEq(t, `{"error":"email already exists"}`, conflict.body)

	list := call(t, srv, http.MethodGet, "/users", "", withSession)
	require.Equal(t, http.StatusOK, list.status)
	var users []map[string]any
	require.NoError(t, json.Unmarshal([]byte(list.body), &users))
	assert.Len(t, users, 2)

	first := call(t, srv, http.MethodDelete, "/users/2", "", withSession)
	assert.Equal(t, http.StatusNoContent, first.status)
	assert.Empty(t, first.body)

	second := call(t, srv, http.MethodDelete, "/users/2", "", withSession)
	assert.Equal(t, http.StatusNotFound, second.status)
	assert.JSONEq(t, `{"error":"user not found"}`, second.body)
}

func TestRoutes_DuplicateSignup(t *testing.T) {
	srv := newAccountsServer(t)

	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/auth/signup", `{"email":"a@x.com","password":"secret1"}`).status)

	dup := call(t, srv, http.MethodPost, "/auth/signup", `{"email":"a@x.com","password":"other12"}`)
	assert.Equal(t, http.StatusBadRequest, dup.status)
	assert.JSONEq(t, `{"error":"email already exists"}`, dup.body)
	assert.Empty(t, dup.cookies)
}

func TestRoutes_LoginFailuresAreIndistinguishable(t *testing.T) {
	srv := newAccountsServer(t)
	require.Equal(t, http.StatusCreated, call(t, srv, http.MethodPost, "/auth/signup", `{"email":"a@x.com","password":"secret1"}`).status)

	wrongPassword := call(t, srv, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"wrong12"}`)
	unknownEmail := call(t, srv, http.MethodPost, "/auth/login", `{"email":"nobody@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.status)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.status)
	assert.Equal(t, wrongPassword.body, unknownEmail.body)
	assert.JSONEq(t, `{"error":"invalid email or password"}`, wrongPassword.body)
	assert.Empty(t, wrongPassword.cookies)
	assert.Empty(t, unknownEmail.cookies)
}

func TestRoutes_BearerHeader(t *testing.T) {
	srv := newAccountsServer(t)

	signup := call(t, srv, http.MethodPost, "/auth/signup", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, signup.status)
	token := sessionFrom(t, signup).Value

	me := call(t, srv, http.MethodGet, "/me", "", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, me.status)

	forged := call(t, srv, http.MethodGet, "/me", "", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token+"x")
	})
	assert.Equal(t, http.StatusUnauthorized, forged.status)
	assert.JSONEq(t, `{"error":"unauthorized"}`, forged.body)
}

func TestRoutes_ValidationAndPathErrors(t *testing.T) {
	srv := newAccountsServer(t)
	signup := call(t, srv, http.MethodPost, "/auth/signup", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, signup.status)
	token := sessionFrom(t, signup).Value
	withSession := func(r *http.Request) { r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token}) }

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"signup bad email", http.MethodPost, "/auth/signup", `{"email":"nope","password":"secret1"}`, http.StatusBadRequest},
		{"signup short password", http.MethodPost, "/auth/signup", `{"email":"z@x.com","password":"123"}`, http.StatusBadRequest},
		{"signup malformed json", http.MethodPost, "/auth/signup", `{"email":`, http.StatusBadRequest},
		{"non-numeric id", http.MethodGet, "/users/abc", "", http.StatusBadRequest},
		{"zero id", http.MethodGet, "/users/0", "", http.StatusBadRequest},
		{"missing user", http.MethodGet, "/users/42", "", http.StatusNotFound},
		{"empty patch", http.MethodPatch, "/users/1", `{}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, srv, tt.method, tt.path, tt.body, withSession)
			assert.Equal(t, tt.wantStatus, resp.status)

			var body map[string]string
			require.NoError(t, json.Unmarshal([]byte(resp.body), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestRoutes_LogoutAndHealth(t *testing.T) {
	srv := newAccountsServer(t)

	health := call(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.status)
	assert.JSONEq(t, `{"status":"ok"}`, health.body)

	logout := call(t, srv, http.MethodPost, "/auth/logout", "")
	assert.Equal(t, http.StatusNoContent, logout.status)
	cleared := sessionFrom(t, logout)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}
