package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeLoggedRequest creates a test request whose context logger writes to buf,
// the same way withTraceID places it.
func makeLoggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	tests := []struct {
		name      string
		method    string
		path      string
		handler   http.HandlerFunc
		wantLevel string
		wantCode  float64
		wantSize  float64
	}{
		{
			name:   "created with body",
			method: http.MethodPost,
			path:   "/users",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":1}`))
			},
			wantLevel: "info",
			wantCode:  http.StatusCreated,
			wantSize:  8,
		},
		{
			name:      "implicit 200 without writes",
			method:    http.MethodGet,
			path:      "/health",
			handler:   func(w http.ResponseWriter, r *http.Request) {},
			wantLevel: "info",
			wantCode:  http.StatusOK,
		},
		{
			name:   "client error stays info",
			method: http.MethodGet,
			path:   "/users/99",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantLevel: "info",
			wantCode:  http.StatusNotFound,
		},
		{
			name:   "server error is logged as error",
			method: http.MethodDelete,
			path:   "/users/1",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantLevel: "error",
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler(nil)

			rr := httptest.NewRecorder()
			h.withLogging(tt.handler).ServeHTTP(rr, makeLoggedRequest(tt.method, tt.path, &buf))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.wantCode, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
			assert.Contains(t, entry, "remote_addr")
		})
	}
}
