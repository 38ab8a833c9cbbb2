package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{name: "success", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"validation failed: email: must be a valid email address."}`, wantErr: ErrBadRequest, wantMessage: "validation failed: email: must be a valid email address."},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"unauthorized"}`, wantErr: ErrUnauthorized, wantMessage: "unauthorized"},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"user not found"}`, wantErr: ErrNotFound, wantMessage: "user not found"},
		{name: "internal", status: http.StatusInternalServerError, body: `{"error":"Internal Server Error"}`, wantErr: ErrInternalServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable, wantMessage: "Service Unavailable"},
		{name: "plain text body", status: http.StatusTeapot, body: "short and stout", wantMessage: "http 418: short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a, err := NewHTTPAccountsAdapter(srv.URL, time.Second, logger.Nop())
			require.NoError(t, err)

			resp, err := a.(*httpAccountsAdapter).client.R().Get("/")
			require.NoError(t, err)

			got := mapHTTPError(resp)
			if tt.wantErr == nil && tt.wantMessage == "" {
				assert.NoError(t, got)
				return
			}

			require.Error(t, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, got, tt.wantErr)
			}
			if tt.wantMessage != "" {
				assert.Contains(t, got.Error(), tt.wantMessage)
			}
		})
	}
}
