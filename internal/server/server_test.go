package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/handler"
	myHTTP "github.com/MKhiriev/go-accounts/internal/handler/http"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers() *handler.Handlers {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}
	return &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, cfg, logger.Nop())}
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		address  string
		wantErr  bool
	}{
		{name: "http handler and address", handlers: newTestHandlers(), address: "127.0.0.1:0"},
		{name: "no address", handlers: newTestHandlers(), address: "", wantErr: true},
		{name: "no http handler", handlers: &handler.Handlers{}, address: "127.0.0.1:0", wantErr: true},
		{name: "nil handlers", handlers: nil, address: "127.0.0.1:0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, config.Server{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				require.ErrorIs(t, err, errNoServersAreCreated)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestRun_ServesUntilContextCancelled(t *testing.T) {
	addr := freeAddress(t)
	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: addr}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Post("http://"+addr+"/auth/logout", "application/json", nil)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestRun_ListenFailure(t *testing.T) {
	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: "not-an-address"}, logger.Nop())
	require.NoError(t, err)

	err = s.(*server).run(context.Background())
	assert.Error(t, err)
}
