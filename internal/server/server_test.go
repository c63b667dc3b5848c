package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
}

func TestNewServer_Validation(t *testing.T) {
	_, err := NewServer("test", nil, "127.0.0.1:0", logger.Nop())
	assert.ErrorIs(t, err, ErrNoHandler)

	_, err = NewServer("test", okHandler(), "", logger.Nop())
	assert.ErrorIs(t, err, ErrNoAddress)

	_, err = NewServer("test", okHandler(), "not-an-address", logger.Nop())
	assert.Error(t, err)
}

func TestServer_RunServer_ServesUntilCancelled(t *testing.T) {
	srv, err := NewServer("test", okHandler(), "127.0.0.1:0", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}
}

func TestServer_Shutdown_StopsRunServer(t *testing.T) {
	srv, err := NewServer("test", okHandler(), "127.0.0.1:0", logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.RunServer(context.Background()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + srv.Addr() + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, time.Second, 10*time.Millisecond)

	srv.Shutdown()
	srv.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}
