package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type httpServer struct {
	name     string
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(name string, handler http.Handler, address string, log *logger.Logger) (*httpServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	return &httpServer{
		name: name,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener: listener,
		logger:   log,
	}, nil
}

func (h *httpServer) serve() error {
	h.logger.Info().Str("server", h.name).Str("address", h.listener.Addr().String()).Msg("HTTP server listening")

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("server", h.name).Msg("HTTP server Shutdown")
	}
}
