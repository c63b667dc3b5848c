// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

// NewServer binds address and returns a Server that serves handler on it.
// The listener is opened immediately so that [Server.Addr] reports the
// resolved port when address ends in ":0".
func NewServer(name string, handler http.Handler, address string, log *logger.Logger) (Server, error) {
	if log == nil {
		log = logger.Nop()
	}
	if handler == nil {
		return nil, ErrNoHandler
	}
	if address == "" {
		return nil, ErrNoAddress
	}

	log.Info().Str("server", name).Msg("creating new server...")
	httpSrv, err := newHTTPServer(name, handler, address, log)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	return &server{httpServer: httpSrv, logger: log}, nil
}

func (s *server) Addr() string {
	return s.httpServer.listener.Addr().String()
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(s.httpServer.shutdown)
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case err := <-serveErr:
		s.Shutdown()
		return err
	case <-ctx.Done():
		s.Shutdown()
	}

	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Str("server", s.httpServer.name).Msg("server Shutdown gracefully")
	return nil
}
