// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/MKhiriev/devkit-vault/internal/logger"
)

type server struct {
	address string
	server  *http.Server

	mu       sync.Mutex
	listener net.Listener

	logger *logger.Logger
}

// NewServer returns the bridge server for handler. address must be a
// loopback host:port; port 0 picks a free port.
func NewServer(handler http.Handler, address string, logger *logger.Logger) (Server, error) {
	if err := checkLoopback(address); err != nil {
		return nil, err
	}

	logger.Info().Str("address", address).Msg("creating bridge server...")
	return &server{
		address: address,
		server:  newHTTPServer(handler),
		logger:  logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	// in-flight handlers, such as access requests waiting for the user,
	// observe the shutdown through their request context.
	s.server.BaseContext = func(net.Listener) context.Context { return ctx }

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("launching bridge server")
		serveErr <- s.server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("bridge server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Msg("bridge server shutdown")
		_ = s.server.Close()
	}
	<-serveErr

	s.logger.Info().Msg("bridge server shut down gracefully")
	return nil
}

func (s *server) Addr() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return "", errServerNotStarted
	}
	return s.listener.Addr().String(), nil
}
