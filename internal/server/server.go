// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

// Package server runs the HTTP front of the application with graceful
// shutdown tied to context cancellation.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/mvelasco/cryptofolio/internal/config"
	"github.com/mvelasco/cryptofolio/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server wraps http.Server with context-driven lifecycle management.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer builds a Server for the given handler. cfg.RequestTimeout, when
// set, bounds both read and write per request.
func NewServer(cfg config.Server, handler http.Handler, logger *logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully. Returns the listen error if the server fails
// to start.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve is like Run but serves on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.logger.Info().Str("address", listener.Addr().String()).Msg("http server starting")

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("http server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
