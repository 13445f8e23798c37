package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/chainsafe/marketplace-favorites/pkg/config"
)

// NewServer builds the favorites HTTP server for handler. Every request is
// bounded by cfg.RequestTimeout and answered with 504 once it runs out.
func NewServer(handler http.Handler, cfg *config.ServerConfig) *http.Server {
	if cfg.RequestTimeout > 0 {
		handler = middleware.Timeout(cfg.RequestTimeout)(handler)
	}
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// ServeAndWait binds the address of cfg and serves handler until ctx is done,
// then drains in-flight requests for at most cfg.ShutdownTimeout.
func ServeAndWait(ctx context.Context, handler http.Handler, logger *zap.Logger, cfg *config.ServerConfig) error {
	srv := NewServer(handler, cfg)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}
	return Serve(ctx, ln, srv, logger, cfg)
}

// Serve runs srv on ln until ctx is done or the server fails.
func Serve(ctx context.Context, ln net.Listener, srv *http.Server, logger *zap.Logger, cfg *config.ServerConfig) error {
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()
	logger.Info("HTTP server listening", zap.Stringer("address", ln.Addr()))

	select {
	case err := <-served:
		// Serve only returns before Shutdown when it fails.
		logger.Error("HTTP server error", zap.Error(err))
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Draining HTTP server", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := <-served; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}

	logger.Info("HTTP server stopped")
	return nil
}
