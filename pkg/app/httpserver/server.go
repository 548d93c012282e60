// Package httpserver runs an *http.Server until its context ends and then drains it.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 30 * time.Second

// ServeAndWait binds srv.Addr and serves until ctx is canceled or the server fails.
// A bind failure is returned immediately.
func ServeAndWait(ctx context.Context, logger *zap.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	if srv == nil {
		return fmt.Errorf("nil http server")
	}
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	return Serve(ctx, logger, srv, ln, shutdownTimeout)
}

// Serve serves srv on ln until ctx is canceled or the server fails, then shuts it
// down within shutdownTimeout. Requests in flight at cancellation are allowed to
// complete. It returns the serve error, if any, or the shutdown error.
func Serve(ctx context.Context, logger *zap.Logger, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	if srv == nil {
		return fmt.Errorf("nil http server")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("address", ln.Addr().String()))
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received", zap.String("address", ln.Addr().String()))
	case serveErr = <-errCh:
		if serveErr != nil {
			logger.Error("HTTP server error", zap.Error(serveErr))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down HTTP server", zap.Duration("timeout", shutdownTimeout))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
		return fmt.Errorf("http shutdown: %w", err)
	}

	if serveErr != nil {
		return fmt.Errorf("http server failed: %w", serveErr)
	}
	logger.Info("HTTP server stopped")
	return nil
}
