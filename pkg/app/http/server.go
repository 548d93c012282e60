package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/chainsafe/vault-discovery/pkg/app/httpserver"
	"github.com/chainsafe/vault-discovery/pkg/config"
)

// NewServer builds an *http.Server for handler from the server config.
func NewServer(handler http.Handler, cfg *config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// ServeAndWait serves handler with the given config until ctx is canceled or the
// server fails, then shuts down gracefully within cfg.ShutdownTimeout.
func ServeAndWait(ctx context.Context, handler http.Handler, logger *zap.Logger, cfg *config.ServerConfig) error {
	if handler == nil {
		return fmt.Errorf("nil handler")
	}
	if cfg == nil {
		return fmt.Errorf("nil server config")
	}
	return httpserver.ServeAndWait(ctx, logger, NewServer(handler, cfg), cfg.ShutdownTimeout)
}
