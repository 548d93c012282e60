// Package api implements app.Runner for the discovery API server process.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/vault-discovery/pkg/app"
	apphttp "github.com/chainsafe/vault-discovery/pkg/app/http"
	"github.com/chainsafe/vault-discovery/pkg/app/httpserver"
	"github.com/chainsafe/vault-discovery/pkg/auth"
	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/config"
	"github.com/chainsafe/vault-discovery/pkg/discovery/service"
	"github.com/chainsafe/vault-discovery/pkg/fallback"
	"github.com/chainsafe/vault-discovery/pkg/morpho"
	"github.com/chainsafe/vault-discovery/pkg/pgutil"
)

const (
	dbConnectTimeout      = 30 * time.Second
	rateLimitCleanupEvery = 5 * time.Minute
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

var _ app.Runner = (*Server)(nil)

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting vault discovery API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("morpho_endpoint", cfg.Morpho.Endpoint),
		zap.String("fallback_source", cfg.Fallback.Source),
	)

	client := morpho.New(cfg.Morpho.Endpoint,
		morpho.WithLogger(logger),
		morpho.WithHTTPClient(&http.Client{Timeout: cfg.Morpho.Timeout}),
		morpho.WithUserAgent(cfg.Morpho.UserAgent),
	)

	registry, store, closeDB, err := s.openRegistry(ctx, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	discoveryService := service.NewService(client, registry, logger)

	stopRefresh := s.startRefresher(discoveryService, store, logger)
	// stopped explicitly after the servers return; the defer covers early exits
	defer stopRefresh()

	limiter := apphttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, logger)
	if cfg.RateLimit.Enabled {
		limiter.StartCleanup(ctx, rateLimitCleanupEvery)
	}

	router := s.setupRouter(service.NewLog(discoveryService, logger), store, limiter, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apphttp.ServeAndWait(gctx, router, logger, &cfg.Server)
	})
	if cfg.Metrics.Enabled {
		g.Go(func() error {
			return httpserver.ServeAndWait(gctx, logger, newMetricsServer(&cfg.Metrics), cfg.Server.ShutdownTimeout)
		})
	}
	err = g.Wait()

	stopRefresh()

	return err
}

// openRegistry returns the fallback registry and, for the postgres source, the
// writable store backing it.
func (s *Server) openRegistry(ctx context.Context, logger *zap.Logger) (fallback.Registry, fallback.Store, func(), error) {
	if !s.cfg.UsesPostgres() {
		logger.Info("Using static fallback registry", zap.Int("entries", len(fallback.StaticEntries())))
		return fallback.NewStaticRegistry(), nil, func() {}, nil
	}

	db, err := s.openDB(ctx, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	store := fallback.NewStore(db)
	return store, store, func() { _ = db.Close() }, nil
}

func (s *Server) openDB(ctx context.Context, logger *zap.Logger) (*bun.DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
	defer cancel()

	db, err := pgutil.ConnectDB(connectCtx, &s.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("host", s.cfg.Database.Host),
		zap.String("database", s.cfg.Database.Database),
	)
	return db, nil
}

func (s *Server) startRefresher(resolver fallback.Resolver, store fallback.Store, logger *zap.Logger) func() {
	if store == nil || s.cfg.Fallback.RefreshInterval <= 0 {
		return func() {}
	}

	pairs := make([]fallback.Pair, 0, len(s.cfg.Fallback.Assets))
	for _, a := range s.cfg.Fallback.Assets {
		chainID, err := chains.Resolve(a.Chain)
		if err != nil {
			logger.Warn("Skipping fallback asset on unsupported chain",
				zap.String("chain", a.Chain),
				zap.String("asset", a.Asset))
			continue
		}
		pairs = append(pairs, fallback.Pair{ChainID: chainID, AssetSymbol: a.Asset})
	}

	refresher := fallback.NewRefresher(resolver, store, pairs, logger)
	logger.Info("Starting fallback refresher",
		zap.Duration("interval", s.cfg.Fallback.RefreshInterval),
		zap.Int("pairs", len(pairs)))
	refresher.Start(s.cfg.Fallback.RefreshInterval)

	return refresher.Stop
}

func (s *Server) setupRouter(
	discoveryService service.Service,
	store fallback.Store,
	limiter *apphttp.RateLimiter,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		if s.cfg.RateLimit.Enabled {
			r.Use(limiter.Handler)
		}
		service.RegisterRoutes(r, discoveryService, logger)
	})

	if store != nil && s.cfg.AdminEnabled() {
		validator := auth.NewJWTValidator(s.cfg.Auth.JWKSURL, s.cfg.Auth.Issuer, s.cfg.Auth.Audience)
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.Middleware(validator, logger))
			fallback.RegisterAdminRoutes(r, store, logger)
		})
		logger.Info("Operator endpoints enabled", zap.String("jwks_url", s.cfg.Auth.JWKSURL))
	}

	return r
}

func newMetricsServer(cfg *config.MetricsConfig) *http.Server {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
