package fallback

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/vault-discovery/internal/metrics"
	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/discovery"
)

const refreshTimeout = 2 * time.Minute

// Resolver resolves the live best vault for an asset on a chain.
type Resolver interface {
	ResolveVaultAddress(ctx context.Context, asset, chain string) (*discovery.Resolution, error)
}

// Pair is one (chain, asset) combination kept fresh by the Refresher.
type Pair struct {
	ChainID     int64
	AssetSymbol string
}

// Refresher periodically writes live resolutions into the fallback store so the
// degraded path serves recent addresses.
type Refresher struct {
	resolver Resolver
	writer   Writer
	pairs    []Pair
	logger   *zap.Logger

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewRefresher creates a new Refresher
func NewRefresher(resolver Resolver, writer Writer, pairs []Pair, logger *zap.Logger) *Refresher {
	return &Refresher{
		resolver: resolver,
		writer:   writer,
		pairs:    pairs,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// RefreshAll resolves every configured pair and upserts the live results.
// Fallback and not-found resolutions are never written back.
// It returns the number of entries written and the first error encountered.
func (r *Refresher) RefreshAll(ctx context.Context) (int, error) {
	start := time.Now()
	var (
		written  int
		firstErr error
	)

	for _, p := range r.pairs {
		res, err := r.resolver.ResolveVaultAddress(ctx, p.AssetSymbol, strconv.FormatInt(p.ChainID, 10))
		if err != nil {
			r.logger.Warn("Failed to resolve fallback pair",
				zap.Int64("chain_id", p.ChainID),
				zap.String("asset", p.AssetSymbol),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if res.Kind != discovery.Live || !chains.IsValidAddress(res.Address) {
			continue
		}

		err = r.writer.Upsert(ctx, &Entry{
			ChainID:     res.ChainID,
			AssetSymbol: p.AssetSymbol,
			Label:       res.Name,
			Address:     res.Address,
			UpdatedAt:   time.Now().UTC(),
		})
		if err != nil {
			r.logger.Error("Failed to store fallback vault",
				zap.Int64("chain_id", p.ChainID),
				zap.String("asset", p.AssetSymbol),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		written++
	}

	status := "ok"
	if firstErr != nil {
		status = "error"
	}
	metrics.FallbackRefreshes.WithLabelValues(status).Inc()

	r.logger.Info("Fallback refresh completed",
		zap.Int("pairs", len(r.pairs)),
		zap.Int("written", written),
		zap.Duration("duration", time.Since(start)))

	return written, firstErr
}

// Start runs RefreshAll once immediately and then on every tick of interval.
// A non-positive interval disables the worker.
func (r *Refresher) Start(interval time.Duration) {
	if interval <= 0 || len(r.pairs) == 0 {
		r.logger.Info("Fallback refresher disabled")
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		r.logger.Info("Started periodic fallback refresh", zap.Duration("interval", interval))
		r.refreshOnce()

		for {
			select {
			case <-ticker.C:
				r.refreshOnce()
			case <-r.stopCh:
				r.logger.Info("Stopping periodic fallback refresh")
				return
			}
		}
	}()
}

func (r *Refresher) refreshOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	// cancel the in-flight refresh when Stop is called
	go func() {
		select {
		case <-r.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if _, err := r.RefreshAll(ctx); err != nil {
		r.logger.Error("Periodic fallback refresh failed", zap.Error(err))
	}
}

// Stop stops the periodic refresh and waits for it to exit. Safe to call once.
func (r *Refresher) Stop() {
	close(r.stopCh)
	r.wg.Wait()
}
