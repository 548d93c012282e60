package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/vault-discovery/internal/metrics"
	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/discovery"
	"github.com/chainsafe/vault-discovery/pkg/fallback"
	"github.com/chainsafe/vault-discovery/pkg/vault"
	"github.com/chainsafe/vault-discovery/pkg/vault/filter"
)

const (
	liveSource     = "morpho"
	fallbackSource = "fallback"

	fallbackLookupTimeout = 5 * time.Second
)

// ResolveVaultAddress returns the highest-yield vault for asset on chain.
//
// The chain is validated before any network call. When the upstream query fails the
// fallback registry is consulted and a degraded resolution is returned; if it has no
// entry the upstream error is returned as is.
func (s *discoveryService) ResolveVaultAddress(ctx context.Context, asset, chain string) (*discovery.Resolution, error) {
	chainID, err := chains.Resolve(chain)
	if err != nil {
		return nil, err
	}
	symbol := strings.ToUpper(strings.TrimSpace(asset))
	if symbol == "" {
		return nil, &vault.InvalidFilterError{Field: "asset", Reason: "must not be empty"}
	}

	vaults, err := s.bestForAsset(ctx, symbol, filter.Int64(chainID), 1)
	if err != nil {
		if !isUpstreamFailure(err) {
			return nil, err
		}
		return s.resolveFallback(ctx, symbol, chainID, err)
	}

	if len(vaults) == 0 {
		metrics.Resolutions.WithLabelValues(string(discovery.NotFound)).Inc()
		return &discovery.Resolution{
			Kind:    discovery.NotFound,
			ChainID: chainID,
			Asset:   symbol,
			Source:  liveSource,
		}, nil
	}

	v := vaults[0]
	metrics.Resolutions.WithLabelValues(string(discovery.Live)).Inc()
	return &discovery.Resolution{
		Kind:    discovery.Live,
		Address: v.Address,
		ChainID: chainID,
		Asset:   symbol,
		Name:    v.Name,
		Source:  liveSource,
	}, nil
}

func (s *discoveryService) resolveFallback(ctx context.Context, symbol string, chainID int64, cause error) (*discovery.Resolution, error) {
	if s.registry == nil {
		return nil, cause
	}

	// the request context may already be past its deadline
	lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fallbackLookupTimeout)
	defer cancel()

	entry, err := s.registry.Lookup(lookupCtx, chainID, symbol)
	if err != nil {
		if !errors.Is(err, fallback.ErrNotFound) {
			s.logger.Error("Fallback lookup failed",
				zap.Int64("chain_id", chainID),
				zap.String("asset", symbol),
				zap.Error(err))
		}
		return nil, cause
	}
	if entry == nil || chains.IsZeroAddress(entry.Address) {
		return nil, cause
	}

	s.logger.Warn("Serving fallback vault address",
		zap.Int64("chain_id", chainID),
		zap.String("asset", symbol),
		zap.String("address", entry.Address),
		zap.Time("updated_at", entry.UpdatedAt),
		zap.NamedError("upstream_error", cause))
	metrics.FallbackResolutions.WithLabelValues(chains.Name(chainID), symbol).Inc()
	metrics.Resolutions.WithLabelValues(string(discovery.Fallback)).Inc()

	return &discovery.Resolution{
		Kind:    discovery.Fallback,
		Address: entry.Address,
		ChainID: chainID,
		Asset:   symbol,
		Name:    entry.Label,
		Source:  fallbackSource,
	}, nil
}

// isUpstreamFailure reports whether err means the remote service could not answer.
// Caller cancellation is not an upstream failure.
func isUpstreamFailure(err error) bool {
	var rqErr *vault.RemoteQueryError
	return errors.As(err, &rqErr) || errors.Is(err, context.DeadlineExceeded)
}
