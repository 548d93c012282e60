package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/vault-discovery/internal/metrics"
	"github.com/chainsafe/vault-discovery/pkg/discovery"
	"github.com/chainsafe/vault-discovery/pkg/morpho"
	"github.com/chainsafe/vault-discovery/pkg/vault"
	"github.com/chainsafe/vault-discovery/pkg/vault/filter"
	"github.com/chainsafe/vault-discovery/pkg/vault/record"
)

// Query builds the predicate, issues a single upstream request, maps the records
// and applies the residual filter. Vaults keep the upstream order.
//
// Records that fail to map are skipped and counted. Filter and upstream errors are
// returned unchanged.
func (s *discoveryService) Query(ctx context.Context, opts filter.Options) (*discovery.Result, error) {
	p, err := filter.Build(opts)
	if err != nil {
		return nil, err
	}

	raw, err := s.fetcher.FetchVaults(ctx, morpho.NewRequest(p))
	if err != nil {
		return nil, err
	}

	res := &discovery.Result{Vaults: make([]*vault.Vault, 0, len(raw))}
	for i, rec := range raw {
		v, err := record.Map(rec)
		if err != nil {
			field := "record"
			var mErr *vault.MappingError
			if errors.As(err, &mErr) {
				field = mErr.Field
			}
			metrics.MappingFailures.WithLabelValues(field).Inc()
			s.logger.Warn("Skipping vault record",
				zap.Int("index", i),
				zap.String("field", field),
				zap.Error(err))
			res.Skipped++
			continue
		}
		res.Vaults = append(res.Vaults, v)
	}

	if len(raw) > 0 && res.Skipped == len(raw) {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("all %d vault records returned upstream failed to map", len(raw)))
	}

	res.Vaults = p.Residual.Apply(res.Vaults)
	return res, nil
}
