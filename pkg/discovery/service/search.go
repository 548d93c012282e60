package service

import (
	"context"
	"strings"

	"github.com/chainsafe/vault-discovery/pkg/discovery"
	"github.com/chainsafe/vault-discovery/pkg/vault"
	"github.com/chainsafe/vault-discovery/pkg/vault/filter"
)

func (s *discoveryService) Search(ctx context.Context, query string, limit int) ([]*vault.Vault, error) {
	return s.SearchVaults(ctx, discovery.SearchOptions{Query: query, Limit: limit})
}

// SearchVaults fetches one batch of vaults, ordered by TVL, and keeps those whose
// name, symbol, asset symbol or asset name contains the query, ignoring case.
// Offset and limit apply to the matches.
func (s *discoveryService) SearchVaults(ctx context.Context, opts discovery.SearchOptions) ([]*vault.Vault, error) {
	q := strings.ToLower(strings.TrimSpace(opts.Query))
	if q == "" {
		return nil, &vault.InvalidFilterError{Field: "query", Reason: "must not be empty"}
	}
	if opts.Offset < 0 {
		return nil, &vault.InvalidFilterError{Field: "offset", Reason: "must not be negative"}
	}
	limit := orDefault(opts.Limit, DefaultSearchLimit)
	if limit < 0 {
		return nil, &vault.InvalidFilterError{Field: "limit", Reason: "must not be negative"}
	}

	vaults, err := s.GetVaults(ctx, filter.Options{
		ChainIDs: opts.Chains,
		Limit:    filter.MaxLimit,
	})
	if err != nil {
		return nil, err
	}

	matched := make([]*vault.Vault, 0)
	for _, v := range vaults {
		if containsFold(v.Name, q) ||
			containsFold(v.Symbol, q) ||
			containsFold(v.Asset.Symbol, q) ||
			containsFold(v.Asset.Name, q) {
			matched = append(matched, v)
		}
	}

	if opts.Offset >= len(matched) {
		return []*vault.Vault{}, nil
	}
	return truncate(matched[opts.Offset:], limit)
}

func (s *discoveryService) BestVaultsForAsset(ctx context.Context, assetSymbol string, limit int) ([]*vault.Vault, error) {
	return s.bestForAsset(ctx, assetSymbol, nil, orDefault(limit, DefaultBestLimit))
}

// bestForAsset returns the highest-yield non-idle vaults holding assetSymbol,
// optionally scoped to one chain. Symbols match exactly, ignoring case.
func (s *discoveryService) bestForAsset(ctx context.Context, assetSymbol string, chainID *int64, limit int) ([]*vault.Vault, error) {
	symbol := strings.TrimSpace(assetSymbol)
	if symbol == "" {
		return nil, &vault.InvalidFilterError{Field: "assetSymbol", Reason: "must not be empty"}
	}
	if limit < 0 {
		return nil, &vault.InvalidFilterError{Field: "limit", Reason: "must not be negative"}
	}

	vaults, err := s.GetVaults(ctx, filter.Options{
		ChainID:     chainID,
		MinTVL:      filter.Float64(bestMinTVL),
		ExcludeIdle: true,
		SortBy:      filter.SortByAPY,
		SortOrder:   filter.Desc,
		Limit:       filter.MaxLimit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]*vault.Vault, 0, min(limit, len(vaults)))
	for _, v := range vaults {
		if len(out) == limit {
			break
		}
		if v.HasAssetSymbol(symbol) {
			out = append(out, v)
		}
	}
	return out, nil
}
