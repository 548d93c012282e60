package service

import (
	"context"

	"github.com/chainsafe/vault-discovery/pkg/discovery"
	"github.com/chainsafe/vault-discovery/pkg/vault"
	"github.com/chainsafe/vault-discovery/pkg/vault/filter"
)

// Presets returns the pre-configured filters by name.
func Presets() map[discovery.Preset]filter.Options {
	return map[discovery.Preset]filter.Options{
		discovery.PresetHighYield: {
			MinNetAPY:   filter.Float64(5),
			MinTVL:      filter.Float64(100_000),
			ExcludeIdle: true,
			SortBy:      filter.SortByAPY,
			SortOrder:   filter.Desc,
			Limit:       10,
		},
		discovery.PresetStable: {
			WhitelistedOnly: true,
			MinTVL:          filter.Float64(1_000_000),
			ExcludeIdle:     true,
			SortBy:          filter.SortByTotalAssetsUSD,
			SortOrder:       filter.Desc,
		},
		discovery.PresetHighTVL: {
			MinTVL:    filter.Float64(10_000_000),
			SortBy:    filter.SortByTotalAssetsUSD,
			SortOrder: filter.Desc,
			Limit:     10,
		},
	}
}

func (s *discoveryService) VaultsByPreset(ctx context.Context, preset discovery.Preset, overrides filter.Options) ([]*vault.Vault, error) {
	opts, ok := Presets()[preset]
	if !ok {
		return nil, &vault.InvalidFilterError{Field: "preset", Reason: "unknown preset " + string(preset)}
	}
	return s.GetVaults(ctx, opts.Merge(overrides))
}
