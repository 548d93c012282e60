package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/discovery"
	"github.com/chainsafe/vault-discovery/pkg/vault"
	"github.com/chainsafe/vault-discovery/pkg/vault/filter"
)

const (
	// apyBatch leaves room for idle vaults dropped by the residual filter.
	apyBatch = 50

	chainFanOut = 3
)

// ChainSummary describes all vaults on a chain. Vault counts and TVL cover at most
// filter.MaxLimit vaults, the largest by TVL.
func (s *discoveryService) ChainSummary(ctx context.Context, chainID int64) (*discovery.Summary, error) {
	if err := chains.MustSupport(chainID); err != nil {
		return nil, err
	}

	var byTVL, byAPY []*vault.Vault

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byTVL, err = s.GetVaults(gctx, filter.Options{
			ChainID:   filter.Int64(chainID),
			SortBy:    filter.SortByTotalAssetsUSD,
			SortOrder: filter.Desc,
			Limit:     filter.MaxLimit,
		})
		return err
	})
	g.Go(func() error {
		var err error
		byAPY, err = s.GetVaults(gctx, filter.Options{
			ChainID:     filter.Int64(chainID),
			ExcludeIdle: true,
			SortBy:      filter.SortByNetAPY,
			SortOrder:   filter.Desc,
			Limit:       apyBatch,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, v := range byTVL {
		total = total.Add(decimal.NewFromFloat(v.Metrics.TotalAssetsUSD))
	}

	return &discovery.Summary{
		ChainID:        chainID,
		ChainName:      chains.Name(chainID),
		TotalVaults:    len(byTVL),
		TotalTVL:       total.InexactFloat64(),
		TopVaultsByTVL: head(byTVL, summaryTopN),
		TopVaultsByAPY: head(byAPY, summaryTopN),
		AssetBreakdown: assetBreakdown(byTVL),
	}, nil
}

// SupportedChainsWithVaults counts the vaults of every supported chain, omitting
// chains without any, in ascending chain id order.
func (s *discoveryService) SupportedChainsWithVaults(ctx context.Context) ([]discovery.ChainVaultCount, error) {
	ids := chains.SupportedIDs()
	counts := make([]int, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(chainFanOut)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			vaults, err := s.GetVaults(gctx, filter.Options{
				ChainID: filter.Int64(id),
				Limit:   filter.MaxLimit,
			})
			if err != nil {
				return err
			}
			counts[i] = len(vaults)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]discovery.ChainVaultCount, 0, len(ids))
	for i, id := range ids {
		if counts[i] == 0 {
			continue
		}
		out = append(out, discovery.ChainVaultCount{
			ChainID:    id,
			Name:       chains.Name(id),
			VaultCount: counts[i],
		})
	}
	return out, nil
}

type assetAgg struct {
	count     int
	tvl       decimal.Decimal
	maxNetAPY float64
}

func assetBreakdown(vaults []*vault.Vault) []discovery.AssetBreakdown {
	aggs := make(map[string]*assetAgg)
	for _, v := range vaults {
		a, ok := aggs[v.Asset.Symbol]
		if !ok {
			a = &assetAgg{maxNetAPY: v.Metrics.NetAPY}
			aggs[v.Asset.Symbol] = a
		}
		a.count++
		a.tvl = a.tvl.Add(decimal.NewFromFloat(v.Metrics.TotalAssetsUSD))
		a.maxNetAPY = max(a.maxNetAPY, v.Metrics.NetAPY)
	}

	out := make([]discovery.AssetBreakdown, 0, len(aggs))
	for symbol, a := range aggs {
		out = append(out, discovery.AssetBreakdown{
			Symbol:    symbol,
			Count:     a.count,
			TotalTVL:  a.tvl.InexactFloat64(),
			MaxNetAPY: a.maxNetAPY,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalTVL != out[j].TotalTVL {
			return out[i].TotalTVL > out[j].TotalTVL
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

func head(vaults []*vault.Vault, n int) []*vault.Vault {
	if len(vaults) > n {
		return vaults[:n]
	}
	return vaults
}
