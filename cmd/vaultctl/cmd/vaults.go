package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/discovery"
	"github.com/chainsafe/vault-discovery/pkg/discovery/service"
	"github.com/chainsafe/vault-discovery/pkg/vault/filter"
)

type filterFlags struct {
	asset        string
	assetAddress string
	chain        string
	chains       []string
	addresses    []string
	minAPY       float64
	maxAPY       float64
	minTVL       float64
	maxTVL       float64
	minAssets    string
	maxAssets    string
	whitelisted  bool
	excludeIdle  bool
	sortBy       string
	sortOrder    string
	limit        int
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.asset, "asset", "", "underlying asset symbol")
	fs.StringVar(&f.assetAddress, "asset-address", "", "underlying asset address")
	fs.StringVar(&f.chain, "chain", "", "chain name or id")
	fs.StringSliceVar(&f.chains, "chains", nil, "several chain names or ids")
	fs.StringSliceVar(&f.addresses, "address", nil, "vault addresses")
	fs.Float64Var(&f.minAPY, "min-apy", 0, "minimum net APY in percent")
	fs.Float64Var(&f.maxAPY, "max-apy", 0, "maximum net APY in percent")
	fs.Float64Var(&f.minTVL, "min-tvl", 0, "minimum TVL in USD")
	fs.Float64Var(&f.maxTVL, "max-tvl", 0, "maximum TVL in USD")
	fs.StringVar(&f.minAssets, "min-total-assets", "", "minimum raw total assets")
	fs.StringVar(&f.maxAssets, "max-total-assets", "", "maximum raw total assets")
	fs.BoolVar(&f.whitelisted, "whitelisted", false, "only whitelisted vaults")
	fs.BoolVar(&f.excludeIdle, "exclude-idle", false, "drop idle vaults")
	fs.StringVar(&f.sortBy, "sort-by", "", "apy, netApy, totalAssets, totalAssetsUsd or creationTimestamp")
	fs.StringVar(&f.sortOrder, "sort-order", "", "asc or desc")
	fs.IntVar(&f.limit, "limit", 0, "maximum number of vaults")
}

// options only sets the bounds whose flags were given, so an explicit zero is a
// real constraint.
func (f *filterFlags) options(cmd *cobra.Command) (filter.Options, error) {
	fs := cmd.Flags()
	opts := filter.Options{
		AssetSymbol:     f.asset,
		AssetAddress:    f.assetAddress,
		Chain:           f.chain,
		Addresses:       f.addresses,
		WhitelistedOnly: f.whitelisted,
		ExcludeIdle:     f.excludeIdle,
		SortBy:          filter.SortField(f.sortBy),
		Limit:           f.limit,
	}
	if f.sortOrder != "" {
		opts.SortOrder = filter.ParseSortOrder(f.sortOrder)
	}
	ids, err := resolveChains(f.chains)
	if err != nil {
		return filter.Options{}, err
	}
	opts.ChainIDs = ids

	if fs.Changed("min-apy") {
		opts.MinNetAPY = filter.Float64(f.minAPY)
	}
	if fs.Changed("max-apy") {
		opts.MaxNetAPY = filter.Float64(f.maxAPY)
	}
	if fs.Changed("min-tvl") {
		opts.MinTVL = filter.Float64(f.minTVL)
	}
	if fs.Changed("max-tvl") {
		opts.MaxTVL = filter.Float64(f.maxTVL)
	}
	if opts.MinTotalAssets, err = parseAmount("min-total-assets", f.minAssets); err != nil {
		return filter.Options{}, err
	}
	if opts.MaxTotalAssets, err = parseAmount("max-total-assets", f.maxAssets); err != nil {
		return filter.Options{}, err
	}
	return opts, nil
}

func parseAmount(flag, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", flag, raw, err)
	}
	return &d, nil
}

func resolveChains(names []string) ([]int64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := chains.Resolve(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func VaultsCmd(g *globals) *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "vaults",
		Short: "list vaults matching a filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			return g.run(cmd, func(ctx context.Context, svc service.Service) (any, error) {
				return svc.Query(ctx, opts)
			})
		},
	}
	f.bind(cmd)
	return cmd
}

func TopYieldCmd(g *globals) *cobra.Command {
	var (
		limit  int
		minTVL float64
	)
	cmd := &cobra.Command{
		Use:   "top-yield",
		Short: "list the highest yielding non-idle vaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(ctx context.Context, svc service.Service) (any, error) {
				return svc.TopByYield(ctx, limit, minTVL)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", service.DefaultTopLimit, "maximum number of vaults")
	cmd.Flags().Float64Var(&minTVL, "min-tvl", 0, "minimum TVL in USD")
	return cmd
}

func TopSizeCmd(g *globals) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "top-size",
		Short: "list the largest vaults by TVL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(ctx context.Context, svc service.Service) (any, error) {
				return svc.TopBySize(ctx, limit)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", service.DefaultTopLimit, "maximum number of vaults")
	return cmd
}

func PresetCmd(g *globals) *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "preset [highYield|stable|highTvl]",
		Short: "list vaults of a pre-configured filter, optionally overridden by flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := f.options(cmd)
			if err != nil {
				return err
			}
			return g.run(cmd, func(ctx context.Context, svc service.Service) (any, error) {
				return svc.VaultsByPreset(ctx, discovery.Preset(args[0]), overrides)
			})
		},
	}
	f.bind(cmd)
	return cmd
}
