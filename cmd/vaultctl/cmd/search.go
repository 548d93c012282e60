package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chainsafe/vault-discovery/pkg/discovery"
	"github.com/chainsafe/vault-discovery/pkg/discovery/service"
)

func SearchCmd(g *globals) *cobra.Command {
	var (
		chainNames []string
		limit      int
		offset     int
	)
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "search vaults by name, symbol or asset",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := resolveChains(chainNames)
			if err != nil {
				return err
			}
			opts := discovery.SearchOptions{
				Query:  strings.Join(args, " "),
				Chains: ids,
				Limit:  limit,
				Offset: offset,
			}
			return g.run(cmd, func(ctx context.Context, svc service.Service) (any, error) {
				return svc.SearchVaults(ctx, opts)
			})
		},
	}
	cmd.Flags().StringSliceVar(&chainNames, "chains", nil, "restrict to these chain names or ids")
	cmd.Flags().IntVar(&limit, "limit", service.DefaultSearchLimit, "maximum number of vaults")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of matches to skip")
	return cmd
}

func BestCmd(g *globals) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "best [asset]",
		Short: "list the best yielding vaults for an asset across chains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(ctx context.Context, svc service.Service) (any, error) {
				return svc.BestVaultsForAsset(ctx, args[0], limit)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", service.DefaultBestLimit, "maximum number of vaults")
	return cmd
}

func ResolveCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [asset] [chain]",
		Short: "pick the vault address to use for an asset on a chain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(ctx context.Context, svc service.Service) (any, error) {
				return svc.ResolveVaultAddress(ctx, args[0], args[1])
			})
		},
	}
}
