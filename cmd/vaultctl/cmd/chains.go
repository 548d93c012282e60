package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/discovery/service"
)

func SummaryCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [chain]",
		Short: "summarize the vaults of a chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chainID, err := chains.Resolve(args[0])
			if err != nil {
				return err
			}
			return g.run(cmd, func(ctx context.Context, svc service.Service) (any, error) {
				return svc.ChainSummary(ctx, chainID)
			})
		},
	}
}

func ChainsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "list supported chains that have vaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(ctx context.Context, svc service.Service) (any, error) {
				return svc.SupportedChainsWithVaults(ctx)
			})
		},
	}
}

// TokenCmd works offline from the well-known token table.
func TokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token [chain] [symbol]",
		Short: "print well-known token addresses of a chain",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			chainID, err := chains.Resolve(args[0])
			if err != nil {
				return err
			}
			if len(args) == 1 {
				table, err := chains.TokenAddresses(chainID)
				if err != nil {
					return err
				}
				return printJSON(cmd, table)
			}
			addr, err := chains.TokenAddress(args[1], chainID)
			if err != nil {
				return err
			}
			return printJSON(cmd, addr)
		},
	}
}
