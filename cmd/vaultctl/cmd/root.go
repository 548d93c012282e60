package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/chainsafe/vault-discovery/pkg/config"
	"github.com/chainsafe/vault-discovery/pkg/discovery/service"
	"github.com/chainsafe/vault-discovery/pkg/fallback"
	"github.com/chainsafe/vault-discovery/pkg/morpho"
)

type globals struct {
	endpoint string
	timeout  time.Duration
	logLevel string
}

func RootCmd() *cobra.Command {
	g := &globals{}
	cmd := &cobra.Command{
		Use:   "vaultctl",
		Short: "query Morpho vaults from the command line",
	}
	cmd.PersistentFlags().StringVar(&g.endpoint, "endpoint", morpho.DefaultEndpoint, "Morpho GraphQL endpoint")
	cmd.PersistentFlags().DurationVar(&g.timeout, "timeout", 30*time.Second, "overall command timeout")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level written to stderr")

	cmd.AddCommand(
		VaultsCmd(g),
		TopYieldCmd(g),
		TopSizeCmd(g),
		PresetCmd(g),
		SearchCmd(g),
		BestCmd(g),
		ResolveCmd(g),
		SummaryCmd(g),
		ChainsCmd(g),
		TokenCmd(),
	)
	return cmd
}

// run builds the discovery service from the global flags and hands it to fn
// under a context bounded by --timeout.
func (g *globals) run(cmd *cobra.Command, fn func(ctx context.Context, svc service.Service) (any, error)) error {
	cmd.SilenceUsage = true

	logger, err := config.NewLogger(config.LoggingConfig{
		Level:      g.logLevel,
		Format:     "console",
		OutputPath: "stderr",
	})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client := morpho.New(g.endpoint,
		morpho.WithLogger(logger),
		morpho.WithHTTPClient(&http.Client{Timeout: g.timeout}),
	)
	svc := service.NewLog(service.NewService(client, fallback.NewStaticRegistry(), logger), logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), g.timeout)
	defer cancel()

	out, err := fn(ctx, svc)
	if err != nil {
		return err
	}
	return printJSON(cmd, out)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
