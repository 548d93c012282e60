package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/chainsafe/vault-discovery/cmd/vaultctl/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.RootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
