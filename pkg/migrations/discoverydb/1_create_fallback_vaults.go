package discoverydb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/vault-discovery/pkg/fallback"
	mghelper "github.com/chainsafe/vault-discovery/pkg/pgutil/migrations"
)

// ChainAssetIndex speeds up fallback lookups.
const ChainAssetIndex = "idx_fallback_vaults_chain_id_asset_symbol"

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating fallback_vaults table...")
		if err := mghelper.CreateSchema(ctx, db, &fallback.VaultDao{}); err != nil {
			return err
		}
		return mghelper.CreateIndex(ctx, db, "fallback_vaults", ChainAssetIndex, "chain_id", "asset_symbol")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping fallback_vaults table...")
		if err := mghelper.DropIndex(ctx, db, ChainAssetIndex); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &fallback.VaultDao{})
	})
}
